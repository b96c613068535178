package textadapter

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
)

const (
	EncodingUTF8SIG = "utf-8-sig"
	EncodingUTF8    = "utf-8"
	EncodingCP949   = "cp949"
	EncodingEUCKR   = "euc-kr"
	EncodingUnknown = "unknown"
)

var ErrCannotDecode = errors.New("cannot decode")

// Decoder converts raw bytes to text. It must fail rather than substitute
// replacement characters so that the next decoder in a chain gets a chance.
type Decoder struct {
	Name   string
	Decode func(data []byte) (string, error)
}

// Chain is an ordered list of decoders tried with first-success semantics.
type Chain []Decoder

// DefaultChain returns the decoders used for CSV previews.
func DefaultChain() Chain {
	return Chain{
		{Name: EncodingUTF8SIG, Decode: decodeUTF8SIG},
		{Name: EncodingUTF8, Decode: decodeUTF8},
		{Name: EncodingCP949, Decode: decodeCP949},
		{Name: EncodingEUCKR, Decode: decodeEUCKR},
	}
}

// Decode returns the text and the name of the first decoder that accepted data.
// When none does, invalid byte sequences are dropped and EncodingUnknown is returned.
func (c Chain) Decode(data []byte) (string, string) {
	for _, d := range c {
		text, err := d.Decode(data)
		if err == nil {
			return text, d.Name
		}
	}

	return DecodeLenient(data), EncodingUnknown
}

// DecodeLenient interprets data as UTF-8, discarding undecodable bytes.
func DecodeLenient(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}

func decodeUTF8SIG(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: invalid %s", ErrCannotDecode, EncodingUTF8SIG)
	}

	out, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrCannotDecode, EncodingUTF8SIG, err)
	}

	return string(out), nil
}

func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: invalid %s", ErrCannotDecode, EncodingUTF8)
	}

	return string(data), nil
}

// The x/text EUC-KR codec implements the Unified Hangul Code extension, which is cp949.
func decodeCP949(data []byte) (string, error) {
	out, err := korean.EUCKR.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrCannotDecode, EncodingCP949, err)
	}

	// The codec substitutes U+FFFD for invalid sequences instead of failing.
	if strings.ContainsRune(string(out), utf8.RuneError) {
		return "", fmt.Errorf("%w: invalid %s", ErrCannotDecode, EncodingCP949)
	}

	return string(out), nil
}

// decodeEUCKR accepts only the KS X 1001 double byte range.
func decodeEUCKR(data []byte) (string, error) {
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c < utf8.RuneSelf {
			continue
		}

		if !isKSX1001Byte(c) || i+1 >= len(data) || !isKSX1001Byte(data[i+1]) {
			return "", fmt.Errorf("%w: invalid %s at offset %d", ErrCannotDecode, EncodingEUCKR, i)
		}
		i++
	}

	out, err := decodeCP949(data)
	if err != nil {
		return "", fmt.Errorf("%w: invalid %s", ErrCannotDecode, EncodingEUCKR)
	}

	return out, nil
}

func isKSX1001Byte(c byte) bool {
	return c >= 0xa1 && c <= 0xfe
}
