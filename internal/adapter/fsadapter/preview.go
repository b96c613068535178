package fsadapter

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jgivc/weatherdata/internal/adapter/textadapter"
	"github.com/jgivc/weatherdata/internal/common"
	"github.com/jgivc/weatherdata/internal/entity"
	"github.com/spf13/afero"
)

// FileInfo resolves a data file addressed by its full location.
func (a *fsAdapter) FileInfo(loc entity.Location, fileName string) (string, os.FileInfo, error) {
	filePath, err := joinSegments(a.root, append(loc.Segments(), fileName)...)
	if err != nil {
		return "", nil, err
	}

	info, err := a.fs.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, common.NotFoundError(filePath)
		}

		return "", nil, fmt.Errorf("cannot stat %s: %w", filePath, err)
	}

	if !info.Mode().IsRegular() {
		return "", nil, common.BadRequestError("not a valid file: %s", fileName)
	}

	return filePath, info, nil
}

func (a *fsAdapter) Open(filePath string) (afero.File, error) {
	f, err := a.fs.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NotFoundError(filePath)
		}

		return nil, fmt.Errorf("cannot open %s: %w", filePath, err)
	}

	return f, nil
}

// Preview returns up to maxLines first lines of a file decoded with the first
// encoding that accepts them. Decoded text ends lines at \r\n, \r or \n. The
// undecodable fallback splits on \n only and keeps carriage returns.
func (a *fsAdapter) Preview(filePath string, maxLines int) (*entity.Preview, error) {
	f, err := a.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, count, err := readTextLines(f, maxLines)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", filePath, err)
	}

	text, encoding := a.decoders.Decode(raw)
	if encoding != textadapter.EncodingUnknown {
		return &entity.Preview{
			Lines:    splitLines(normalizeNewlines(text), count),
			Encoding: encoding,
		}, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("cannot rewind %s: %w", filePath, err)
	}

	raw, count, err = readLines(f, maxLines)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", filePath, err)
	}

	return &entity.Preview{
		Lines:    splitLines(textadapter.DecodeLenient(raw), count),
		Encoding: encoding,
	}, nil
}

// readLines reads at most n newline terminated lines and returns them verbatim.
func readLines(r io.Reader, n int) ([]byte, int, error) {
	br := bufio.NewReader(r)
	buf := bytes.Buffer{}

	var count int
	for count < n {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			buf.Write(line)
			count++
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, 0, err
		}
	}

	return buf.Bytes(), count, nil
}

// readTextLines is readLines with \r\n, a lone \r and \n all ending a line.
// Neither byte occurs inside a multibyte sequence of the supported encodings.
func readTextLines(r io.Reader, n int) ([]byte, int, error) {
	br := bufio.NewReader(r)
	buf := bytes.Buffer{}

	var count, lineLen int
	for count < n {
		c, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if lineLen > 0 {
					count++
				}

				break
			}

			return nil, 0, err
		}

		buf.WriteByte(c)
		lineLen++

		switch c {
		case '\r':
			if next, err := br.Peek(1); err == nil && next[0] == '\n' {
				br.ReadByte() //nolint:errcheck // peeked
				buf.WriteByte('\n')
			}

			fallthrough
		case '\n':
			count++
			lineLen = 0
		}
	}

	return buf.Bytes(), count, nil
}

func normalizeNewlines(text string) string {
	return strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(text)
}

func splitLines(text string, count int) []string {
	if count == 0 {
		return []string{}
	}

	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
