package textadapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
)

func mustEUCKR(t *testing.T, s string) []byte {
	t.Helper()

	b, err := korean.EUCKR.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)

	return b
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name             string
		data             []byte
		expectedText     string
		expectedEncoding string
	}{
		{
			name:             "utf-8 with bom",
			data:             []byte("\xef\xbb\xbfdate,temp\n20230101,1.5\n"),
			expectedText:     "date,temp\n20230101,1.5\n",
			expectedEncoding: EncodingUTF8SIG,
		},
		{
			name:             "utf-8 without bom",
			data:             []byte("날짜,기온\n"),
			expectedText:     "날짜,기온\n",
			expectedEncoding: EncodingUTF8SIG,
		},
		{
			name:             "empty",
			data:             []byte{},
			expectedText:     "",
			expectedEncoding: EncodingUTF8SIG,
		},
		{
			name:             "legacy korean",
			data:             mustEUCKR(t, "날짜,기온\n20230101,영하\n"),
			expectedText:     "날짜,기온\n20230101,영하\n",
			expectedEncoding: EncodingCP949,
		},
		{
			name:             "undecodable",
			data:             []byte{0x80, 'a', '\n', 0xff, 'b'},
			expectedText:     "a\nb",
			expectedEncoding: EncodingUnknown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			text, encoding := DefaultChain().Decode(tc.data)
			require.Equal(t, tc.expectedEncoding, encoding)
			require.Equal(t, tc.expectedText, text)
		})
	}
}

func TestEUCKRRejectsExtendedHangul(t *testing.T) {
	data := mustEUCKR(t, "똠방각하")

	_, err := decodeEUCKR(data)
	require.True(t, errors.Is(err, ErrCannotDecode))

	text, err := decodeCP949(data)
	require.NoError(t, err)
	require.Equal(t, "똠방각하", text)

	text, err = decodeEUCKR(mustEUCKR(t, "방각하"))
	require.NoError(t, err)
	require.Equal(t, "방각하", text)
}

func TestChainOrder(t *testing.T) {
	chain := Chain{
		{Name: "never", Decode: func([]byte) (string, error) { return "", ErrCannotDecode }},
		{Name: "first", Decode: func(b []byte) (string, error) { return "1:" + string(b), nil }},
		{Name: "second", Decode: func(b []byte) (string, error) { return "2:" + string(b), nil }},
	}

	text, encoding := chain.Decode([]byte("x"))
	require.Equal(t, "first", encoding)
	require.Equal(t, "1:x", text)

	text, encoding = Chain{}.Decode([]byte("y\xff"))
	require.Equal(t, EncodingUnknown, encoding)
	require.Equal(t, "y", text)
}
