package strlex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) string {
	t.Helper()
	dst := make([]byte, 0, len(raw))
	out, err := Decode([]byte(raw), dst)
	require.NoError(t, err)
	return string(out)
}

func TestDecodeNoEscapes(t *testing.T) {
	assert.Equal(t, "hello world", decode(t, "hello world"))
}

func TestDecodeBasicEscapes(t *testing.T) {
	assert.Equal(t, "hello\nworld", decode(t, `hello\nworld`))
	assert.Equal(t, "a\tb\rc", decode(t, `a\tb\rc`))
	assert.Equal(t, `"`, decode(t, `\"`))
	assert.Equal(t, `\`, decode(t, `\\`))
	assert.Equal(t, "/", decode(t, `\/`))
}

func TestDecodeUnicodeEscape(t *testing.T) {
	input := "\\u00e9" // the four hex digits 00e9, as a literal backslash-u escape
	got := decode(t, input)
	assert.Equal(t, "é", got)
}

func TestDecodeSurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE = high surrogate D83D + low surrogate DE00
	input := "\\uD83D\\uDE00"
	got := decode(t, input)
	assert.Equal(t, "\U0001F600", got)
}

func TestDecodeLoneSurrogateRejected(t *testing.T) {
	_, err := Decode([]byte(`\uD83D`), make([]byte, 0, 8))
	assert.ErrorIs(t, err, ErrInvalidString)
}

func TestDecodeUnknownEscapeRejected(t *testing.T) {
	_, err := Decode([]byte(`\x41`), make([]byte, 0, 8))
	assert.ErrorIs(t, err, ErrInvalidString)
}

func TestDecodeTrailingBackslashRejected(t *testing.T) {
	_, err := Decode([]byte(`abc\`), make([]byte, 0, 8))
	assert.ErrorIs(t, err, ErrInvalidString)
}

func TestStripTextBlockIndentation(t *testing.T) {
	lines := []string{"  hello", "  world", "", "  done"}
	got := StripTextBlockIndentation(lines, 2, true)
	assert.Equal(t, "hello\nworld\n\ndone\n", got)
}

func TestStripTextBlockIndentationNotOwnLine(t *testing.T) {
	lines := []string{"  hello"}
	got := StripTextBlockIndentation(lines, 2, false)
	assert.Equal(t, "hello", got)
}
