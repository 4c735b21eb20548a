package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipWhitespace(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   x", 3},
		{"\t\t\n,x", 4},
		{"; a comment\nx", 12},
		{"; no trailing newline", 21},
		{";;x\n;;y\nz", 8},
	}
	for _, c := range cases {
		got := SkipWhitespace([]byte(c.in), 0)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestSkipWhitespaceBatchedBoundary(t *testing.T) {
	// Exercise the 8-byte batched path crossing into the scalar tail.
	in := []byte("        x") // 8 spaces + x
	assert.Equal(t, 8, SkipWhitespace(in, 0))
}

func TestFindUnescapedQuote(t *testing.T) {
	cases := []struct {
		in      string
		wantEnd int
		wantEsc bool
		desc    string
	}{
		{`abc"`, 3, false, "plain terminator"},
		{`a\"b"`, 4, true, "escaped quote then real terminator"},
		{`a\\"`, 3, true, "escaped backslash then real terminator"},
		{`no quote here`, 13, false, "unterminated"},
	}
	for _, c := range cases {
		end, esc := FindUnescapedQuote([]byte(c.in), 0)
		assert.Equal(t, c.wantEnd, end, c.desc)
		assert.Equal(t, c.wantEsc, esc, c.desc)
	}
}

func TestScanDigits(t *testing.T) {
	assert.Equal(t, 0, ScanDigits([]byte("abc"), 0))
	assert.Equal(t, 3, ScanDigits([]byte("123"), 0))
	assert.Equal(t, 10, ScanDigits([]byte("1234567890abc"), 0))
	assert.Equal(t, 0, ScanDigits(nil, 0))
}

func TestScanIdentifierBody(t *testing.T) {
	assert.Equal(t, 5, ScanIdentifierBody([]byte("abc-1 rest"), 0))
	assert.Equal(t, 1, ScanIdentifierBody([]byte("a/b"), 0)) // '/' is not a body char; the identifier scanner handles it separately
	assert.Equal(t, 0, ScanIdentifierBody([]byte("(foo)"), 0))
}

// Bounds-check corpus pinned by spec.md §9: single-byte/short inputs that a
// scanner must never read past.
func TestBoundsCheckCorpus(t *testing.T) {
	inputs := []string{"#", "+", "-", "0", "##", "#{", "+1", "-1", "0x", "07"}
	for _, in := range inputs {
		buf := []byte(in)
		assert.NotPanics(t, func() {
			SkipWhitespace(buf, 0)
			FindUnescapedQuote(buf, 0)
			ScanDigits(buf, 0)
			ScanIdentifierBody(buf, 0)
		}, "input %q must not overrun", in)
	}
}
