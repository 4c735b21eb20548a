package strlex

import (
	"errors"
	"unicode/utf8"
)

// ErrInvalidCharacter is spec.md's invalid-character error kind; static
// message for the allocation-free failure path (spec.md §7).
var ErrInvalidCharacter = errors.New("invalid character literal")

var namedChars = map[string]rune{
	"newline": '\n',
	"return":  '\r',
	"space":   ' ',
	"tab":     '\t',
}

var namedCharsExt = map[string]rune{
	"formfeed":  '\f',
	"backspace": '\b',
}

// CharFeatures gates the optional forms spec.md §4.6 lists.
type CharFeatures struct {
	NamedExtended bool // formfeed / backspace
	Octal         bool // \oNNN
}

// Character parses a character literal body (the bytes immediately after
// the triggering backslash) and returns the decoded rune plus the number of
// bytes of body consumed.
func Character(body []byte, feat CharFeatures) (r rune, consumed int, err error) {
	if len(body) == 0 {
		return 0, 0, ErrInvalidCharacter
	}
	if isRejectedWhitespace(body[0]) {
		return 0, 0, ErrInvalidCharacter
	}

	// Named forms, longest match first, must be followed by a delimiter.
	for _, name := range []string{"newline", "return", "space", "tab"} {
		if matchesNamed(body, name) {
			return namedChars[name], len(name), nil
		}
	}
	if feat.NamedExtended {
		for _, name := range []string{"formfeed", "backspace"} {
			if matchesNamed(body, name) {
				return namedCharsExt[name], len(name), nil
			}
		}
	}

	// \uXXXX
	if body[0] == 'u' && len(body) >= 5 {
		if v, ok := readHex4(body, 1); ok {
			if v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
				return 0, 0, ErrInvalidCharacter
			}
			return rune(v), 5, nil
		}
	}

	// \oN, \oNN, \oNNN
	if feat.Octal && body[0] == 'o' {
		i := 1
		v := 0
		for i < len(body) && i <= 3 && body[i] >= '0' && body[i] <= '7' {
			v = v*8 + int(body[i]-'0')
			i++
		}
		if i == 1 {
			// "\o" alone is the character 'o'.
			return 'o', 1, nil
		}
		if v > 0o377 {
			return 0, 0, ErrInvalidCharacter
		}
		return rune(v), i, nil
	}

	r, size := utf8.DecodeRune(body)
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, ErrInvalidCharacter
	}
	if size < len(body) && !IsDelimiterByte(body[size]) {
		return 0, 0, ErrInvalidCharacter
	}
	return r, size, nil
}

func matchesNamed(body []byte, name string) bool {
	if len(body) < len(name) {
		return false
	}
	if string(body[:len(name)]) != name {
		return false
	}
	if len(body) == len(name) {
		return true
	}
	return IsDelimiterByte(body[len(name)])
}

func isRejectedWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\b':
		return true
	default:
		return false
	}
}
