package edn

import "github.com/DotFox/goedn/internal/strlex"

// decodeStringValue performs the lazy escape expansion spec.md §4.4
// describes, allocating the decoded buffer from the value's arena so it
// stays valid for the arena's lifetime.
func decodeStringValue(v *Value) (string, error) {
	dst := v.ar.Alloc(len(v.strRaw), 1)
	decoded, err := strlex.Decode([]byte(v.strRaw), dst[:0])
	if err != nil {
		return "", &Error{Kind: ErrInvalidString, Message: err.Error(), Span: v.span}
	}
	return string(decoded), nil
}
