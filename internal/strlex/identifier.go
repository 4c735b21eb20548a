package strlex

// Identifier is the result of parsing a bare symbol or keyword body
// (spec.md §4.5): an optional namespace plus a name, both byte spans
// relative to the caller's buffer.
type Identifier struct {
	Namespace      []byte // nil if there is no namespace
	Name           []byte
	HasNamespace   bool
	SlashCount     int // diagnostic aid: >1 is always a grammar violation
}

// soloSymbols are single-character symbols that are legal even though they
// don't satisfy the general first_char rule (spec.md §4.5).
var soloSymbols = map[byte]bool{
	'/': true, '+': true, '-': true, '*': true, '!': true, '?': true,
	'$': true, '%': true, '&': true, '=': true, '<': true, '>': true,
}

// firstCharOK reports whether c may start an identifier: not a digit, not
// ':', '#', '/' (those are handled by the dedicated solo-symbol and
// keyword/namespace paths).
func firstCharOK(c byte) bool {
	if c >= '0' && c <= '9' {
		return false
	}
	switch c {
	case ':', '#', '/':
		return false
	}
	return true
}

// ParseSymbolBody splits a scanned identifier span body (one or more
// scan.ScanIdentifierBody runs joined by '/', already delimited) into an optional
// namespace and a name, applying spec.md §4.5's restrictions: at most one
// '/', and neither side of it may be empty.
//
// body must be non-empty. Returns ok=false if the grammar is violated
// (e.g. "x/", "/x", "a/b/c").
func ParseSymbolBody(body []byte) (id Identifier, ok bool) {
	if len(body) == 1 && soloSymbols[body[0]] {
		return Identifier{Name: body}, true
	}
	if !firstCharOK(body[0]) {
		return Identifier{}, false
	}
	slash := -1
	count := 0
	for i, c := range body {
		if c == '/' {
			count++
			slash = i
		}
	}
	if count == 0 {
		return Identifier{Name: body}, true
	}
	if count > 1 {
		return Identifier{}, false
	}
	if slash == 0 || slash == len(body)-1 {
		return Identifier{}, false
	}
	ns := body[:slash]
	name := body[slash+1:]
	if !firstCharOK(ns[0]) {
		return Identifier{}, false
	}
	return Identifier{Namespace: ns, Name: name, HasNamespace: true, SlashCount: count}, true
}

// ParseKeywordBody applies the extra restrictions spec.md §4.5 places on
// keywords beyond ParseSymbolBody: body is everything after the leading
// ':' and must not itself be empty, start with '/', or have a namespace
// that is itself namespaced (covered already by ParseSymbolBody rejecting
// more than one '/').
func ParseKeywordBody(body []byte) (id Identifier, ok bool) {
	if len(body) == 0 {
		return Identifier{}, false
	}
	if body[0] == '/' && len(body) == 1 {
		return Identifier{}, false
	}
	return ParseSymbolBody(body)
}

// IsDelimiterByte reports whether c terminates a token: whitespace (per
// spec.md's ws set), ',', or a bracket/quote/comment character.
func IsDelimiterByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v', ',', 0x1C, 0x1D, 0x1E, 0x1F,
		'(', ')', '[', ']', '{', '}', '"', ';':
		return true
	default:
		return false
	}
}

// IsReservedWord reports whether name (with no namespace) is one of the
// reserved literal forms nil/true/false, which the driver must only treat
// as singletons when followed by a delimiter or end of input (spec.md
// §4.5: "nile" is a symbol, "true/x" is a symbol).
func IsReservedWord(name []byte) bool {
	switch string(name) {
	case "nil", "true", "false":
		return true
	default:
		return false
	}
}
