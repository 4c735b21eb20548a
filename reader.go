package edn

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/DotFox/goedn/internal/arena"
	"github.com/DotFox/goedn/internal/dedup"
	"github.com/DotFox/goedn/internal/numlex"
	"github.com/DotFox/goedn/internal/scan"
	"github.com/DotFox/goedn/internal/strlex"
)

// Read parses a single value out of src using the default Options (spec.md
// §6.1): no registered tags, unknown tags pass through as Tagged values,
// and every optional lexical feature is disabled.
func Read(src []byte) (*Value, *Error) {
	return ReadWithOptions(src, Options{})
}

// ReadWithOptions parses a single value out of src, configured by opts. The
// returned Value (and everything reachable from it) is owned by a fresh
// Arena held internally; call Release on the result when done with it, or
// let the garbage collector reclaim it along with the Arena once nothing
// references the Value tree (spec.md §3.3, §3.4: one parse, one arena).
func ReadWithOptions(src []byte, opts Options) (*Value, *Error) {
	ar := arena.New(len(src))
	r := &reader{buf: src, ar: ar, opts: &opts}
	v, err := r.readTopLevel()
	if err != nil {
		ar.Destroy()
		return nil, err
	}
	return v, nil
}

// ResolvePosition derives the line/column of a byte offset into src by
// counting LF bytes, since the offset alone is canonical during parsing
// (spec.md §6.1) and line/column are only computed on demand, typically
// when formatting an *Error for a human.
func ResolvePosition(src []byte, offset int) Position {
	line, col := 1, 1
	end := offset
	if end > len(src) {
		end = len(src)
	}
	for i := 0; i < end; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Offset: offset, Line: line, Column: col}
}

type reader struct {
	buf   []byte
	pos   int
	ar    *arena.Arena
	opts  *Options
	opens []int // start offsets of currently-open collections, innermost last
}

func (r *reader) errorAt(kind ErrorKind, msg string, start, end int) *Error {
	return &Error{Kind: kind, Message: msg, Span: Span{Start: start, End: end}}
}

func (r *reader) pushOpen(start int) { r.opens = append(r.opens, start) }
func (r *reader) popOpen()           { r.opens = r.opens[:len(r.opens)-1] }

// unmatchedDelimiterStart reports the opener offset a foreign closing
// delimiter should be blamed on: the innermost currently-open collection,
// or the offending byte itself when none is open (spec.md §4.7/§7).
func (r *reader) unmatchedDelimiterStart() int {
	if len(r.opens) == 0 {
		return r.pos
	}
	return r.opens[len(r.opens)-1]
}

func isCloserByte(b byte) bool { return b == ')' || b == ']' || b == '}' }

// canHaveMetadata reports whether k may carry metadata (spec.md §4.8,
// value.go's meta field comment): lists, vectors, sets, maps, tagged
// values and symbols only. Attaching metadata to any other kind, notably
// a scalar, is invalid-syntax.
func canHaveMetadata(k Kind) bool {
	switch k {
	case KindList, KindVector, KindSet, KindMap, KindTagged, KindSymbol:
		return true
	default:
		return false
	}
}

// unsafeString views b as a string without copying. Used only for spans
// that alias the caller's src slice directly (raw, escape-free strings and
// every identifier/keyword span), matching the zero-copy contract
// StringGet documents (spec.md §8 property 6): the caller must keep src
// alive for as long as any Value parsed from it is in use, exactly as it
// must already do for the Arena-owned spans.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

func (r *reader) numFeatures() numlex.Features {
	return numlex.Features{
		Ratio:      r.opts.enableRatio,
		Octal:      r.opts.enableOctal,
		Hex:        true,
		Underscore: r.opts.enableUnderscore,
	}
}

// readTopLevel consumes leading whitespace/comments, reads exactly one
// value (discard forms and metadata are transparent to this), and reports
// EOF via opts.eofValue if set, or ErrUnexpectedEOF otherwise (spec.md
// §6.1).
func (r *reader) readTopLevel() (*Value, *Error) {
	start := r.pos
	if err := r.skipDiscardForms(); err != nil {
		return nil, err
	}
	if r.pos >= len(r.buf) {
		if r.opts.eofValue != nil {
			return r.opts.eofValue, nil
		}
		return nil, r.errorAt(ErrUnexpectedEOF, msgUnexpectedEOF, start, r.pos)
	}
	return r.readValue()
}

// skipDiscardForms consumes any run of #_form tokens starting at r.pos,
// leaving r.pos at the first byte that is neither whitespace nor part of a
// discard (a real value, a closing delimiter, or EOF). Spec §4.10: discards
// consume forms, not the places between them, so every loop that decides
// "value or closer/EOF?" must drain discards before making that call,
// instead of treating #_form as if it were itself one element.
func (r *reader) skipDiscardForms() *Error {
	for {
		r.pos = scan.SkipWhitespace(r.buf, r.pos)
		if r.pos+1 >= len(r.buf) || r.buf[r.pos] != '#' || r.buf[r.pos+1] != '_' {
			return nil
		}
		start := r.pos
		r.pos += 2
		peek := scan.SkipWhitespace(r.buf, r.pos)
		if peek >= len(r.buf) || isCloserByte(r.buf[peek]) {
			return r.errorAt(ErrInvalidDiscard, "#_ requires a following form", start, peek)
		}
		if _, err := r.readValue(); err != nil {
			return err
		}
	}
}

// readValue parses one value at r.pos, which must not be whitespace.
func (r *reader) readValue() (*Value, *Error) {
	r.pos = scan.SkipWhitespace(r.buf, r.pos)
	if r.pos >= len(r.buf) {
		return nil, r.errorAt(ErrUnexpectedEOF, msgUnexpectedEOF, r.pos, r.pos)
	}
	c := r.buf[r.pos]
	switch {
	case c == '(':
		return r.readSeq(')', KindList)
	case c == '[':
		return r.readSeq(']', KindVector)
	case c == '{':
		return r.readMap()
	case c == ')' || c == ']' || c == '}':
		return nil, r.errorAt(ErrUnmatchedDelimiter, fmt.Sprintf("unexpected %q", c), r.unmatchedDelimiterStart(), r.pos+1)
	case c == '"':
		if r.opts.enableTextBlocks && r.pos+2 < len(r.buf) && r.buf[r.pos+1] == '"' && r.buf[r.pos+2] == '"' {
			return r.readTextBlock()
		}
		return r.readString()
	case c == '\\':
		return r.readCharacter()
	case c == ':':
		return r.readKeyword()
	case c == '#':
		return r.readDispatch()
	case c == '^':
		return r.readMetadataChain()
	case c >= '0' && c <= '9':
		return r.readNumberOrSymbol()
	case c == '+' || c == '-':
		return r.readNumberOrSymbol()
	default:
		return r.readSymbol()
	}
}

// readSeq parses a list or vector: '(' already known to be at r.pos, or
// '[' for a vector, up to and including closer.
func (r *reader) readSeq(closer byte, kind Kind) (*Value, *Error) {
	start := r.pos
	r.pos++ // opening delimiter
	r.pushOpen(start)
	defer r.popOpen()
	var items []*Value
	for {
		if err := r.skipDiscardForms(); err != nil {
			return nil, err
		}
		if r.pos >= len(r.buf) {
			return nil, r.errorAt(ErrUnterminatedCollection, "unterminated "+kind.String(), start, r.pos)
		}
		if r.buf[r.pos] == closer {
			r.pos++
			break
		}
		v, err := r.readValue()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return &Value{kind: kind, span: Span{Start: start, End: r.pos}, items: items, ar: r.ar}, nil
}

// readMap parses either a plain map {...} or, via readDispatch's '#:'
// sugar, reuses this same loop for the entries between the braces.
func (r *reader) readMap() (*Value, *Error) {
	start := r.pos
	r.pos++ // '{'
	pairs, err := r.readMapEntries(start)
	if err != nil {
		return nil, err
	}
	return r.sealMap(start, "", pairs)
}

// readMapEntries reads key/value pairs up to and including the closing
// '}', assuming the opening '{' has already been consumed.
func (r *reader) readMapEntries(start int) ([]MapEntry, *Error) {
	r.pushOpen(start)
	defer r.popOpen()
	var pairs []MapEntry
	for {
		if err := r.skipDiscardForms(); err != nil {
			return nil, err
		}
		if r.pos >= len(r.buf) {
			return nil, r.errorAt(ErrUnterminatedCollection, "unterminated map", start, r.pos)
		}
		if r.buf[r.pos] == '}' {
			r.pos++
			break
		}
		k, err := r.readValue()
		if err != nil {
			return nil, err
		}
		if err := r.skipDiscardForms(); err != nil {
			return nil, err
		}
		if r.pos >= len(r.buf) || r.buf[r.pos] == '}' {
			return nil, r.errorAt(ErrInvalidSyntax, msgOddMapEntries, start, r.pos)
		}
		v, err := r.readValue()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, MapEntry{Key: k, Value: v})
	}
	return pairs, nil
}

// sealMap applies ns to every unqualified keyword key (namespaced-map
// sugar, SPEC_FULL.md §5 supplement; ns == "" is the common case of a
// plain map) and runs the duplicate-key detector (spec.md §4.13) before
// building the final Value.
func (r *reader) sealMap(start int, ns string, pairs []MapEntry) (*Value, *Error) {
	if ns != "" {
		for i, p := range pairs {
			if p.Key.Kind() == KindKeyword && !p.Key.hasNS {
				pairs[i].Key = &Value{kind: KindKeyword, namespace: ns, hasNS: true, name: p.Key.name, ar: r.ar}
			}
		}
	}
	n := len(pairs)
	if dedup.HasDuplicate(n,
		func(i int) uint64 { return ValueHash(pairs[i].Key) },
		func(i, j int) bool { return ValueEqual(pairs[i].Key, pairs[j].Key) },
	) {
		return nil, r.errorAt(ErrDuplicateKey, "duplicate map key", start, r.pos)
	}
	return &Value{kind: KindMap, span: Span{Start: start, End: r.pos}, pairs: pairs, ar: r.ar}, nil
}

func (r *reader) readSet(start int) (*Value, *Error) {
	r.pushOpen(start)
	defer r.popOpen()
	var items []*Value
	for {
		if err := r.skipDiscardForms(); err != nil {
			return nil, err
		}
		if r.pos >= len(r.buf) {
			return nil, r.errorAt(ErrUnterminatedCollection, "unterminated set", start, r.pos)
		}
		if r.buf[r.pos] == '}' {
			r.pos++
			break
		}
		v, err := r.readValue()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	n := len(items)
	if dedup.HasDuplicate(n,
		func(i int) uint64 { return ValueHash(items[i]) },
		func(i, j int) bool { return ValueEqual(items[i], items[j]) },
	) {
		return nil, r.errorAt(ErrDuplicateElement, "duplicate set element", start, r.pos)
	}
	return &Value{kind: KindSet, span: Span{Start: start, End: r.pos}, items: items, ar: r.ar}, nil
}

// readDispatch handles every form introduced by '#' (spec.md §4.9, §4.10):
// sets #{...}, discard #_form, the special floats ##Inf/##-Inf/##NaN,
// namespaced-map sugar #:ns{...}, and tagged literals #tag form.
func (r *reader) readDispatch() (*Value, *Error) {
	start := r.pos
	if r.pos+1 >= len(r.buf) {
		return nil, r.errorAt(ErrUnexpectedEOF, msgUnexpectedEOF, start, r.pos+1)
	}
	switch r.buf[r.pos+1] {
	case '{':
		r.pos += 2
		return r.readSet(start)
	case '_':
		r.pos += 2
		return r.readDiscardThenValue(start)
	case '#':
		return r.readSpecialFloat(start)
	case ':':
		if !r.opts.enableNamespacedMaps {
			return nil, r.errorAt(ErrInvalidSyntax, "namespaced-map sugar is not enabled", start, r.pos+2)
		}
		return r.readNamespacedMap(start)
	default:
		return r.readTagged(start)
	}
}

// readDiscardThenValue implements #_form reached where a value is
// mandatory (a tag's payload, a metadata form or its target): parses and
// throws away exactly one form, then reads the form that must follow,
// recursing through readValue/readDispatch to collapse a chained run of
// discards (spec.md §4.10). A discard with no following form is
// ErrInvalidDiscard, not ErrUnexpectedEOF, since it names a specific
// grammar violation rather than plain truncation. Collection loops and the
// top-level reader do not go through here: they drain discard runs via
// skipDiscardForms before deciding whether a closer/EOF has been reached,
// since a discard at the end of a collection consumes its form but not the
// collection's closing place.
func (r *reader) readDiscardThenValue(start int) (*Value, *Error) {
	peek := scan.SkipWhitespace(r.buf, r.pos)
	if peek >= len(r.buf) || isCloserByte(r.buf[peek]) {
		return nil, r.errorAt(ErrInvalidDiscard, "#_ requires a following form", start, peek)
	}
	if _, err := r.readValue(); err != nil {
		return nil, err
	}
	return r.readValue()
}

func (r *reader) readSpecialFloat(start int) (*Value, *Error) {
	bodyStart := r.pos + 2
	end := scan.ScanIdentifierBody(r.buf, bodyStart)
	body := string(r.buf[bodyStart:end])
	var f float64
	switch body {
	case "Inf":
		f = math.Inf(1)
	case "-Inf":
		f = math.Inf(-1)
	case "NaN":
		f = math.NaN()
	default:
		return nil, r.errorAt(ErrInvalidSyntax, "unknown ## form: "+body, start, end)
	}
	r.pos = end
	return &Value{kind: KindFloat, span: Span{Start: start, End: end}, floatVal: f, ar: r.ar}, nil
}

// readNamespacedMap implements #:ns{...}: every unqualified keyword key in
// the map is implicitly namespaced to ns (SPEC_FULL.md §5 supplement).
func (r *reader) readNamespacedMap(start int) (*Value, *Error) {
	nsStart := r.pos + 2
	nsEnd := scan.ScanIdentifierBody(r.buf, nsStart)
	if nsEnd == nsStart {
		return nil, r.errorAt(ErrInvalidSyntax, "#: requires a namespace name", start, nsStart)
	}
	ns := unsafeString(r.buf[nsStart:nsEnd])
	r.pos = scan.SkipWhitespace(r.buf, nsEnd)
	if r.pos >= len(r.buf) || r.buf[r.pos] != '{' {
		return nil, r.errorAt(ErrInvalidSyntax, "#:ns must be followed immediately by a map", start, r.pos)
	}
	r.pos++
	pairs, err := r.readMapEntries(start)
	if err != nil {
		return nil, err
	}
	return r.sealMap(start, ns, pairs)
}

// readTagged implements #tag form (spec.md §4.9): look up tag in the
// configured registry, falling back to the built-in readers (if enabled)
// and finally to the configured FallbackPolicy.
func (r *reader) readTagged(start int) (*Value, *Error) {
	tagStart := r.pos + 1
	tagEnd := scan.ScanIdentifierBody(r.buf, tagStart)
	if tagEnd == tagStart {
		return nil, r.errorAt(ErrInvalidSyntax, "# requires a tag", start, tagStart)
	}
	id, ok := strlex.ParseSymbolBody(r.buf[tagStart:tagEnd])
	if !ok {
		return nil, r.errorAt(ErrInvalidSyntax, "invalid tag name", start, tagEnd)
	}
	tag := string(r.buf[tagStart:tagEnd])
	r.pos = tagEnd

	inner, err := r.readValue()
	if err != nil {
		return nil, err
	}

	if fn, found := lookupReader(r.opts, tag); found {
		out, ferr := fn(inner, &Arena{a: r.ar})
		if ferr != nil {
			return nil, r.errorAt(ErrInvalidSyntax, ferr.Error(), start, r.pos)
		}
		out.span = Span{Start: start, End: r.pos}
		return out, nil
	}
	if r.opts.enableBuiltinReaders && !id.HasNamespace {
		if fn, found := builtinReaders()[tag]; found {
			out, ferr := fn(inner, &Arena{a: r.ar})
			if ferr != nil {
				return nil, r.errorAt(ErrInvalidSyntax, ferr.Error(), start, r.pos)
			}
			out.span = Span{Start: start, End: r.pos}
			return out, nil
		}
	}

	switch registryFallback(r.opts) {
	case FallbackUnwrap:
		return inner, nil
	case FallbackError:
		return nil, r.errorAt(ErrUnknownTag, unknownTagMessage(r.opts, tag), start, r.pos)
	default:
		return &Value{kind: KindTagged, span: Span{Start: start, End: r.pos}, tag: tag, inner: inner, ar: r.ar}, nil
	}
}

// readMetadataChain implements ^form1 ^form2 ... value (spec.md §4.8): each
// metadata form is read, normalized to a map, and merged with later
// (closer to the value) forms' entries taking precedence, then attached to
// the value as a whole (DESIGN.md Open Question 4).
func (r *reader) readMetadataChain() (*Value, *Error) {
	start := r.pos
	if !r.opts.enableMetadata {
		return nil, r.errorAt(ErrInvalidSyntax, "metadata is not enabled", start, start+1)
	}
	var forms []*Value
	for r.pos < len(r.buf) && r.buf[r.pos] == '^' {
		r.pos++
		form, err := r.readValue()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
		r.pos = scan.SkipWhitespace(r.buf, r.pos)
	}
	v, err := r.readValue()
	if err != nil {
		return nil, err
	}
	if !canHaveMetadata(v.Kind()) {
		return nil, r.errorAt(ErrInvalidSyntax, "metadata cannot attach to a "+v.Kind().String(), start, v.span.End)
	}
	var merged *Value
	for i := len(forms) - 1; i >= 0; i-- {
		norm := normalizeMetadataForm(r.ar, forms[i])
		merged = mergeMetadata(r.ar, norm, merged)
	}
	v.meta = merged
	v.span = Span{Start: start, End: v.span.End}
	return v, nil
}

func (r *reader) readString() (*Value, *Error) {
	start := r.pos
	end, hasEscapes := scan.FindUnescapedQuote(r.buf, r.pos+1)
	if end >= len(r.buf) {
		return nil, r.errorAt(ErrInvalidString, "unterminated string", start, end)
	}
	raw := r.buf[r.pos+1 : end]
	r.pos = end + 1
	return &Value{
		kind:          KindString,
		span:          Span{Start: start, End: r.pos},
		strRaw:        unsafeString(raw),
		strHasEscapes: hasEscapes,
		ar:            r.ar,
	}, nil
}

// readTextBlock parses the """..."""  form (SPEC_FULL.md §5, enabled by
// WithTextBlocks): opening """ already known to be at r.pos. The content
// runs until the next unescaped """ and has its common leading indentation
// stripped per strlex.StripTextBlockIndentation, mirroring the opening
// newline-then-dedent convention of Java/Kotlin-style text blocks.
func (r *reader) readTextBlock() (*Value, *Error) {
	start := r.pos
	r.pos += 3
	if r.pos < len(r.buf) && r.buf[r.pos] == '\r' && r.pos+1 < len(r.buf) && r.buf[r.pos+1] == '\n' {
		r.pos += 2
	} else if r.pos < len(r.buf) && r.buf[r.pos] == '\n' {
		r.pos++
	}
	contentStart := r.pos
	for {
		if r.pos >= len(r.buf) {
			return nil, r.errorAt(ErrInvalidString, "unterminated text block", start, r.pos)
		}
		if r.buf[r.pos] == '\\' {
			r.pos += 2
			continue
		}
		if r.buf[r.pos] == '"' && r.pos+2 < len(r.buf) && r.buf[r.pos+1] == '"' && r.buf[r.pos+2] == '"' {
			break
		}
		r.pos++
	}
	contentEnd := r.pos
	raw := string(r.buf[contentStart:contentEnd])
	lines := strings.Split(raw, "\n")
	last := lines[len(lines)-1]
	closingOnOwnLine := strings.TrimLeft(last, " \t") == ""
	closingIndent := len(last) - len(strings.TrimLeft(last, " \t"))
	stripped := strlex.StripTextBlockIndentation(lines, closingIndent, closingOnOwnLine)
	r.pos = contentEnd + 3
	v := &Value{kind: KindString, span: Span{Start: start, End: r.pos}, ar: r.ar, strRaw: stripped}
	if strings.Contains(stripped, "\\") {
		v.strHasEscapes = true
	}
	return v, nil
}

func (r *reader) readCharacter() (*Value, *Error) {
	start := r.pos
	body := r.buf[r.pos+1:]
	feat := strlex.CharFeatures{NamedExtended: true, Octal: r.opts.enableOctal}
	rv, consumed, err := strlex.Character(body, feat)
	if err != nil {
		return nil, r.errorAt(ErrInvalidCharacter, err.Error(), start, r.pos+1+len(body))
	}
	r.pos = r.pos + 1 + consumed
	return &Value{kind: KindCharacter, span: Span{Start: start, End: r.pos}, charVal: rv, ar: r.ar}, nil
}

func (r *reader) readKeyword() (*Value, *Error) {
	start := r.pos
	end := scan.ScanIdentifierBody(r.buf, r.pos+1)
	for end < len(r.buf) && r.buf[end] == '/' {
		end = scan.ScanIdentifierBody(r.buf, end+1)
	}
	id, ok := strlex.ParseKeywordBody(r.buf[r.pos+1 : end])
	if !ok {
		return nil, r.errorAt(ErrInvalidSyntax, "invalid keyword", start, end)
	}
	r.pos = end
	v := &Value{kind: KindKeyword, span: Span{Start: start, End: end}, ar: r.ar}
	if id.HasNamespace {
		v.namespace = unsafeString(id.Namespace)
		v.hasNS = true
		v.name = unsafeString(id.Name)
	} else {
		v.name = unsafeString(id.Name)
	}
	return v, nil
}

func (r *reader) readSymbol() (*Value, *Error) {
	start := r.pos
	end := scan.ScanIdentifierBody(r.buf, r.pos)
	for end < len(r.buf) && r.buf[end] == '/' {
		end = scan.ScanIdentifierBody(r.buf, end+1)
	}
	if end == start {
		return nil, r.errorAt(ErrInvalidSyntax, fmt.Sprintf("unexpected byte %q", r.buf[start]), start, start+1)
	}
	body := r.buf[start:end]
	id, ok := strlex.ParseSymbolBody(body)
	if !ok {
		return nil, r.errorAt(ErrInvalidSyntax, "invalid symbol", start, end)
	}
	r.pos = end
	if !id.HasNamespace && strlex.IsReservedWord(id.Name) {
		switch unsafeString(id.Name) {
		case "nil":
			return &Value{kind: KindNil, span: Span{Start: start, End: end}, ar: r.ar}, nil
		case "true":
			return &Value{kind: KindBool, span: Span{Start: start, End: end}, boolVal: true, ar: r.ar}, nil
		case "false":
			return &Value{kind: KindBool, span: Span{Start: start, End: end}, boolVal: false, ar: r.ar}, nil
		}
	}
	v := &Value{kind: KindSymbol, span: Span{Start: start, End: end}, name: unsafeString(id.Name), ar: r.ar}
	if id.HasNamespace {
		v.namespace = unsafeString(id.Namespace)
		v.hasNS = true
	}
	return v, nil
}

// readNumberOrSymbol handles every token starting with a digit, '+' or
// '-': classify it as a number first (spec.md §4.2); a sign that doesn't
// lead into a valid, delimiter-terminated numeric literal is instead a
// symbol (soloSymbols includes both, spec.md §4.5's "a lone +, -, / is a
// symbol" rule). A digit that fails to form a valid number can never be a
// symbol either (symbols may not start with a digit), so that case is
// ErrInvalidNumber.
func (r *reader) readNumberOrSymbol() (*Value, *Error) {
	start := r.pos
	desc := numlex.Classify(r.buf[start:], r.numFeatures())
	if desc.Valid {
		end := start + desc.End
		if end >= len(r.buf) || strlex.IsDelimiterByte(r.buf[end]) {
			return r.buildNumber(start, end, desc)
		}
	}
	if r.buf[start] == '+' || r.buf[start] == '-' {
		return r.readSymbol()
	}
	end := scan.ScanIdentifierBody(r.buf, start)
	return nil, r.errorAt(ErrInvalidNumber, "invalid number literal", start, end)
}

// buildNumber turns a Descriptor spanning buf[start:end] into the
// appropriate numeric Value, applying the three-tier int parse (spec.md
// §4.3): int64 fast path, falling back to the bigint zero-copy digit span
// on overflow.
func (r *reader) buildNumber(start, end int, desc numlex.Descriptor) (*Value, *Error) {
	span := Span{Start: start, End: end}
	lit := r.buf[start:end]

	switch desc.Kind {
	case numlex.Int64:
		digits := numericLiteralDigits(lit, desc)
		if n, ok := numlex.Int64Value(digits, desc.Radix, desc.Negative); ok {
			return &Value{kind: KindInt, span: span, intVal: n, ar: r.ar}, nil
		}
		return &Value{
			kind: KindBigInt, span: span,
			bigDigits: numlex.BigIntDigits(digits), bigNeg: desc.Negative, bigRadix: uint8(desc.Radix),
			ar: r.ar,
		}, nil

	case numlex.BigInt:
		digitsDesc := desc
		digitsDesc.End = desc.End - 1 // strip the 'N' suffix
		digits := numericLiteralDigits(lit, digitsDesc)
		return &Value{
			kind: KindBigInt, span: span,
			bigDigits: numlex.BigIntDigits(digits), bigNeg: desc.Negative, bigRadix: uint8(desc.Radix),
			ar: r.ar,
		}, nil

	case numlex.BigDec:
		digitsDesc := desc
		digitsDesc.End = desc.End - 1 // strip the 'M' suffix
		digits := numericLiteralDigits(lit, digitsDesc)
		return &Value{
			kind: KindBigDec, span: span,
			bigDigits: numlex.BigIntDigits(digits), bigNeg: desc.Negative,
			ar: r.ar,
		}, nil

	case numlex.Double:
		f, err := numlex.Float64Value(lit)
		if err != nil {
			return nil, r.errorAt(ErrInvalidNumber, err.Error(), start, end)
		}
		return &Value{kind: KindFloat, span: span, floatVal: f, ar: r.ar}, nil

	case numlex.Ratio:
		numLit, denLit := ratioParts(lit)
		numStr := numlex.BigIntDigits(numLit)
		denStr := numlex.BigIntDigits(denLit)
		n, nOK := numlex.Int64Value([]byte(numStr), 10, desc.Negative)
		d, dOK := numlex.Int64Value([]byte(denStr), 10, false)
		if nOK && dOK {
			rn, rd, ok := numlex.ReduceRatio(n, d)
			if !ok {
				return nil, r.errorAt(ErrInvalidNumber, "ratio denominator must be positive", start, end)
			}
			if rd == 1 {
				return &Value{kind: KindInt, span: span, intVal: rn, ar: r.ar}, nil
			}
			return &Value{kind: KindRatio, span: span, ratioNum: rn, ratioDen: rd, ar: r.ar}, nil
		}
		return &Value{
			kind: KindBigRatio, span: span,
			bigRatioNum: numStr, bigRatioDen: denStr, bigRatioNeg: desc.Negative,
			ar: r.ar,
		}, nil

	default:
		return nil, r.errorAt(ErrInvalidNumber, "invalid number literal", start, end)
	}
}

// numericLiteralDigits recovers the magnitude digit span (no sign, no
// radix prefix or 'r' marker) a Descriptor describes, mirroring the shape
// detection numlex.Classify itself performs branch-for-branch.
func numericLiteralDigits(lit []byte, desc numlex.Descriptor) []byte {
	pos := 0
	if len(lit) > 0 && (lit[0] == '+' || lit[0] == '-') {
		pos = 1
	}
	if desc.Radix == 16 && pos+1 < len(lit) && lit[pos] == '0' && (lit[pos+1] == 'x' || lit[pos+1] == 'X') {
		return lit[pos+2 : desc.End]
	}
	if desc.Radix == 8 && pos+1 < len(lit) && lit[pos] == '0' && lit[pos+1] != 'r' {
		return lit[pos+1 : desc.End]
	}
	p := pos
	for p < desc.End && lit[p] >= '0' && lit[p] <= '9' {
		p++
	}
	if p < desc.End && lit[p] == 'r' {
		return lit[p+1 : desc.End]
	}
	return lit[pos:desc.End]
}

// ratioParts splits a classified ratio literal a/b into its numerator and
// denominator digit spans (sign excluded).
func ratioParts(lit []byte) (num, den []byte) {
	pos := 0
	if len(lit) > 0 && (lit[0] == '+' || lit[0] == '-') {
		pos = 1
	}
	p := pos
	for p < len(lit) && lit[p] != '/' {
		p++
	}
	return lit[pos:p], lit[p+1:]
}
