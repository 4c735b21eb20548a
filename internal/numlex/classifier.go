// Package numlex implements spec.md §4.2/§4.3: the single-pass number
// classifier and the three-tier number parser (int64 fast path, bigint
// zero-copy span, strconv-backed float).
package numlex

// Kind is the tagged shape a classified numeric token turned out to have.
// Named and ordered the way mcvoid-json's json.Type enumerates its variants
// (a plain iota block plus a String() method), generalized to the richer
// numeric ladder spec.md §4.2 describes.
type Kind int

const (
	Unknown Kind = iota
	Int64
	BigInt
	Double
	BigDec
	Ratio
)

func (k Kind) String() string {
	switch k {
	case Int64:
		return "int64"
	case BigInt:
		return "bigint"
	case Double:
		return "double"
	case BigDec:
		return "bigdec"
	case Ratio:
		return "ratio"
	default:
		return "unknown"
	}
}

// Features toggles the optional numeric syntax spec.md §4.2 gates behind
// feature flags rather than inferring them silently (spec.md §9 Open
// Question 2).
type Features struct {
	Ratio      bool // a/b rational literals
	Octal      bool // leading-zero octal integers (0777)
	Hex        bool // 0x.. hexadecimal integers
	Underscore bool // 1_000_000 digit grouping
}

// Descriptor is the output of a single classification pass: everything the
// parser needs to turn a byte span into a Value, without having evaluated
// any digits yet.
type Descriptor struct {
	Kind     Kind
	Radix    int // 2-36, meaningful for Int64/BigInt produced by an Nr form, 0x, or 0 leading octal
	Negative bool
	Forced   bool // BigInt forced by an explicit N suffix, or BigDec by M
	End      int  // offset, relative to the classified span's start, one past the last consumed byte
	Valid    bool
}

// Classify performs the single left-to-right pass spec.md §4.2 describes
// over buf[0:], which must begin at a position the driver has already
// decided looks like the start of a number (a digit, or a sign followed by
// a digit). It returns a zero-value Descriptor with Valid=false if buf does
// not in fact hold a valid numeric literal (e.g. a lone "+", "-", "." or a
// malformed suffix, or a hex/ratio shape whose feature is off). For a
// sign-led token the driver then falls back to the identifier scanner, per
// spec.md §4.2's "a lone `/`, `+`, `-` is a symbol" rule; a digit-led token
// is reported as an invalid number.
func Classify(buf []byte, feat Features) Descriptor {
	n := len(buf)
	pos := 0
	negative := false
	if pos < n && (buf[pos] == '+' || buf[pos] == '-') {
		negative = buf[pos] == '-'
		pos++
	}

	digitsStart := pos
	if pos >= n || !isDigit(buf[pos]) {
		return Descriptor{}
	}

	// Hex: -?0[xX][0-9a-fA-F]+
	if pos+1 < n && buf[pos] == '0' && (buf[pos+1] == 'x' || buf[pos+1] == 'X') {
		if !feat.Hex {
			return Descriptor{}
		}
		p := pos + 2
		start := p
		for p < n && (isHexDigit(buf[p]) || (feat.Underscore && buf[p] == '_' && p > start && p+1 < n && isHexDigit(buf[p+1]))) {
			p++
		}
		if p == start {
			return Descriptor{}
		}
		return Descriptor{Kind: Int64, Radix: 16, Negative: negative, End: p, Valid: true}
	}

	// Octal: -?0[0-7]+ (leading zero, all digits <= 7), feature-gated.
	if feat.Octal && buf[pos] == '0' && pos+1 < n && isDigit(buf[pos+1]) {
		p := pos + 1
		allOctal := true
		for p < n && isDigit(buf[p]) {
			if buf[p] > '7' {
				allOctal = false
			}
			p++
		}
		if allOctal && !isDotOrExp(buf, p) {
			return Descriptor{Kind: Int64, Radix: 8, Negative: negative, End: p, Valid: true}
		}
		// Falls through: not octal after all (e.g. "089"), re-scan as decimal below.
	}

	// Leading-zero rejection for multi-digit decimals, unless octal already
	// consumed it above.
	firstDigitRun := scanDigitRun(buf, pos, feat.Underscore)
	if firstDigitRun.end == pos {
		return Descriptor{}
	}
	pos = firstDigitRun.end

	// Radix form: -?[0-9]+r[0-9a-zA-Z]+
	if pos < n && buf[pos] == 'r' && pos+1 < n {
		radix := parseSmallInt(buf[digitsStart:pos])
		if radix >= 2 && radix <= 36 {
			p := pos + 1
			start := p
			for p < n && isRadixDigit(buf[p], radix) {
				p++
			}
			if p > start {
				return Descriptor{Kind: Int64, Radix: radix, Negative: negative, End: p, Valid: true}
			}
		}
		return Descriptor{}
	}

	if buf[digitsStart] == '0' && firstDigitRun.digitCount > 1 {
		// Plain decimal with a forbidden leading zero and no radix marker.
		return Descriptor{}
	}

	isFloat := false

	// Fractional part: \.[0-9]+
	if pos < n && buf[pos] == '.' && pos+1 < n && isDigit(buf[pos+1]) {
		isFloat = true
		pos++
		run := scanDigitRun(buf, pos, feat.Underscore)
		pos = run.end
	} else if pos < n && buf[pos] == '.' {
		// '.' not followed by a digit is not part of the number (spec.md
		// §4.2: dot must be followed by at least one digit).
	}

	// Exponent: [eE][+-]?[0-9]+
	if pos < n && (buf[pos] == 'e' || buf[pos] == 'E') {
		p := pos + 1
		if p < n && (buf[p] == '+' || buf[p] == '-') {
			p++
		}
		run := scanDigitRun(buf, p, feat.Underscore)
		if run.end > p {
			isFloat = true
			pos = run.end
		}
	}

	// Ratio: -?[0-9]+/[0-9]+, no whitespace, no prior float shape.
	if !isFloat && pos < n && buf[pos] == '/' && pos+1 < n && isDigit(buf[pos+1]) {
		if !feat.Ratio {
			return Descriptor{}
		}
		p := pos + 1
		run := scanDigitRun(buf, p, feat.Underscore)
		return Descriptor{Kind: Ratio, Negative: negative, End: run.end, Valid: true}
	}

	// Suffixes: N (bigint, decimal integer forms only) / M (bigdec).
	if pos < n && buf[pos] == 'N' {
		if isFloat {
			return Descriptor{} // N forbidden on float forms (spec.md §4.2)
		}
		return Descriptor{Kind: BigInt, Radix: 10, Negative: negative, Forced: true, End: pos + 1, Valid: true}
	}
	if pos < n && buf[pos] == 'M' {
		return Descriptor{Kind: BigDec, Negative: negative, Forced: true, End: pos + 1, Valid: true}
	}

	if isFloat {
		return Descriptor{Kind: Double, Negative: negative, End: pos, Valid: true}
	}
	return Descriptor{Kind: Int64, Radix: 10, Negative: negative, End: pos, Valid: true}
}

type digitRun struct {
	end        int
	digitCount int
}

// scanDigitRun consumes a run of decimal digits, optionally with underscore
// grouping (never adjacent to the run's start/end, never doubled-invalidly
// — spec.md allows consecutive underscores, so we only forbid leading and
// trailing ones).
func scanDigitRun(buf []byte, pos int, underscore bool) digitRun {
	n := len(buf)
	start := pos
	count := 0
	for pos < n {
		if isDigit(buf[pos]) {
			pos++
			count++
			continue
		}
		if underscore && buf[pos] == '_' && pos > start && pos+1 < n && (isDigit(buf[pos+1]) || buf[pos+1] == '_') {
			pos++
			continue
		}
		break
	}
	return digitRun{end: pos, digitCount: count}
}

func isDotOrExp(buf []byte, pos int) bool {
	return pos < len(buf) && (buf[pos] == '.' || buf[pos] == 'e' || buf[pos] == 'E')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isRadixDigit(c byte, radix int) bool {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return false
	}
	return v < radix
}

func parseSmallInt(digits []byte) int {
	n := 0
	for _, c := range digits {
		if c == '_' {
			continue
		}
		if !isDigit(c) {
			return -1
		}
		n = n*10 + int(c-'0')
		if n > 1000 {
			return n
		}
	}
	return n
}
