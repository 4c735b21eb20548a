package edn

import (
	"github.com/DotFox/goedn/internal/arena"
)

// Kind identifies which case of the Value tagged union is populated.
// Modeled on mcvoid-json's Type enum (a plain iota block plus a String()
// method via a lookup table), generalized to spec.md §3.1's richer value
// set.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindBigInt
	KindFloat
	KindBigDec
	KindRatio
	KindBigRatio
	KindCharacter
	KindString
	KindSymbol
	KindKeyword
	KindList
	KindVector
	KindSet
	KindMap
	KindTagged
	KindExternal
	numKinds
)

var kindStrings = [numKinds]string{
	"nil", "bool", "int", "bigint", "float", "bigdec", "ratio", "bigratio",
	"character", "string", "symbol", "keyword", "list", "vector", "set",
	"map", "tagged", "external",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "<unknown>"
	}
	return kindStrings[k]
}

// Position is a source location, always derivable from a byte offset by
// counting LF bytes up to it (spec.md §6.1); the offset alone is canonical.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Span is a (start, end) byte-offset range into the original input,
// exposed by source_position (spec.md §6.1).
type Span struct {
	Start int
	End   int
}

// MapEntry is one key/value pair of a Map value, kept in insertion order
// per spec.md §3.1 ("ordered sequence of (key, value) pairs").
type MapEntry struct {
	Key   *Value
	Value *Value
}

// ExternalEqualFunc and ExternalHashFunc let a reader function's External
// values participate in structural equality and set/map-key semantics
// (spec.md §4.9). Registered per type_id via RegisterExternalType.
type ExternalEqualFunc func(a, b any) bool
type ExternalHashFunc func(v any) uint64

// Value is the tagged-union node spec.md §3.1 describes. Only the fields
// relevant to Kind are meaningful; the zero Value is KindNil.
//
// Every Value other than the Nil/Bool singletons is owned by the Arena
// that produced it (spec.md §3.3): it must not outlive a call to
// Arena.Destroy on that arena.
type Value struct {
	kind Kind
	span Span
	meta *Value // optional Map; only for List/Vector/Set/Map/Tagged/Symbol

	boolVal bool
	intVal  int64

	bigDigits string // BigInt digit string, or BigDec decimal string
	bigNeg    bool
	bigRadix  uint8 // BigInt only

	floatVal float64

	ratioNum, ratioDen int64      // Ratio
	bigRatioNum        string     // BigRatio numerator digits
	bigRatioDen        string     // BigRatio denominator digits
	bigRatioNeg        bool

	charVal rune

	strRaw        string // raw span between quotes, zero-copy when possible
	strHasEscapes bool
	strDecoded    *string // lazily populated cache

	namespace string // Symbol/Keyword; empty means no namespace
	hasNS     bool
	name      string

	items []*Value   // List/Vector/Set
	pairs []MapEntry // Map

	tag   string
	inner *Value

	externalPayload any
	externalTypeID  uint32

	ar *arena.Arena
}

// Singletons: Nil and the two Bools are process-global per spec.md §5,
// cheap to share since Values are never mutated after construction.
var (
	nilValue   = &Value{kind: KindNil}
	trueValue  = &Value{kind: KindBool, boolVal: true}
	falseValue = &Value{kind: KindBool, boolVal: false}
)

func boolValue(b bool) *Value {
	if b {
		return trueValue
	}
	return falseValue
}

// Kind reports which variant this Value holds.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNil
	}
	return v.kind
}

// SourcePosition returns the (start, end) byte-offset span recorded for
// this value during parsing (spec.md §6.1).
func (v *Value) SourcePosition() Span {
	if v == nil {
		return Span{}
	}
	return v.span
}

// Meta returns the metadata map attached to this value, or nil if none
// (spec.md §3.1, §4.8). Only collections, tagged values and symbols ever
// carry one.
func (v *Value) Meta() *Value {
	if v == nil {
		return nil
	}
	return v.meta
}
