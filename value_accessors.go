package edn

import "fmt"

// ErrKindMismatch is returned by an AsX accessor when the Value's Kind
// does not match what was requested.
type ErrKindMismatch struct {
	Want Kind
	Got  Kind
}

func (e *ErrKindMismatch) Error() string {
	return fmt.Sprintf("goedn: expected %s, got %s", e.Want, e.Got)
}

func mismatch(want, got Kind) error {
	return &ErrKindMismatch{Want: want, Got: got}
}

// --- type predicates (spec.md §4.12) ---

func (v *Value) IsNil() bool      { return v.Kind() == KindNil }
func (v *Value) IsCollection() bool {
	switch v.Kind() {
	case KindList, KindVector, KindSet, KindMap:
		return true
	default:
		return false
	}
}
func (v *Value) IsNumber() bool {
	switch v.Kind() {
	case KindInt, KindBigInt, KindFloat, KindBigDec, KindRatio, KindBigRatio:
		return true
	default:
		return false
	}
}
func (v *Value) IsInteger() bool {
	switch v.Kind() {
	case KindInt, KindBigInt:
		return true
	default:
		return false
	}
}

// --- scalar accessors ---

// BoolGet returns the boolean value, or an error if v is not KindBool.
func (v *Value) BoolGet() (bool, error) {
	if v.Kind() != KindBool {
		return false, mismatch(KindBool, v.Kind())
	}
	return v.boolVal, nil
}

// Int64Get returns the int64 value, or an error if v is not KindInt.
func (v *Value) Int64Get() (int64, error) {
	if v.Kind() != KindInt {
		return 0, mismatch(KindInt, v.Kind())
	}
	return v.intVal, nil
}

// DoubleGet returns the float64 value, or an error if v is not KindFloat.
func (v *Value) DoubleGet() (float64, error) {
	if v.Kind() != KindFloat {
		return 0, mismatch(KindFloat, v.Kind())
	}
	return v.floatVal, nil
}

// CharacterGet returns the Unicode scalar value, or an error if v is not
// KindCharacter.
func (v *Value) CharacterGet() (rune, error) {
	if v.Kind() != KindCharacter {
		return 0, mismatch(KindCharacter, v.Kind())
	}
	return v.charVal, nil
}

// BigIntGet returns the validated digit string, sign and radix of a
// KindBigInt value. No numeric evaluation is performed (spec.md's
// Non-goal): the digits are handed back as-is for a downstream
// arbitrary-precision library.
func (v *Value) BigIntGet() (digits string, negative bool, radix uint8, err error) {
	if v.Kind() != KindBigInt {
		return "", false, 0, mismatch(KindBigInt, v.Kind())
	}
	return v.bigDigits, v.bigNeg, v.bigRadix, nil
}

// BigDecGet returns the validated decimal string and sign of a KindBigDec
// value.
func (v *Value) BigDecGet() (decimal string, negative bool, err error) {
	if v.Kind() != KindBigDec {
		return "", false, mismatch(KindBigDec, v.Kind())
	}
	return v.bigDigits, v.bigNeg, nil
}

// RatioGet returns the numerator and denominator of a KindRatio value,
// already reduced to lowest terms with a positive denominator (spec.md
// §3.2 invariant 4).
func (v *Value) RatioGet() (numerator, denominator int64, err error) {
	if v.Kind() != KindRatio {
		return 0, 0, mismatch(KindRatio, v.Kind())
	}
	return v.ratioNum, v.ratioDen, nil
}

// BigRatioGet returns the numerator/denominator digit strings and sign of
// a KindBigRatio value.
func (v *Value) BigRatioGet() (numerator, denominator string, negative bool, err error) {
	if v.Kind() != KindBigRatio {
		return "", "", false, mismatch(KindBigRatio, v.Kind())
	}
	return v.bigRatioNum, v.bigRatioDen, v.bigRatioNeg, nil
}

// StringGet returns the string's content, decoding escapes on first access
// and caching the result thereafter (spec.md §4.4). If the string has no
// escapes, the returned string shares storage with the original input
// buffer (zero-copy, spec.md §8 property 6).
func (v *Value) StringGet() (string, error) {
	if v.Kind() != KindString {
		return "", mismatch(KindString, v.Kind())
	}
	if !v.strHasEscapes {
		return v.strRaw, nil
	}
	if v.strDecoded != nil {
		return *v.strDecoded, nil
	}
	decoded, err := decodeStringValue(v)
	if err != nil {
		return "", err
	}
	v.strDecoded = &decoded
	return decoded, nil
}

// SymbolGet returns the (namespace, name) of a KindSymbol value; namespace
// is "" when the symbol has none.
func (v *Value) SymbolGet() (namespace, name string, err error) {
	if v.Kind() != KindSymbol {
		return "", "", mismatch(KindSymbol, v.Kind())
	}
	return v.namespace, v.name, nil
}

// KeywordGet returns the (namespace, name) of a KindKeyword value.
func (v *Value) KeywordGet() (namespace, name string, err error) {
	if v.Kind() != KindKeyword {
		return "", "", mismatch(KindKeyword, v.Kind())
	}
	return v.namespace, v.name, nil
}

// TaggedGet returns the tag symbol and inner value of a KindTagged value.
func (v *Value) TaggedGet() (tag string, inner *Value, err error) {
	if v.Kind() != KindTagged {
		return "", nil, mismatch(KindTagged, v.Kind())
	}
	return v.tag, v.inner, nil
}

// ExternalGet returns the opaque payload and type id of a KindExternal
// value.
func (v *Value) ExternalGet() (payload any, typeID uint32, err error) {
	if v.Kind() != KindExternal {
		return nil, 0, mismatch(KindExternal, v.Kind())
	}
	return v.externalPayload, v.externalTypeID, nil
}

// --- collection accessors ---

// Count returns the number of elements in a list/vector/set, or the number
// of entries in a map.
func (v *Value) Count() (int, error) {
	switch v.Kind() {
	case KindList, KindVector, KindSet:
		return len(v.items), nil
	case KindMap:
		return len(v.pairs), nil
	default:
		return 0, mismatch(KindVector, v.Kind())
	}
}

// Index returns the i'th element of a list/vector/set (0-based).
func (v *Value) Index(i int) (*Value, error) {
	switch v.Kind() {
	case KindList, KindVector, KindSet:
		if i < 0 || i >= len(v.items) {
			return nil, fmt.Errorf("goedn: index %d out of range (len %d)", i, len(v.items))
		}
		return v.items[i], nil
	default:
		return nil, mismatch(KindVector, v.Kind())
	}
}

// Contains reports whether a set contains an element equal to key, or a
// map has an entry whose key is equal to key.
func (v *Value) Contains(key *Value) (bool, error) {
	switch v.Kind() {
	case KindSet:
		for _, e := range v.items {
			if ValueEqual(e, key) {
				return true, nil
			}
		}
		return false, nil
	case KindMap:
		for _, p := range v.pairs {
			if ValueEqual(p.Key, key) {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, mismatch(KindMap, v.Kind())
	}
}

// Lookup returns the value associated with key in a map, or the matching
// element itself in a set. ok is false if absent or v is not a map/set.
func (v *Value) Lookup(key *Value) (result *Value, ok bool) {
	switch v.Kind() {
	case KindMap:
		for _, p := range v.pairs {
			if ValueEqual(p.Key, key) {
				return p.Value, true
			}
		}
	case KindSet:
		for _, e := range v.items {
			if ValueEqual(e, key) {
				return e, true
			}
		}
	}
	return nil, false
}

// MapEntryAt returns the i'th key/value pair of a map, in insertion order.
func (v *Value) MapEntryAt(i int) (MapEntry, error) {
	if v.Kind() != KindMap {
		return MapEntry{}, mismatch(KindMap, v.Kind())
	}
	if i < 0 || i >= len(v.pairs) {
		return MapEntry{}, fmt.Errorf("goedn: map entry index %d out of range (len %d)", i, len(v.pairs))
	}
	return v.pairs[i], nil
}
