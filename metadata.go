package edn

import "github.com/DotFox/goedn/internal/arena"

// normalizeMetadataForm expands one form of a ^metadata chain (spec.md
// §4.8) into what a reader sees via Value.Meta(); the three shorthand forms
// become maps:
//   - ^:keyword v   => {:keyword true}
//   - ^"string"  v  => {:tag "string"}   (the :tag key, per spec.md §4.8)
//   - ^symbol v     => {:tag symbol}
//   - ^[...]  v     => the vector itself, passed through as-is (not a map)
//   - ^{...} v      => used as-is
//
// readMetadataChain (reader.go) normalizes every form of ^form1 ^form2 val
// and merges them right-to-left with mergeMetadata, so on key collision the
// form written later (closer to val) takes precedence.
func normalizeMetadataForm(ar *arena.Arena, form *Value) *Value {
	switch form.Kind() {
	case KindMap:
		return form
	case KindKeyword:
		trueKw := boolValue(true)
		m := &Value{kind: KindMap, ar: ar}
		m.pairs = []MapEntry{{Key: form, Value: trueKw}}
		return m
	case KindString, KindSymbol:
		tagKw := &Value{kind: KindKeyword, name: "tag", ar: ar}
		m := &Value{kind: KindMap, ar: ar}
		m.pairs = []MapEntry{{Key: tagKw, Value: form}}
		return m
	default:
		return form
	}
}

// mergeMetadata combines an outer metadata map into an inner one, with the
// inner (closer to the value) map's entries taking precedence on key
// collision, per spec.md §4.8.
func mergeMetadata(ar *arena.Arena, outer, inner *Value) *Value {
	if outer == nil {
		return inner
	}
	if inner == nil {
		return outer
	}
	if outer.Kind() != KindMap || inner.Kind() != KindMap {
		return inner
	}
	merged := &Value{kind: KindMap, ar: ar}
	merged.pairs = append(merged.pairs, inner.pairs...)
	for _, oe := range outer.pairs {
		collides := false
		for _, ie := range inner.pairs {
			if ValueEqual(oe.Key, ie.Key) {
				collides = true
				break
			}
		}
		if !collides {
			merged.pairs = append(merged.pairs, oe)
		}
	}
	return merged
}
