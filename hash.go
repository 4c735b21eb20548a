package edn

import (
	"encoding/binary"
	"math"

	"golang.org/x/crypto/blake2b"
)

// ValueHash implements spec.md §4.12's structural hash: combines the
// value's type tag with a content hash, satisfying a==b => hash(a)==hash(b)
// (spec.md §8 property 4). It feeds the value's components into an unkeyed
// BLAKE2b-256 hasher and folds the digest to a uint64, which is what
// internal/dedup's sorted and hash-set tiers use as their Hash. Set and map
// elements are hashed separately with ValueHash and summed, so that element
// order does not change the result.
//
// Equal-by-mathematical-value Int/BigInt pairs hash the same way they
// compare: by normalized decimal digits, not by in-memory representation.
func ValueHash(v *Value) uint64 {
	h, _ := blake2b.New256(nil)
	hashInto(h, v)
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum[:8])
}

type hasher interface {
	Write(p []byte) (int, error)
}

func hashInto(h hasher, v *Value) {
	// Int and BigInt share one hash tag, and so do Ratio and BigRatio, so
	// that equal-by-mathematical-value pairs (spec.md §4.12) also hash
	// equal; every other kind is tagged by its own Kind.
	switch v.Kind() {
	case KindInt, KindBigInt:
		writeTag(h, kindTagInteger)
		writeString(h, bigIntOf(v).String())
		return
	case KindRatio, KindBigRatio:
		writeTag(h, kindTagRatio)
		n, d := ratioOf(v)
		writeString(h, n.String())
		writeString(h, d.String())
		return
	}

	writeTag(h, byte(v.Kind()))
	switch v.Kind() {
	case KindNil:
	case KindBool:
		writeTag(h, boolByte(v.boolVal))
	case KindFloat:
		f := v.floatVal
		if f == 0 {
			f = 0 // -0.0 == 0.0 under ValueEqual, so both hash as +0.0
		}
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	case KindBigDec:
		writeBool(h, v.bigNeg)
		writeString(h, v.bigDigits)
	case KindCharacter:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(v.charVal))
		h.Write(buf[:])
	case KindString:
		s, _ := v.StringGet()
		writeString(h, s)
	case KindSymbol, KindKeyword:
		writeString(h, v.namespace)
		writeString(h, v.name)
	case KindList, KindVector:
		for _, e := range v.items {
			hashInto(h, e)
		}
	case KindSet:
		// Order-independent: sum per-element hashes rather than chain them,
		// so permutations of the same elements hash identically (required
		// for ValueEqual's unordered-multiset comparison, spec.md §4.12).
		var sum uint64
		for _, e := range v.items {
			sum += ValueHash(e)
		}
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], sum)
		h.Write(buf[:])
	case KindMap:
		var sum uint64
		for _, p := range v.pairs {
			sum += ValueHash(p.Key) ^ (ValueHash(p.Value) * 0x9E3779B97F4A7C15)
		}
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], sum)
		h.Write(buf[:])
	case KindTagged:
		writeString(h, v.tag)
		hashInto(h, v.inner)
	case KindExternal:
		if hf := lookupExternalHash(v.externalTypeID); hf != nil {
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], hf(v.externalPayload))
			h.Write(buf[:])
		} else {
			var buf [4]byte
			binary.LittleEndian.PutUint32(buf[:], v.externalTypeID)
			h.Write(buf[:])
		}
	}
}

const (
	kindTagInteger = 0xF1
	kindTagFloat   = 0xF2
	kindTagRatio   = 0xF3
)

func writeTag(h hasher, b byte) { h.Write([]byte{b}) }

func writeBool(h hasher, b bool) { writeTag(h, boolByte(b)) }

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func writeString(h hasher, s string) {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(s)))
	h.Write(lenBuf[:])
	h.Write([]byte(s))
}
