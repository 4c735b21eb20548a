// Package scan implements the lexical scanning primitives spec.md §4.1
// calls "SIMD scanners": skip_whitespace, find_unescaped_quote, scan_digits
// and scan_identifier_body. Each is total on the half-open range
// [0, len(buf)) of the slice it's given — the scalar loop never reads past
// the end, and the batched path used by SkipWhitespace and ScanDigits (an
// 8-byte SWAR load, standing in for a vector lane the way a real SIMD
// backend would use a 16/32-byte lane) only loads a word while eight whole
// bytes remain, leaving the tail to the scalar loop.
//
// A platform-specific assembly backend could replace the batched path
// without changing behaviour; the contract this package guarantees is the
// scalar fallback (spec.md §4.1, §9 "Buffer-overrun discipline").
package scan

import "encoding/binary"

const wordSize = 8

// classify tables, ASCII range only; non-ASCII bytes fall through to the
// scalar identifier-continuation rule in ScanIdentifierBody.
var (
	isWS    [128]bool
	isIdent [128]bool
)

func init() {
	for _, c := range []byte{' ', '\t', '\n', '\r', '\f', '\v', ',', 0x1C, 0x1D, 0x1E, 0x1F} {
		isWS[c] = true
	}
	for c := 0; c < 128; c++ {
		b := byte(c)
		switch {
		case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
			isIdent[c] = true
		}
	}
	for _, c := range []byte(".-_+*!?$%&=<>:#'") {
		isIdent[c] = true
	}
	// Delimiters (including ',') and whitespace are left false by the zero
	// value; the finer keyword/symbol grammar (rejecting "x/" etc.) is
	// enforced by the identifier scanner itself, not by this table.
}

// SkipWhitespace advances past the notation's whitespace class and line
// comments (';' through LF, not consuming a missing trailing LF) and
// returns the offset of the first non-whitespace, non-comment byte, or
// len(buf) if none remains.
func SkipWhitespace(buf []byte, pos int) int {
	n := len(buf)
	for pos < n {
		// Batched skip of plain whitespace (not comments) eight bytes at a
		// time while a full word remains and every byte in it is ASCII
		// whitespace.
		for pos+wordSize <= n {
			word := binary.LittleEndian.Uint64(buf[pos : pos+wordSize])
			if !allWhitespaceWord(word) {
				break
			}
			pos += wordSize
		}
		if pos >= n {
			return n
		}
		c := buf[pos]
		if c < 128 && isWS[c] {
			pos++
			continue
		}
		if c == ';' {
			pos++
			for pos < n && buf[pos] != '\n' {
				pos++
			}
			if pos < n && buf[pos] == '\n' {
				pos++
			}
			continue
		}
		return pos
	}
	return n
}

// allWhitespaceWord reports whether every byte of an 8-byte little-endian
// word is one of the plain whitespace bytes (never ';', since a comment
// inside the word would need per-byte handling).
func allWhitespaceWord(word uint64) bool {
	for i := 0; i < wordSize; i++ {
		b := byte(word)
		word >>= 8
		if b >= 128 || !isWS[b] {
			return false
		}
	}
	return true
}

// FindUnescapedQuote scans buf[pos:] for the first '"' that terminates a
// string (i.e. is not preceded by an unpaired backslash) and reports its
// offset plus whether any backslash escape was observed along the way.
// Returns (len(buf), hasEscapes) if no terminator is found.
func FindUnescapedQuote(buf []byte, pos int) (end int, hasEscapes bool) {
	n := len(buf)
	escaped := false
	for i := pos; i < n; i++ {
		c := buf[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			hasEscapes = true
			continue
		}
		if c == '"' {
			return i, hasEscapes
		}
	}
	return n, hasEscapes
}

// ScanDigits returns the offset of the first byte in buf[pos:] that is not
// an ASCII decimal digit, or len(buf).
func ScanDigits(buf []byte, pos int) int {
	n := len(buf)
	for pos+wordSize <= n {
		word := binary.LittleEndian.Uint64(buf[pos : pos+wordSize])
		if !allDigitsWord(word) {
			break
		}
		pos += wordSize
	}
	for pos < n && buf[pos] >= '0' && buf[pos] <= '9' {
		pos++
	}
	return pos
}

func allDigitsWord(word uint64) bool {
	for i := 0; i < wordSize; i++ {
		b := byte(word)
		word >>= 8
		if b < '0' || b > '9' {
			return false
		}
	}
	return true
}

// ScanIdentifierBody returns the offset of the first byte in buf[pos:] that
// cannot continue a symbol/keyword body: letters, digits, the punctuation
// set `. - _ + * ! ? $ % & = < > : # '`, and any UTF-8 continuation byte
// (0x80-0xFF), stopping at whitespace and the delimiters
// `( ) [ ] { } " ; ,`.
func ScanIdentifierBody(buf []byte, pos int) int {
	n := len(buf)
	for pos < n {
		c := buf[pos]
		if c >= 128 {
			pos++
			continue
		}
		if !isIdent[c] {
			return pos
		}
		pos++
	}
	return n
}
