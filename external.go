package edn

import "sync"

// externalTypeInfo holds the optional equality/hash functions registered
// for an External type_id (spec.md §4.9, §5: "a separate registry
// (process-wide) maps type_id -> optional (equal_fn, hash_fn)").
type externalTypeInfo struct {
	equal ExternalEqualFunc
	hash  ExternalHashFunc
}

var (
	externalTypesMu sync.RWMutex
	externalTypes   = map[uint32]externalTypeInfo{}
)

// RegisterExternalType registers the equality and hash functions an
// External value of the given type_id should use for structural equality
// and set/map-key semantics. type_id 0 is reserved-invalid (spec.md §5)
// and is rejected. Either function may be nil; a nil equal falls back to
// pointer identity, a nil hash falls back to a type-id-only hash.
//
// This registry is process-wide, not per-parse (spec.md §5): register
// types during program initialization, before any concurrent parse might
// construct or compare an External of that type.
func RegisterExternalType(typeID uint32, equal ExternalEqualFunc, hash ExternalHashFunc) error {
	if typeID == 0 {
		return &Error{Kind: ErrInvalidSyntax, Message: "type_id 0 is reserved"}
	}
	externalTypesMu.Lock()
	defer externalTypesMu.Unlock()
	externalTypes[typeID] = externalTypeInfo{equal: equal, hash: hash}
	return nil
}

// UnregisterExternalType removes a previously registered type. Per
// spec.md §5, unregistering while a parse still holds External values of
// that type is undefined behaviour for this library's own equality/hash
// paths (the values themselves remain valid Go values either way).
func UnregisterExternalType(typeID uint32) {
	externalTypesMu.Lock()
	defer externalTypesMu.Unlock()
	delete(externalTypes, typeID)
}

func lookupExternalEqual(typeID uint32) ExternalEqualFunc {
	externalTypesMu.RLock()
	defer externalTypesMu.RUnlock()
	return externalTypes[typeID].equal
}

func lookupExternalHash(typeID uint32) ExternalHashFunc {
	externalTypesMu.RLock()
	defer externalTypesMu.RUnlock()
	return externalTypes[typeID].hash
}

// ExternalCreate builds an External value carrying payload, to be returned
// from a user reader function (spec.md §6.1). The arena passed must be the
// same arena the reader function received; the returned Value is owned by
// it like any other (spec.md §3.3).
func ExternalCreate(ar *Arena, payload any, typeID uint32) *Value {
	return &Value{kind: KindExternal, externalPayload: payload, externalTypeID: typeID, ar: ar.a}
}
