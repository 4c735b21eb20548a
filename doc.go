// Package edn reads a textual, self-describing data notation that extends
// the JSON data model with richer scalars (characters, symbols, keywords,
// arbitrary-precision integers and decimals, optional rationals),
// additional collections (lists and sets alongside vectors and maps), and
// user-extensible tagged literals.
//
// Read and ReadWithOptions consume an already-materialised UTF-8 byte
// buffer and produce an in-memory Value tree in one shot: there is no
// streaming API and no serialization back to text. A parse either succeeds
// completely or fails with a single structured Error; there is no partial
// recovery.
//
// Every Value returned by a parse is owned by that parse's Arena. Call
// Release once the tree is no longer needed to reclaim it deterministically,
// or simply drop every reference to it and let the garbage collector do so;
// until then every span into the original input and every decoded buffer
// remains valid.
package edn
