package edn

import "github.com/fxamacker/cbor/v2"

// builtinCBORTypeID is the External type_id used for values produced by the
// optional built-in #cbor reader (SPEC_FULL.md §4). It is a reserved,
// library-owned id; user code should pick type_ids elsewhere in the uint32
// space for its own External registrations.
const builtinCBORTypeID uint32 = 1

// cborReader decodes #cbor "<string>" into an External value wrapping the
// decoded Go value, using github.com/fxamacker/cbor/v2. The string's bytes
// (after escape decoding) are taken as raw CBOR; no base16 decoding is done.
// It is
// opt-in via WithBuiltinReaders, mirroring the teacher's pattern of shipping
// a handful of built-in decorators behind an explicit opt-in flag rather
// than registering them unconditionally.
func cborReader(inner *Value, ar *Arena) (*Value, error) {
	raw, err := inner.StringGet()
	if err != nil {
		return nil, &Error{Kind: ErrInvalidSyntax, Message: "#cbor requires a string payload: " + err.Error()}
	}
	var decoded any
	if err := cbor.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, &Error{Kind: ErrInvalidSyntax, Message: "#cbor: " + err.Error()}
	}
	return ExternalCreate(ar, decoded, builtinCBORTypeID), nil
}

// builtinReaders returns the tag -> ReaderFunc table enabled by
// WithBuiltinReaders.
func builtinReaders() map[string]ReaderFunc {
	return map[string]ReaderFunc{
		"cbor": cborReader,
	}
}
