package edn

import "github.com/DotFox/goedn/registry"

// ReaderFunc transforms the inner value of a tagged literal #tag into the
// Value that replaces it (spec.md §4.9). It receives a borrowed Arena that
// must not be retained past the call.
type ReaderFunc func(inner *Value, ar *Arena) (*Value, error)

// FallbackPolicy decides what an unregistered #tag resolves to (spec.md
// §4.9).
type FallbackPolicy registry.FallbackPolicy

const (
	// FallbackPassthrough yields a Tagged{tag, inner} value. Default.
	FallbackPassthrough = FallbackPolicy(registry.Passthrough)
	// FallbackUnwrap discards the tag and yields inner.
	FallbackUnwrap = FallbackPolicy(registry.Unwrap)
	// FallbackError fails the parse with ErrUnknownTag.
	FallbackError = FallbackPolicy(registry.ErrorPolicy)
)

// Options configures a Read call (spec.md §4, §6.3). The zero value is the
// spec's default configuration: no registered tags, unknown tags pass
// through as Tagged values, and every optional lexical feature (ratios,
// octal, underscores, text blocks, namespaced-map sugar, metadata) is
// disabled.
//
// Options is built with the functional-options pattern, the same shape the
// teacher's runtime/parser.ParserOpt uses for its Parser construction.
type Options struct {
	registry *registry.Registry

	enableRatio          bool
	enableOctal          bool
	enableUnderscore     bool
	enableTextBlocks     bool
	enableNamespacedMaps bool
	enableMetadata       bool
	enableBuiltinReaders bool

	eofValue *Value
}

// Option configures an Options value. Apply via NewOptions(opts...) and
// pass the result to ReadWithOptions.
type Option func(*Options)

// NewOptions builds an Options from zero or more Option values.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRegistry attaches a tag registry built with RegisterReader /
// NewRegistry, so #tag literals dispatch to user-supplied readers.
func WithRegistry(r *Registry) Option {
	return func(o *Options) { o.registry = r.r }
}

// WithFallbackPolicy sets what happens to a #tag with no registered reader.
// It sets the policy on the registry attached by a WithRegistry that comes
// earlier in the same option list; with no registry attached yet it has no
// effect.
func WithFallbackPolicy(p FallbackPolicy) Option {
	return func(o *Options) {
		if o.registry != nil {
			o.registry.SetFallbackPolicy(registry.FallbackPolicy(p))
		}
	}
}

// WithRatio enables the a/b ratio literal form (spec.md §4.2, Open
// Question decision 5 in DESIGN.md: off by default since spec.md leaves
// ratio support itself feature-gated).
func WithRatio(enable bool) Option { return func(o *Options) { o.enableRatio = enable } }

// WithOctal enables the 0NNN octal integer literal form (spec.md §4.2).
func WithOctal(enable bool) Option { return func(o *Options) { o.enableOctal = enable } }

// WithUnderscoreDigitGroups enables underscore digit-group separators in
// number literals (spec.md §4.2).
func WithUnderscoreDigitGroups(enable bool) Option {
	return func(o *Options) { o.enableUnderscore = enable }
}

// WithTextBlocks enables the multi-line text-block string form (spec.md
// §4.4 supplement, experimental per SPEC_FULL.md §5).
func WithTextBlocks(enable bool) Option { return func(o *Options) { o.enableTextBlocks = enable } }

// WithNamespacedMapSugar enables #:ns{...} shorthand for a map whose
// unqualified keyword keys are implicitly namespaced (SPEC_FULL.md §5
// supplement).
func WithNamespacedMapSugar(enable bool) Option {
	return func(o *Options) { o.enableNamespacedMaps = enable }
}

// WithMetadata enables ^metadata attachment (spec.md §4.8 supplement).
func WithMetadata(enable bool) Option { return func(o *Options) { o.enableMetadata = enable } }

// WithBuiltinReaders enables the library's optional built-in tag readers
// (currently #cbor, backed by github.com/fxamacker/cbor/v2) alongside any
// user-registered tags (SPEC_FULL.md §4).
func WithBuiltinReaders(enable bool) Option {
	return func(o *Options) { o.enableBuiltinReaders = enable }
}

// WithEOFValue sets the sentinel Value returned, instead of an
// ErrUnexpectedEOF error, when the input is empty or contains only
// whitespace and comments (spec.md §6.1).
func WithEOFValue(v *Value) Option {
	return func(o *Options) { o.eofValue = v }
}
