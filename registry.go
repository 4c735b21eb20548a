package edn

import "github.com/DotFox/goedn/registry"

// Registry holds tag -> ReaderFunc registrations for tagged literals
// (spec.md §4.9). The zero value is not usable; construct with
// NewRegistry. A *Registry is attached to a read via WithRegistry.
type Registry struct {
	r *registry.Registry
}

// NewRegistry creates an empty registry with the default Passthrough
// fallback policy.
func NewRegistry() *Registry {
	return &Registry{r: registry.New()}
}

// RegisterReader associates tag with fn, replacing any previous
// registration for that tag.
func (r *Registry) RegisterReader(tag string, fn ReaderFunc) {
	r.r.Register(tag, adaptReader(fn))
}

// UnregisterReader removes tag's reader, if any.
func (r *Registry) UnregisterReader(tag string) {
	r.r.Unregister(tag)
}

// adaptReader bridges the typed edn.ReaderFunc to the registry package's
// opaque registry.ReaderFunc, which exists purely to keep registry free of
// an import-cycle back to this package (see registry.Value / registry.Arena
// doc comments).
func adaptReader(fn ReaderFunc) registry.ReaderFunc {
	return func(inner registry.Value, ar registry.Arena) (registry.Value, error) {
		v, _ := inner.(*Value)
		a, _ := ar.(*Arena)
		out, err := fn(v, a)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

func lookupReader(o *Options, tag string) (ReaderFunc, bool) {
	if o == nil || o.registry == nil {
		return nil, false
	}
	rf, ok := o.registry.Lookup(tag)
	if !ok {
		return nil, false
	}
	return func(inner *Value, ar *Arena) (*Value, error) {
		out, err := rf(inner, ar)
		if err != nil {
			return nil, err
		}
		v, _ := out.(*Value)
		return v, nil
	}, true
}

func registryFallback(o *Options) FallbackPolicy {
	if o == nil || o.registry == nil {
		return FallbackPassthrough
	}
	return FallbackPolicy(o.registry.FallbackPolicy())
}

func unknownTagMessage(o *Options, tag string) string {
	if o == nil || o.registry == nil {
		return "no reader registered for tag \"" + tag + "\""
	}
	return o.registry.UnknownTagMessage(tag)
}
