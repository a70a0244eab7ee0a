package cache

// ScopedKeyer wraps a Keyer with a prefix so that passages fetched from
// different API sources never share cache entries.
//
// Example usage:
//
//	// Keys scoped to a self-hosted API
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "source:local:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PassageKey generates a prefixed key for a fetched passage.
func (k *ScopedKeyer) PassageKey(translation, reference string) string {
	return k.prefix + k.inner.PassageKey(translation, reference)
}
