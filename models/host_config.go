package models

// HostConfig is the override record produced by host heuristics. It
// carries at most a collection-method override; an empty HostConfig
// leaves the resolved configuration untouched.
type HostConfig struct {
	collectionMethod *CollectionMethod
}

// SetCollectionMethod records a collection-method override.
func (h *HostConfig) SetCollectionMethod(m CollectionMethod) {
	h.collectionMethod = &m
}

// HasCollectionMethod reports whether an override was recorded.
func (h HostConfig) HasCollectionMethod() bool {
	return h.collectionMethod != nil
}

// CollectionMethod returns the override value. Only meaningful when
// HasCollectionMethod is true.
func (h HostConfig) CollectionMethod() CollectionMethod {
	if h.collectionMethod == nil {
		return CollectionCoreBPF
	}

	return *h.collectionMethod
}
