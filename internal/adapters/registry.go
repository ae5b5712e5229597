package adapters

// Registry holds the known adapters in registration order.
type Registry struct {
	adapters []ThemeAdapter
}

// NewRegistry creates a registry over the given adapters, preserving order.
func NewRegistry(adapters ...ThemeAdapter) *Registry {
	return &Registry{adapters: append([]ThemeAdapter(nil), adapters...)}
}

// DefaultRegistry returns the shipped adapters: VS Code, Ghostty, Helix.
// Adding an application means adding an adapter here.
func DefaultRegistry(opts ...Option) *Registry {
	return NewRegistry(
		NewVSCodeAdapter(opts...),
		NewGhosttyAdapter(opts...),
		NewHelixAdapter(opts...),
	)
}

// List returns the adapters in registration order.
func (r *Registry) List() []ThemeAdapter {
	return append([]ThemeAdapter(nil), r.adapters...)
}

// Get returns the adapter with the given config key, or nil.
func (r *Registry) Get(key string) ThemeAdapter {
	for _, adapter := range r.adapters {
		if adapter.ConfigKey() == key {
			return adapter
		}
	}
	return nil
}

// Len returns the number of registered adapters.
func (r *Registry) Len() int {
	return len(r.adapters)
}
