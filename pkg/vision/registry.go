package vision

import "sync"

// Registry hands out model handles with load-once-per-kind semantics.
// A failed load is not cached, so a later Get retries.
type Registry struct {
	loader Loader

	mu     sync.Mutex
	models map[string]Model
}

func NewRegistry(loader Loader) *Registry {
	return &Registry{
		loader: loader,
		models: make(map[string]Model),
	}
}

// Get returns the handle for name, loading it on first use.
func (r *Registry) Get(name string) (Model, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.models[name]; ok {
		return m, nil
	}

	m, err := r.loader.Load(name)
	if err != nil {
		return nil, err
	}
	r.models[name] = m
	return m, nil
}

// Warm loads the model eagerly, discarding the handle.
func (r *Registry) Warm(name string) error {
	_, err := r.Get(name)
	return err
}

// Loaded reports whether the model has already been materialized.
func (r *Registry) Loaded(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.models[name]
	return ok
}
