package provider

import "fmt"

// Registry holds all configured social providers and allows lookup by
// provider name. It performs no auth logic itself.
type Registry struct {
	providers map[string]SocialProvider
	order     []string
}

// NewRegistry registers the given social providers by name.
// Provider names must be unique.
func NewRegistry(list ...SocialProvider) *Registry {
	m := make(map[string]SocialProvider)
	order := make([]string, 0, len(list))
	for _, p := range list {
		if _, dup := m[p.Name()]; dup {
			continue
		}
		m[p.Name()] = p
		order = append(order, p.Name())
	}
	return &Registry{providers: m, order: order}
}

// Get returns the social provider by name or an error if not registered.
func (r *Registry) Get(name string) (SocialProvider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown social provider: %s", name)
	}
	return p, nil
}

// All returns the registered providers in registration order.
func (r *Registry) All() []SocialProvider {
	out := make([]SocialProvider, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.providers[name])
	}
	return out
}
