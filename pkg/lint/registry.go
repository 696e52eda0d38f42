package lint

import (
	"slices"
	"sync"
)

// Registry holds the rule catalog.
//
// Unlike a plain lookup table the registry is ordered: rules are evaluated,
// and their diagnostics reported, in registration order.
type Registry struct {
	mu      sync.RWMutex
	ordered []Rule
	byID    map[string]Rule
	byName  map[string]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Rule),
		byName: make(map[string]Rule),
	}
}

// Register appends a rule to the catalog.
// If a rule with the same ID already exists, it is replaced in place.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byID[rule.ID()]; ok {
		idx := slices.IndexFunc(r.ordered, func(x Rule) bool { return x.ID() == rule.ID() })
		r.ordered[idx] = rule
		delete(r.byName, existing.Name())
	} else {
		r.ordered = append(r.ordered, rule)
	}

	r.byID[rule.ID()] = rule
	r.byName[rule.Name()] = rule
}

// Get retrieves a rule by ID or name.
// It tries ID first, then falls back to name lookup.
func (r *Registry) Get(key string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.byID[key]; ok {
		return rule, true
	}
	if rule, ok := r.byName[key]; ok {
		return rule, true
	}
	return nil, false
}

// GetByID retrieves a rule by its ID only.
func (r *Registry) GetByID(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byID[id]
	return rule, ok
}

// GetByName retrieves a rule by its name only.
func (r *Registry) GetByName(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byName[name]
	return rule, ok
}

// Rules returns all registered rules in catalog order.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.ordered)
}

// IDs returns all registered rule IDs in catalog order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.ordered))
	for _, rule := range r.ordered {
		result = append(result, rule.ID())
	}
	return result
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
