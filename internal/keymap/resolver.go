package keymap

import (
	"fmt"
	"slices"
)

// ConflictError reports a key bound to two different actions.
type ConflictError struct {
	Key           string
	First, Second Action
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("key %q bound to both %s and %s", e.Key, e.First, e.Second)
}

// Resolver turns the key strings reported by bubbletea into actions.
// A key may appear in several contexts as long as it always means the
// same action.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
}

// NewResolver indexes bindings in both directions.
func NewResolver(bindings []Binding) (*Resolver, error) {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			if prev, ok := r.actions[k]; ok && prev != b.Action {
				return nil, &ConflictError{Key: k, First: prev, Second: b.Action}
			}
			r.actions[k] = b.Action
			if !slices.Contains(r.keys[b.Action], k) {
				r.keys[b.Action] = append(r.keys[b.Action], k)
			}
		}
	}
	return r, nil
}

// Default resolves Bindings. It panics if Bindings is inconsistent,
// which the package tests rule out.
func Default() *Resolver {
	r, err := NewResolver(Bindings)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve returns the action bound to key, or "" when unbound.
func (r *Resolver) Resolve(key string) Action { return r.actions[key] }

// KeysFor returns the keys bound to action in declaration order.
func (r *Resolver) KeysFor(action Action) []string {
	return slices.Clone(r.keys[action])
}
