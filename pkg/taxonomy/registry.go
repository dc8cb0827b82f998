package taxonomy

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownCode is returned by Lookup when a code is not registered. It is
// the only supported way to detect that a code does not exist.
var ErrUnknownCode = errors.New("unknown error code")

// Registry is an insertion-ordered mapping from numeric code to AgentError.
//
// A Registry provides no internal locking: callers that mutate a shared
// instance after construction must serialise Register against concurrent
// reads themselves. The built-in registry is never mutated after package
// initialisation, so concurrent reads of it are safe.
type Registry struct {
	order []int
	defs  map[int]AgentError
}

// NewRegistry returns an empty registry, independent of the built-in one.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[int]AgentError)}
}

// Register inserts or replaces the entry for def.Code. Replacing keeps the
// code's original insertion position.
func (r *Registry) Register(def AgentError) {
	if _, ok := r.defs[def.Code]; !ok {
		r.order = append(r.order, def.Code)
	}
	r.defs[def.Code] = def
}

// Get returns the definition for code, or ok=false when absent.
func (r *Registry) Get(code int) (AgentError, bool) {
	def, ok := r.defs[code]
	return def, ok
}

// ByCategory returns all definitions in category, in insertion order.
func (r *Registry) ByCategory(category Category) []AgentError {
	var out []AgentError
	for _, code := range r.order {
		if def := r.defs[code]; def.Category == category {
			out = append(out, def)
		}
	}
	return out
}

// Len returns the number of registered codes.
func (r *Registry) Len() int {
	return len(r.order)
}

// Codes returns the registered codes in insertion order.
func (r *Registry) Codes() []int {
	out := make([]int, len(r.order))
	copy(out, r.order)
	return out
}

// builtin is the process-wide registry, constructed eagerly from the static
// catalog so no lazy-init synchronisation is ever needed.
var builtin = newBuiltinRegistry()

func newBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, def := range builtinDefs {
		if err := def.Validate(); err != nil {
			panic(fmt.Sprintf("taxonomy: invalid built-in definition %d: %v", def.Code, err))
		}
		r.Register(def)
	}
	return r
}

// Builtin returns the built-in registry. It must be treated as read-only.
func Builtin() *Registry {
	return builtin
}

// Lookup returns the built-in definition for code, or an error wrapping
// ErrUnknownCode when the code is not registered.
func Lookup(code int) (AgentError, error) {
	def, ok := builtin.Get(code)
	if !ok {
		return AgentError{}, fmt.Errorf("%w: %d", ErrUnknownCode, code)
	}
	return def, nil
}

// Get returns the built-in definition for code, or ok=false when absent.
// Unlike Lookup it never fails.
func Get(code int) (AgentError, bool) {
	return builtin.Get(code)
}

// ErrorsByCategory returns the built-in definitions in category, sorted by
// ascending code.
func ErrorsByCategory(category Category) []AgentError {
	defs := builtin.ByCategory(category)
	sort.Slice(defs, func(i, j int) bool { return defs[i].Code < defs[j].Code })
	return defs
}

// All returns every built-in definition, sorted by ascending code.
func All() []AgentError {
	defs := make([]AgentError, 0, builtin.Len())
	for _, code := range builtin.Codes() {
		def, _ := builtin.Get(code)
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Code < defs[j].Code })
	return defs
}

// mustLookup is used internally for codes guaranteed to be in the catalog.
func mustLookup(code int) AgentError {
	def, err := Lookup(code)
	if err != nil {
		panic(err)
	}
	return def
}
