package recipe

import (
	"sort"
	"sync"

	"github.com/StarQTius/Little-Type-Library/errors"
	"github.com/StarQTius/Little-Type-Library/validation"
)

// Predicate selects elements for filter steps.
type Predicate func(int) bool

// Transform computes the replacement element for map steps.
type Transform func(int) int

var registry = struct {
	mu         sync.RWMutex
	predicates map[string]Predicate
	transforms map[string]Transform
}{
	predicates: map[string]Predicate{
		"even":     func(x int) bool { return x%2 == 0 },
		"odd":      func(x int) bool { return x%2 != 0 },
		"positive": func(x int) bool { return x > 0 },
		"negative": func(x int) bool { return x < 0 },
		"nonzero":  func(x int) bool { return x != 0 },
	},
	transforms: map[string]Transform{
		"square":    func(x int) int { return x * x },
		"double":    func(x int) int { return 2 * x },
		"negate":    func(x int) int { return -x },
		"increment": func(x int) int { return x + 1 },
		"abs": func(x int) int {
			if x < 0 {
				return -x
			}
			return x
		},
	},
}

// RegisterPredicate makes p available to filter steps as name, replacing
// any predicate already registered under it.
func RegisterPredicate(name string, p Predicate) error {
	if err := checkName("filter", name, p == nil); err != nil {
		return err
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.predicates[name] = p
	return nil
}

// RegisterTransform makes t available to map steps as name, replacing any
// transform already registered under it.
func RegisterTransform(name string, t Transform) error {
	if err := checkName("map", name, t == nil); err != nil {
		return err
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.transforms[name] = t
	return nil
}

func checkName(kind, name string, isNil bool) error {
	if !validation.IsStep(kind + ":" + name) {
		return errors.InvalidInput("name", "invalid "+kind+" name "+`"`+name+`"`)
	}
	if isNil {
		return errors.InvalidInput(kind, "nil function for "+name)
	}
	return nil
}

// LookupPredicate returns the predicate registered as name.
func LookupPredicate(name string) (Predicate, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	p, ok := registry.predicates[name]
	return p, ok
}

// LookupTransform returns the transform registered as name.
func LookupTransform(name string) (Transform, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	t, ok := registry.transforms[name]
	return t, ok
}

// Predicates returns the registered predicate names in sorted order.
func Predicates() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return sortedKeys(registry.predicates)
}

// Transforms returns the registered transform names in sorted order.
func Transforms() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return sortedKeys(registry.transforms)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
