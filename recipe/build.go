package recipe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/StarQTius/Little-Type-Library/errors"
	"github.com/StarQTius/Little-Type-Library/ranges"
	"github.com/StarQTius/Little-Type-Library/validation"
)

// Step is one parsed recipe step.
type Step struct {
	Kind  ranges.Kind
	Name  string // predicate or transform name; empty for take
	Count int    // take only
}

func (s Step) String() string {
	if s.Kind == ranges.KindTake {
		return fmt.Sprintf("take:%d", s.Count)
	}
	return s.Kind.String() + ":" + s.Name
}

// ParseStep parses "filter:<name>", "map:<name>" or "take:<n>".
func ParseStep(s string) (Step, error) {
	if !validation.IsStep(s) {
		return Step{}, errors.InvalidInput("steps", fmt.Sprintf("malformed step %q", s))
	}
	kind, arg, _ := strings.Cut(s, ":")
	switch kind {
	case "filter":
		return Step{Kind: ranges.KindFilter, Name: arg}, nil
	case "map":
		return Step{Kind: ranges.KindMap, Name: arg}, nil
	default:
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Step{}, errors.InvalidInput("steps", fmt.Sprintf("take count %q out of range", arg)).WithCause(err)
		}
		return Step{Kind: ranges.KindTake, Count: n}, nil
	}
}

// Descriptor resolves the step against the registry.
func (s Step) Descriptor() (ranges.Descriptor[int, int], error) {
	switch s.Kind {
	case ranges.KindFilter:
		p, ok := LookupPredicate(s.Name)
		if !ok {
			return ranges.Descriptor[int, int]{}, unknown("filter", s.Name, Predicates())
		}
		return ranges.Filter[int](p), nil
	case ranges.KindMap:
		t, ok := LookupTransform(s.Name)
		if !ok {
			return ranges.Descriptor[int, int]{}, unknown("map", s.Name, Transforms())
		}
		return ranges.Map[int, int](t), nil
	default:
		return ranges.Take[int](s.Count), nil
	}
}

func unknown(kind, name string, known []string) *errors.AppError {
	return errors.InvalidInput("steps", fmt.Sprintf("unknown %s %q", kind, name)).
		WithDetail("known", known)
}

// Build composes the steps of cfg, in order, into a pipeline. No steps
// yields the identity pipeline. Build touches no data.
func Build(cfg Config) (ranges.Pipeline[int, int], error) {
	p := ranges.Chain[int]()
	for i, raw := range cfg.Steps {
		step, err := ParseStep(raw)
		if err != nil {
			return p, errors.Wrap(err).WithDetail("index", i)
		}
		d, err := step.Descriptor()
		if err != nil {
			return p, errors.Wrap(err).WithDetail("index", i)
		}
		p = p.Then(d)
	}
	return p, nil
}
