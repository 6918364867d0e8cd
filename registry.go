package unitconv

import (
	"fmt"
	"strings"
)

// Registry maps every CategoryKey to its Category. It is built once and never
// mutated, so it is safe for concurrent use.
type Registry struct {
	keys       []CategoryKey
	categories map[CategoryKey]*Category
}

var defaultRegistry = NewRegistry(
	lengthCategory(),
	weightCategory(),
	temperatureCategory(),
	volumeCategory(),
	areaCategory(),
	currencyCategory(),
	speedCategory(),
	timeCategory(),
	dataCategory(),
)

// DefaultRegistry returns the shipped categories.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func NewRegistry(categories ...*Category) *Registry {
	r := &Registry{
		keys:       make([]CategoryKey, 0, len(categories)),
		categories: make(map[CategoryKey]*Category, len(categories)),
	}
	for _, c := range categories {
		if _, dup := r.categories[c.Key]; dup {
			continue
		}
		r.keys = append(r.keys, c.Key)
		r.categories[c.Key] = c
	}
	return r
}

func (r *Registry) Lookup(key CategoryKey) (*Category, bool) {
	c, ok := r.categories[key]
	return c, ok
}

// Categories returns the categories in registration order.
func (r *Registry) Categories() []*Category {
	out := make([]*Category, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.categories[k])
	}
	return out
}

// Validate reports the first broken registry invariant: a missing category
// key, a shared category name, a duplicate unit key, a unit whose variant does
// not match its category, or a linear base unit whose factor is not 1.
func (r *Registry) Validate() error {
	for _, k := range Keys() {
		if _, ok := r.categories[k]; !ok {
			return fmt.Errorf("category %q: missing", k)
		}
	}
	names := make(map[string]CategoryKey, len(r.keys))
	for _, c := range r.Categories() {
		if other, dup := names[c.Name]; dup {
			return fmt.Errorf("category %q: name %q already used by %q", c.Key, c.Name, other)
		}
		names[c.Name] = c.Key
		if err := c.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Category) validate() error {
	if len(c.units.index) != len(c.units.order) {
		return fmt.Errorf("category %q: duplicate unit key", c.Key)
	}
	for _, u := range c.units.order {
		var ok bool
		switch conv := u.Conversion.(type) {
		case Linear:
			ok = c.kind == KindLinear
		case Affine:
			ok = c.kind == KindAffine && conv.Convert != nil
		case RateDriven:
			ok = c.kind == KindRate
		}
		if !ok {
			return fmt.Errorf("category %q: unit %q does not carry a %s conversion", c.Key, u.Key, c.kind)
		}
	}
	if c.kind != KindLinear {
		if c.BaseUnit != "" {
			return fmt.Errorf("category %q: %s category has base unit %q", c.Key, c.kind, c.BaseUnit)
		}
		return nil
	}
	base, ok := c.units.get(c.BaseUnit)
	if !ok {
		return fmt.Errorf("category %q: base unit %q: %w", c.Key, c.BaseUnit, ErrUnknownUnit)
	}
	if f := base.Conversion.(Linear).Factor; f != 1 {
		return fmt.Errorf("category %q: base unit %q has factor %v", c.Key, c.BaseUnit, f)
	}
	return nil
}

type SearchResult struct {
	Category *Category
	Unit     Unit
}

// Search finds units whose key, symbol or label contains query, ignoring case.
// Results follow registry order then unit display order.
func (r *Registry) Search(query string) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var results []SearchResult
	for _, c := range r.Categories() {
		for _, u := range c.units.order {
			if strings.Contains(strings.ToLower(u.Key), q) ||
				strings.Contains(strings.ToLower(u.Symbol), q) ||
				strings.Contains(strings.ToLower(u.Label), q) {
				results = append(results, SearchResult{Category: c, Unit: u})
			}
		}
	}
	return results
}
