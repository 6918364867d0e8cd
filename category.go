package unitconv

import (
	"fmt"
	"math"
)

type CategoryKey string

const (
	Length      CategoryKey = "length"
	Weight      CategoryKey = "weight"
	Temperature CategoryKey = "temperature"
	Volume      CategoryKey = "volume"
	Area        CategoryKey = "area"
	Currency    CategoryKey = "currency"
	Speed       CategoryKey = "speed"
	Time        CategoryKey = "time"
	Data        CategoryKey = "data"
)

// Keys returns every category key in registry order.
func Keys() []CategoryKey {
	return []CategoryKey{Length, Weight, Temperature, Volume, Area, Currency, Speed, Time, Data}
}

// Kind is the conversion shape shared by all units of a category.
type Kind int

const (
	KindLinear Kind = iota
	KindAffine
	KindRate
)

func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindAffine:
		return "affine"
	case KindRate:
		return "rate"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// RateTable maps a currency code to the amount of that currency equal to one
// unit of the reference currency (USD). It is supplied per call.
type RateTable map[string]float64

// Category is a closed group of mutually convertible units.
type Category struct {
	Key  CategoryKey
	Name string
	// BaseUnit is the unit with factor 1. Empty for non-linear categories.
	BaseUnit string

	kind  Kind
	units unitTable
}

func newCategory(key CategoryKey, name, baseUnit string, kind Kind, units ...Unit) *Category {
	return &Category{
		Key:      key,
		Name:     name,
		BaseUnit: baseUnit,
		kind:     kind,
		units:    newUnitTable(units...),
	}
}

func (c *Category) Kind() Kind {
	return c.kind
}

// Units returns the category's units in display order.
func (c *Category) Units() []Unit {
	return c.units.list()
}

func (c *Category) Unit(key string) (Unit, bool) {
	return c.units.get(key)
}

// Convert converts value between two units of a linear or affine category.
// Currency needs a rate table and always fails here with ErrRatesRequired;
// use ConvertWithRates.
func (c *Category) Convert(value float64, fromUnitKey, toUnitKey string) (float64, error) {
	if math.IsNaN(value) {
		return 0, ErrInvalidValue
	}
	switch c.kind {
	case KindLinear:
		return c.convertLinear(value, fromUnitKey, toUnitKey)
	case KindAffine:
		return c.convertAffine(value, fromUnitKey, toUnitKey)
	case KindRate:
		return 0, fmt.Errorf("%s -> %s: %w", fromUnitKey, toUnitKey, ErrRatesRequired)
	}
	return 0, fmt.Errorf("category %q: unsupported kind %s", c.Key, c.kind)
}

// ConvertWithRates is the currency entry point. A nil table fails with
// ErrRatesRequired. Other categories ignore rates.
func (c *Category) ConvertWithRates(value float64, fromUnitKey, toUnitKey string, rates RateTable) (float64, error) {
	if c.kind != KindRate {
		return c.Convert(value, fromUnitKey, toUnitKey)
	}
	if math.IsNaN(value) {
		return 0, ErrInvalidValue
	}
	if rates == nil {
		return 0, fmt.Errorf("%s -> %s: %w", fromUnitKey, toUnitKey, ErrRatesRequired)
	}
	return convertCurrency(value, fromUnitKey, toUnitKey, rates)
}

func (c *Category) convertLinear(value float64, fromUnitKey, toUnitKey string) (float64, error) {
	from, err := c.linearUnit(fromUnitKey)
	if err != nil {
		return 0, err
	}
	to, err := c.linearUnit(toUnitKey)
	if err != nil {
		return 0, err
	}

	// exact identity, the trip through the base unit is not bit-exact for every factor
	if fromUnitKey == toUnitKey {
		return value, nil
	}

	baseValue := from.ToBase(value)
	oneTargetInBase := to.ToBase(1)
	if oneTargetInBase == 0 {
		return 0, fmt.Errorf("%s %q: %w", c.Key, toUnitKey, ErrDegenerateUnit)
	}
	return baseValue / oneTargetInBase, nil
}

func (c *Category) linearUnit(key string) (Linear, error) {
	u, ok := c.units.get(key)
	if !ok {
		return Linear{}, fmt.Errorf("%s %q: %w", c.Key, key, ErrUnknownUnit)
	}
	l, ok := u.Conversion.(Linear)
	if !ok {
		return Linear{}, fmt.Errorf("%s %q has no base scale: %w", c.Key, key, ErrUnknownUnit)
	}
	return l, nil
}

func (c *Category) convertAffine(value float64, fromUnitKey, toUnitKey string) (float64, error) {
	u, ok := c.units.get(fromUnitKey)
	if !ok {
		return 0, fmt.Errorf("%s %q: %w", c.Key, fromUnitKey, ErrUnknownUnit)
	}
	a, ok := u.Conversion.(Affine)
	if !ok || a.Convert == nil {
		return 0, fmt.Errorf("%s %q has no converter: %w", c.Key, fromUnitKey, ErrUnknownUnit)
	}

	if fromUnitKey == toUnitKey {
		return value, nil
	}

	result, ok := a.Convert(value, toUnitKey)
	if !ok {
		return 0, fmt.Errorf("%s %q: %w", c.Key, toUnitKey, ErrUnknownUnit)
	}
	return result, nil
}
