package unitconv

// Conversion is the behavior attached to a unit. It is one of Linear, Affine
// or RateDriven; a category never mixes variants.
type Conversion interface {
	isConversion()
}

// Linear scales a quantity into the category's base unit: 1 unit = Factor base units.
type Linear struct {
	Factor float64
}

// Affine converts directly into a named target unit. ok is false when the
// target is not known to this unit.
type Affine struct {
	Convert func(v float64, target string) (result float64, ok bool)
}

// RateDriven marks currency units. Their relation comes from a caller supplied RateTable.
type RateDriven struct{}

func (Linear) isConversion() {}
func (Affine) isConversion() {}
func (RateDriven) isConversion() {}

// ToBase converts v into the base unit.
func (l Linear) ToBase(v float64) float64 {
	return v * l.Factor
}

type Unit struct {
	Key        string
	Label      string
	Symbol     string
	Conversion Conversion
}

// Add a linear unit like: 1 km = 1000 m → linear("km", "Kilometers", "km", 1000)
func linear(key, label, symbol string, factorToBase float64) Unit {
	return Unit{Key: key, Label: label, Symbol: symbol, Conversion: Linear{Factor: factorToBase}}
}

func affine(key, label, symbol string, fn func(v float64, target string) (float64, bool)) Unit {
	return Unit{Key: key, Label: label, Symbol: symbol, Conversion: Affine{Convert: fn}}
}

func rated(key, label, symbol string) Unit {
	return Unit{Key: key, Label: label, Symbol: symbol, Conversion: RateDriven{}}
}

// unitTable keeps insertion order for display and a key index for lookups.
type unitTable struct {
	order []Unit
	index map[string]int
}

func newUnitTable(units ...Unit) unitTable {
	t := unitTable{
		order: make([]Unit, 0, len(units)),
		index: make(map[string]int, len(units)),
	}
	for _, u := range units {
		t.index[u.Key] = len(t.order)
		t.order = append(t.order, u)
	}
	return t
}

func (t unitTable) get(key string) (Unit, bool) {
	i, ok := t.index[key]
	if !ok {
		return Unit{}, false
	}
	return t.order[i], true
}

func (t unitTable) list() []Unit {
	return append([]Unit(nil), t.order...) // return a copy
}
