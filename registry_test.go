package unitconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Default(t *testing.T) {
	reg := ConversionModules()
	require.NoError(t, reg.Validate())

	var keys []CategoryKey
	for _, c := range reg.Categories() {
		keys = append(keys, c.Key)
		assert.NotEmpty(t, c.Name)
		for _, u := range c.Units() {
			assert.NotEmpty(t, u.Label, "%s %s", c.Key, u.Key)
			assert.NotEmpty(t, u.Symbol, "%s %s", c.Key, u.Key)
		}
	}
	assert.Equal(t, Keys(), keys)
}

func TestRegistry_CatalogCoverage(t *testing.T) {
	want := map[CategoryKey][]string{
		Length:      {"m", "ft", "in", "km", "mi", "cm", "mm", "yd", "nmi"},
		Weight:      {"kg", "lb", "oz", "g", "mg", "ton"},
		Temperature: {"°C", "°F", "K", "°R"},
		Volume:      {"L", "gal", "ml", "cup", "fl_oz", "tbsp", "tsp", "m³", "ft³", "in³"},
		Area:        {"m²", "ft²", "acre", "km²", "ha", "yd²", "mi²"},
		Currency:    {"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "CHF", "CNY", "INR", "BRL", "RUB", "ZAR"},
		Speed:       {"km/h", "mph", "m/s", "knot", "ft/s"},
		Time:        {"sec", "min", "hr", "day", "week", "month", "year"},
		Data:        {"B", "KB", "MB", "GB", "TB"},
	}
	for key, units := range want {
		cat, ok := DefaultRegistry().Lookup(key)
		require.True(t, ok, key)
		assert.Len(t, cat.Units(), len(units), key)
		for _, u := range units {
			_, ok := cat.Unit(u)
			assert.True(t, ok, "%s %s", key, u)
		}
	}
}

func TestRegistry_ReferenceFactors(t *testing.T) {
	factors := map[CategoryKey]map[string]float64{
		Length: {"m": 1, "cm": 0.01, "in": 0.0254, "ft": 0.3048, "yd": 0.9144, "km": 1000, "mi": 1609.34, "nmi": 1852},
		Weight: {"kg": 1, "g": 0.001, "lb": 0.453592, "oz": 0.0283495, "ton": 1000},
		Area:   {"m²": 1, "ft²": 0.092903, "km²": 1e6, "mi²": 2589988, "acre": 4046.86, "ha": 10000, "yd²": 0.836127},
		Volume: {"ml": 1, "L": 1000, "tsp": 4.92892, "tbsp": 14.7868, "cup": 236.588, "fl_oz": 29.5735, "gal": 3785.41},
		Speed:  {"km/h": 1, "mph": 1.60934, "m/s": 3.6, "knot": 1.852, "ft/s": 1.09728},
		Time:   {"sec": 1, "min": 60, "hr": 3600, "day": 86400, "week": 604800, "month": 2629746, "year": 31556952},
		Data:   {"B": 1, "KB": 1024, "MB": 1 << 20, "GB": 1 << 30, "TB": 1 << 40},
	}
	for key, units := range factors {
		cat, _ := DefaultRegistry().Lookup(key)
		for unitKey, want := range units {
			u, ok := cat.Unit(unitKey)
			require.True(t, ok, "%s %s", key, unitKey)
			assert.Equal(t, want, u.Conversion.(Linear).ToBase(1), "%s %s", key, unitKey)
		}
	}
}

func TestRegistry_Validate(t *testing.T) {
	all := func(replace *Category) []*Category {
		var out []*Category
		for _, c := range DefaultRegistry().Categories() {
			if replace != nil && c.Key == replace.Key {
				out = append(out, replace)
				continue
			}
			out = append(out, c)
		}
		return out
	}

	tests := []struct {
		name    string
		reg     *Registry
		wantErr string
	}{
		{
			name:    "missing category",
			reg:     NewRegistry(lengthCategory()),
			wantErr: "missing",
		},
		{
			name:    "shared name",
			reg:     NewRegistry(all(newCategory(Data, "Length", "B", KindLinear, linear("B", "Bytes", "B", 1)))...),
			wantErr: "already used",
		},
		{
			name: "duplicate unit",
			reg: NewRegistry(all(newCategory(Data, "Data", "B", KindLinear,
				linear("B", "Bytes", "B", 1), linear("B", "Bytes", "B", 1)))...),
			wantErr: "duplicate unit",
		},
		{
			name: "mixed variants",
			reg: NewRegistry(all(newCategory(Data, "Data", "B", KindLinear,
				linear("B", "Bytes", "B", 1), rated("X", "X", "X")))...),
			wantErr: "does not carry",
		},
		{
			name:    "base factor not one",
			reg:     NewRegistry(all(newCategory(Data, "Data", "KB", KindLinear, linear("KB", "Kilobytes", "KB", 1024)))...),
			wantErr: "has factor",
		},
		{
			name:    "missing base unit",
			reg:     NewRegistry(all(newCategory(Data, "Data", "B", KindLinear, linear("KB", "Kilobytes", "KB", 1024)))...),
			wantErr: "unknown unit",
		},
		{
			name:    "affine with base unit",
			reg:     NewRegistry(all(newCategory(Temperature, "Temperature", "K", KindAffine, affine("K", "Kelvin", "K", fromKelvin)))...),
			wantErr: "has base unit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRegistry_FirstRegistrationWins(t *testing.T) {
	reg := NewRegistry(lengthCategory(), newCategory(Length, "Other", "x", KindLinear, linear("x", "X", "x", 1)))
	require.Len(t, reg.Categories(), 1)
	c, ok := reg.Lookup(Length)
	require.True(t, ok)
	assert.Equal(t, "Length", c.Name)
}

func TestRegistry_Search(t *testing.T) {
	reg := DefaultRegistry()

	results := reg.Search("  METER ")
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Contains(t, []CategoryKey{Length, Volume, Area, Speed}, r.Category.Key)
	}
	assert.Equal(t, "km", reg.Search("kilometers")[0].Unit.Key)

	byKey := reg.Search("°r")
	require.Len(t, byKey, 1)
	assert.Equal(t, Temperature, byKey[0].Category.Key)

	assert.Nil(t, reg.Search(""))
	assert.Empty(t, reg.Search("furlong"))
}
