package unitconv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConvert_Scenarios(t *testing.T) {
	rates := RateTable{"USD": 1, "EUR": 0.92}

	tests := []struct {
		name     string
		value    float64
		from, to string
		category CategoryKey
		rates    RateTable
		want     float64
		delta    float64
	}{
		{name: "m to cm", value: 1, from: "m", to: "cm", category: Length, want: 100},
		{name: "kg to g", value: 1, from: "kg", to: "g", category: Weight, want: 1000},
		{name: "freezing C to F", value: 0, from: "°C", to: "°F", category: Temperature, want: 32},
		{name: "boiling C to F", value: 100, from: "°C", to: "°F", category: Temperature, want: 212},
		{name: "fixed point C to F", value: -40, from: "°C", to: "°F", category: Temperature, want: -40},
		{name: "KB to MB", value: 1024, from: "KB", to: "MB", category: Data, want: 1},
		{name: "USD to EUR", value: 100, from: "USD", to: "EUR", category: Currency, rates: rates, want: 92, delta: 1e-9},
		{name: "km/h to mph", value: 100, from: "km/h", to: "mph", category: Speed, want: 62.137, delta: 1e-3},
		{name: "kg to mg", value: 1, from: "kg", to: "mg", category: Weight, want: 1_000_000},
		{name: "m to mm", value: 1, from: "m", to: "mm", category: Length, want: 1000},
		{name: "nmi to m", value: 1, from: "nmi", to: "m", category: Length, want: 1852},
		{name: "L to ml", value: 1, from: "L", to: "ml", category: Volume, want: 1000},
		{name: "gal to L", value: 1, from: "gal", to: "L", category: Volume, want: 3.78541, delta: 1e-5},
		{name: "hr to min", value: 1, from: "hr", to: "min", category: Time, want: 60},
		{name: "day to hr", value: 1, from: "day", to: "hr", category: Time, want: 24},
		{name: "ha to m²", value: 1, from: "ha", to: "m²", category: Area, want: 10000},
		{name: "m² to ft²", value: 1, from: "m²", to: "ft²", category: Area, want: 10.7639, delta: 1e-4},
		{name: "MB to KB", value: 1, from: "MB", to: "KB", category: Data, want: 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to, tt.category, tt.rates)
			require.NoError(t, err)
			if tt.delta == 0 {
				assert.Equal(t, tt.want, got)
			} else {
				assert.InDelta(t, tt.want, got, tt.delta)
			}
		})
	}
}

func TestConvert_InvalidValue(t *testing.T) {
	rates := RateTable{"USD": 1, "EUR": 0.92}
	for _, key := range Keys() {
		t.Run(string(key), func(t *testing.T) {
			units := defaultRegistry.categories[key].Units()
			_, err := Convert(math.NaN(), units[0].Key, units[1].Key, key, rates)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestConvert_UnknownUnit(t *testing.T) {
	rates := RateTable{"USD": 1, "EUR": 0.92}
	for _, key := range Keys() {
		t.Run(string(key), func(t *testing.T) {
			valid := defaultRegistry.categories[key].Units()[0].Key

			_, err := Convert(1, "bogus", valid, key, rates)
			assert.Error(t, err)

			_, err = Convert(1, valid, "bogus", key, rates)
			assert.Error(t, err)
		})
	}
}

func TestConvert_UnknownCategory(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := NewConverter(WithLogger(zap.New(core)))

	var err error
	assert.NotPanics(t, func() {
		_, err = c.Convert(1, "kg", "g", "bogus", nil)
	})
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Contains(t, err.Error(), "bogus")

	entries := logs.FilterField(zap.String("category", "bogus")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "unknown category key", entries[0].Message)
}

func TestConvert_CurrencyRequiresRates(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := NewConverter(WithLogger(zap.New(core)))

	_, err := c.Convert(1, "USD", "EUR", Currency, nil)
	assert.ErrorIs(t, err, ErrRatesRequired)
	assert.Equal(t, 1, logs.Len())

	_, err = c.Convert(1, "USD", "EUR", Currency, RateTable{"USD": 1})
	assert.ErrorIs(t, err, ErrMissingRate)
}

func TestConvert_Identity(t *testing.T) {
	rates := RateTable{}
	for _, u := range currencyCategory().Units() {
		rates[u.Key] = 1.0 / 49
	}
	values := []float64{0, 1, -1, 1e-9, -273.15, 123456.789, -0.1, 3.3}

	for _, cat := range defaultRegistry.Categories() {
		for _, u := range cat.Units() {
			for _, v := range values {
				got, err := Convert(v, u.Key, u.Key, cat.Key, rates)
				require.NoError(t, err, "%s %s", cat.Key, u.Key)
				assert.Equal(t, v, got, "%s %s %v", cat.Key, u.Key, v)
			}
		}
	}
}

func TestConvert_LinearRoundTripAndScale(t *testing.T) {
	values := []float64{1, 2.5, -7, 1234.5678}
	for _, cat := range defaultRegistry.Categories() {
		if cat.Kind() != KindLinear {
			continue
		}
		units := cat.Units()
		for _, a := range units {
			for _, b := range units {
				for _, x := range values {
					there, err := Convert(x, a.Key, b.Key, cat.Key, nil)
					require.NoError(t, err)
					back, err := Convert(there, b.Key, a.Key, cat.Key, nil)
					require.NoError(t, err)
					assert.InEpsilon(t, x, back, 1e-9, "%s %s<->%s", cat.Key, a.Key, b.Key)

					const k = 3.75
					scaled, err := Convert(k*x, a.Key, b.Key, cat.Key, nil)
					require.NoError(t, err)
					assert.InEpsilon(t, k*there, scaled, 1e-9, "%s %s->%s", cat.Key, a.Key, b.Key)
				}
			}
		}
	}
}

func TestConvert_CustomRegistry(t *testing.T) {
	reg := NewRegistry(newCategory(Length, "Length", "m", KindLinear,
		linear("m", "Meters", "m", 1),
		linear("void", "Nothing", "0", 0),
	))
	c := NewConverter(WithRegistry(reg))

	_, err := c.Convert(1, "m", "void", Length, nil)
	assert.ErrorIs(t, err, ErrDegenerateUnit)

	_, err = c.Convert(1, "kg", "g", Weight, nil)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
