package unitconv

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
)

// ReferenceCurrency is the currency every RateTable is expressed against.
const ReferenceCurrency = "USD"

func currencyCategory() *Category {
	return newCategory(Currency, "Currency", "", KindRate,
		rated("USD", "USD ($)", "$"),
		rated("EUR", "EUR (€)", "€"),
		rated("GBP", "GBP (£)", "£"),
		rated("JPY", "JPY (¥)", "¥"),
		rated("CAD", "CAD (CA$)", "CA$"),
		rated("AUD", "AUD (A$)", "A$"),
		rated("CHF", "CHF (CHF)", "CHF"),
		rated("CNY", "CNY (CN¥)", "CN¥"),
		rated("INR", "INR (₹)", "₹"),
		rated("BRL", "BRL (R$)", "R$"),
		rated("RUB", "RUB (₽)", "₽"),
		rated("ZAR", "ZAR (R)", "R"),
	)
}

// Rate returns the rate for code. Zero and NaN rates count as missing.
func (r RateTable) Rate(code string) (float64, bool) {
	rate, ok := r[code]
	if !ok || rate == 0 || math.IsNaN(rate) {
		return 0, false
	}
	return rate, true
}

// ToReference converts amount of currency code into the reference currency.
func (r RateTable) ToReference(amount float64, code string) (float64, error) {
	rate, ok := r.Rate(code)
	if !ok {
		return 0, fmt.Errorf("%q: %w", code, ErrMissingRate)
	}
	return amount / rate, nil
}

// Validate checks that every code is an ISO 4217 code and every rate is a
// positive finite number.
func (r RateTable) Validate() error {
	for code, rate := range r {
		if _, err := currency.ParseISO(code); err != nil {
			return fmt.Errorf("rate %q: %w", code, err)
		}
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return fmt.Errorf("rate %q: must be positive and finite, got %v", code, rate)
		}
	}
	return nil
}

// rates[X] is X per one reference unit: divide to enter the reference
// currency, multiply to leave it.
func convertCurrency(value float64, fromCode, toCode string, rates RateTable) (float64, error) {
	inReference, err := rates.ToReference(value, fromCode)
	if err != nil {
		return 0, err
	}
	toRate, ok := rates.Rate(toCode)
	if !ok {
		return 0, fmt.Errorf("%q: %w", toCode, ErrMissingRate)
	}
	// (v/r)*r is not always v in binary floating point
	if fromCode == toCode {
		return value, nil
	}
	return inReference * toRate, nil
}
