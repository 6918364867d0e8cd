package unitconv

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Converter routes a conversion to its category. It holds no mutable state.
type Converter struct {
	registry *Registry
	logger   *zap.Logger
}

type Option func(*Converter)

// WithLogger sets the logger for diagnostics (unknown category, missing rates).
func WithLogger(logger *zap.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithRegistry(registry *Registry) Option {
	return func(c *Converter) {
		if registry != nil {
			c.registry = registry
		}
	}
}

func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		registry: DefaultRegistry(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Converter) Registry() *Registry {
	return c.registry
}

// Convert converts value from one unit to another within category. rates is
// only consulted for currency, where it is mandatory.
func (c *Converter) Convert(value float64, fromUnitKey, toUnitKey string, category CategoryKey, rates RateTable) (float64, error) {
	if math.IsNaN(value) {
		return 0, ErrInvalidValue
	}

	cat, ok := c.registry.Lookup(category)
	if !ok {
		c.logger.Warn("unknown category key", zap.String("category", string(category)))
		return 0, fmt.Errorf("%q: %w", category, ErrUnknownCategory)
	}

	if cat.Kind() == KindRate {
		if rates == nil {
			c.logger.Warn("currency rates are required for currency conversion",
				zap.String("from", fromUnitKey),
				zap.String("to", toUnitKey))
			return 0, fmt.Errorf("%s -> %s: %w", fromUnitKey, toUnitKey, ErrRatesRequired)
		}
		result, err := cat.ConvertWithRates(value, fromUnitKey, toUnitKey, rates)
		if err != nil {
			c.logger.Debug("currency conversion failed", zap.Error(err))
		}
		return result, err
	}
	return cat.Convert(value, fromUnitKey, toUnitKey)
}

var defaultConverter = NewConverter()

// Convert uses the default registry with diagnostics discarded.
func Convert(value float64, fromUnitKey, toUnitKey string, category CategoryKey, rates RateTable) (float64, error) {
	return defaultConverter.Convert(value, fromUnitKey, toUnitKey, category, rates)
}

// ConversionModules returns the default registry for enumeration.
func ConversionModules() *Registry {
	return defaultRegistry
}
