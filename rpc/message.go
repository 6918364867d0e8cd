package rpc

import (
	"errors"
	"fmt"

	"unitconv"
)

// Request asks for one conversion. A nil Value is an absent value. A nil
// Rates map is an absent rate table, which currency rejects.
type Request struct {
	Value    *float64           `msgpack:"value"`
	From     string             `msgpack:"from"`
	To       string             `msgpack:"to"`
	Category string             `msgpack:"category"`
	Rates    unitconv.RateTable `msgpack:"rates"`
}

type Response struct {
	Value float64 `msgpack:"value"`
	Code  string  `msgpack:"code,omitempty"`
	Error string  `msgpack:"error,omitempty"`
}

type UnitInfo struct {
	Key    string `msgpack:"key"`
	Label  string `msgpack:"label"`
	Symbol string `msgpack:"symbol"`
}

type CategoryInfo struct {
	Key      string     `msgpack:"key"`
	Name     string     `msgpack:"name"`
	Kind     string     `msgpack:"kind"`
	BaseUnit string     `msgpack:"base_unit,omitempty"`
	Units    []UnitInfo `msgpack:"units"`
}

// Status values carried in the response header.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var codes = []struct {
	code string
	err  error
}{
	{"invalid_value", unitconv.ErrInvalidValue},
	{"unknown_unit", unitconv.ErrUnknownUnit},
	{"unknown_category", unitconv.ErrUnknownCategory},
	{"rates_required", unitconv.ErrRatesRequired},
	{"missing_rate", unitconv.ErrMissingRate},
	{"degenerate_unit", unitconv.ErrDegenerateUnit},
	{"no_function", ErrReqHasNoFunc},
	{"no_such_function", ErrNoSuchFunc},
	{"bad_request", ErrReqHasNoBody},
}

func codeOf(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "internal"
}

// errorOf rebuilds a client side error that still matches the sentinel with errors.Is.
func errorOf(code, msg string) error {
	for _, c := range codes {
		if c.code == code {
			return fmt.Errorf("remote: %s: %w", msg, c.err)
		}
	}
	return fmt.Errorf("remote: %s", msg)
}

func newCategoryInfo(c *unitconv.Category) CategoryInfo {
	info := CategoryInfo{
		Key:      string(c.Key),
		Name:     c.Name,
		Kind:     c.Kind().String(),
		BaseUnit: c.BaseUnit,
	}
	for _, u := range c.Units() {
		info.Units = append(info.Units, UnitInfo{Key: u.Key, Label: u.Label, Symbol: u.Symbol})
	}
	return info
}
