// Package catalog exports the unit registry to SQLite so UI collaborators can
// populate category and unit pickers without linking the engine.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"unitconv"
)

type Catalog struct {
	db *sql.DB
}

// Open opens (creating when needed) the SQLite catalog at path.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	c := &Catalog{db: db}
	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			key TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL,
			base_unit TEXT,
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS units (
			category_key TEXT NOT NULL REFERENCES categories(key),
			key TEXT NOT NULL,
			label TEXT NOT NULL,
			symbol TEXT NOT NULL,
			factor REAL,
			position INTEGER NOT NULL,
			PRIMARY KEY (category_key, key)
		);`,
	}
	for _, q := range queries {
		if _, err := c.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Export replaces the catalog contents with reg in one transaction. factor is
// set for linear units only.
func (c *Catalog) Export(ctx context.Context, reg *unitconv.Registry) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	for _, q := range []string{`DELETE FROM units;`, `DELETE FROM categories;`} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return err
		}
	}

	for i, cat := range reg.Categories() {
		var base sql.NullString
		if cat.BaseUnit != "" {
			base = sql.NullString{String: cat.BaseUnit, Valid: true}
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO categories (key, name, kind, base_unit, position) VALUES (?, ?, ?, ?, ?)`,
			string(cat.Key), cat.Name, cat.Kind().String(), base, i)
		if err != nil {
			return fmt.Errorf("category %q: %w", cat.Key, err)
		}
		for j, u := range cat.Units() {
			var factor sql.NullFloat64
			if l, ok := u.Conversion.(unitconv.Linear); ok {
				factor = sql.NullFloat64{Float64: l.Factor, Valid: true}
			}
			_, err := tx.ExecContext(ctx, `INSERT INTO units (category_key, key, label, symbol, factor, position) VALUES (?, ?, ?, ?, ?, ?)`,
				string(cat.Key), u.Key, u.Label, u.Symbol, factor, j)
			if err != nil {
				return fmt.Errorf("unit %s/%s: %w", cat.Key, u.Key, err)
			}
		}
	}
	return tx.Commit()
}

type CategoryRow struct {
	Key      string
	Name     string
	Kind     string
	BaseUnit string
}

type UnitRow struct {
	CategoryKey string
	Key         string
	Label       string
	Symbol      string
	// Factor is zero for non-linear units.
	Factor float64
}

func (c *Catalog) Categories(ctx context.Context) ([]CategoryRow, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT key, name, kind, base_unit FROM categories ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategoryRow
	for rows.Next() {
		var r CategoryRow
		var base sql.NullString
		if err := rows.Scan(&r.Key, &r.Name, &r.Kind, &base); err != nil {
			return nil, err
		}
		r.BaseUnit = base.String
		out = append(out, r)
	}
	return out, rows.Err()
}

// Units lists the units of one category in display order.
func (c *Catalog) Units(ctx context.Context, category unitconv.CategoryKey) ([]UnitRow, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT category_key, key, label, symbol, factor FROM units WHERE category_key = ? ORDER BY position`,
		string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UnitRow
	for rows.Next() {
		var r UnitRow
		var factor sql.NullFloat64
		if err := rows.Scan(&r.CategoryKey, &r.Key, &r.Label, &r.Symbol, &factor); err != nil {
			return nil, err
		}
		r.Factor = factor.Float64
		out = append(out, r)
	}
	return out, rows.Err()
}
