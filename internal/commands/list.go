package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"unitconv"
)

func newListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list [CATEGORY]",
		Short: "List categories, or the units of one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := s.converter.Registry()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			if len(args) == 0 {
				_, _ = fmt.Fprintln(w, "KEY\tNAME\tKIND\tBASE")
				for _, c := range reg.Categories() {
					base := c.BaseUnit
					if base == "" {
						base = "-"
					}
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Key, c.Name, c.Kind(), base)
				}
				return w.Flush()
			}

			cat, ok := reg.Lookup(unitconv.CategoryKey(args[0]))
			if !ok {
				return fmt.Errorf("%q: %w", args[0], unitconv.ErrUnknownCategory)
			}
			_, _ = fmt.Fprintln(w, "KEY\tSYMBOL\tLABEL")
			for _, u := range cat.Units() {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", u.Key, u.Symbol, u.Label)
			}
			return w.Flush()
		},
	}
}

func newSearchCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Find units by key, symbol or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := s.converter.Registry().Search(args[0])
			if len(results) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No units found.")
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "CATEGORY\tKEY\tLABEL")
			for _, r := range results {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", r.Category.Key, r.Unit.Key, r.Unit.Label)
			}
			return w.Flush()
		},
	}
}
