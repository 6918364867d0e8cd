package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unitconv/catalog"
)

func newCatalogCmd(s *session) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Export the unit registry to a SQLite catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = s.cfg.Catalog
			}
			c, err := catalog.Open(path)
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.Export(cmd.Context(), s.converter.Registry()); err != nil {
				return err
			}
			s.logger.Info("catalog exported", zap.String("path", path))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d categories to %s\n", len(s.converter.Registry().Categories()), path)
			return err
		},
	}
	cmd.Flags().StringVar(&path, "db", "", "catalog path (defaults to the config catalog)")
	return cmd
}
