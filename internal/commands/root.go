// Package commands implements the unitconv CLI.
package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unitconv"
	"unitconv/internal/config"
	"unitconv/internal/logging"
)

// session is loaded once per invocation by the root PersistentPreRunE.
type session struct {
	configPath string
	logLevel   string

	cfg       *config.Config
	logger    *zap.Logger
	converter *unitconv.Converter
}

func (s *session) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", s.configPath, err)
	}

	level := s.logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	logger, err := logging.New(level)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.logger = logger
	s.converter = unitconv.NewConverter(unitconv.WithLogger(logger))
	return nil
}

func (s *session) close(*cobra.Command, []string) error {
	if s.logger != nil {
		_ = s.logger.Sync()
	}
	return nil
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	s := &session{}
	rootCmd := &cobra.Command{
		Use:                "unitconv",
		Short:              "Convert values between units of length, weight, temperature, currency and more",
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  s.load,
		PersistentPostRunE: s.close,
	}
	rootCmd.PersistentFlags().StringVar(&s.configPath, "config", config.DefaultFileName, "path to the config file")
	rootCmd.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newConvertCmd(s),
		newListCmd(s),
		newSearchCmd(s),
		newCatalogCmd(s),
		newServeCmd(s),
	)
	return rootCmd
}

// parseRates turns CODE=RATE pairs into a table layered over base.
func parseRates(base unitconv.RateTable, pairs []string) (unitconv.RateTable, error) {
	if base == nil && len(pairs) == 0 {
		return nil, nil
	}
	rates := make(unitconv.RateTable, len(base)+len(pairs))
	for code, rate := range base {
		rates[code] = rate
	}
	for _, pair := range pairs {
		code, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("rate %q: want CODE=RATE", pair)
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("rate %q: %w", pair, err)
		}
		rates[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return rates, nil
}
