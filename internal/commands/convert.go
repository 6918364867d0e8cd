package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"unitconv"
)

func newConvertCmd(s *session) *cobra.Command {
	var (
		category string
		rates    []string
	)
	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a value between two units",
		Long: `Convert a value between two units of one category.
Currency conversion needs rates, taken from the config file and --rate flags.
Each rate is the amount of that currency equal to one USD.`,
		Example: `  # Length
  unitconv convert 1 m cm --category length

  # Currency with inline rates
  unitconv convert 100 USD EUR --category currency --rate USD=1 --rate EUR=0.92`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[0], unitconv.ErrInvalidValue)
			}
			table, err := parseRates(s.cfg.Rates, rates)
			if err != nil {
				return err
			}

			result, err := s.converter.Convert(value, args[1], args[2], unitconv.CategoryKey(category), table)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(result, 'g', -1, 64))
			return err
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "category key (length, weight, temperature, volume, area, currency, speed, time, data)")
	cmd.Flags().StringArrayVar(&rates, "rate", nil, "currency rate as CODE=RATE, repeatable")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}
