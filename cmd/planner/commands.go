package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"travelai/internal/models/request_models"
	"travelai/internal/planner"
	"travelai/internal/services"
	"travelai/pkg/logger"
)

func newRootCmd(out io.Writer) *cobra.Command {
	var logLevel string
	rootCmd := &cobra.Command{
		Use:           "planner",
		Short:         "Generate travel itineraries from the built-in activity catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level written to stderr")

	// generate
	var (
		destination string
		days        int
		budget      string
		travelers   string
		interests   []string
		cities      []string
		notes       string
		seed        uint64
		compact     bool
	)
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Print an itinerary as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := planner.DefaultRand()
			if seed != 0 {
				rng = planner.NewSeededRand(seed)
			}
			gen := planner.NewGenerator(planner.DefaultCatalog(), planner.WithRand(rng))
			svc := services.NewItineraryService(gen, nil, logger.NewWithWriter(os.Stderr, "planner", logLevel))

			it, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{
				Destination: destination,
				Duration:    days,
				Budget:      budget,
				Travelers:   travelers,
				Interests:   interests,
				Notes:       notes,
				Cities:      cities,
			})
			if err != nil {
				return err
			}
			return writeJSON(out, it, !compact)
		},
	}
	generateCmd.Flags().StringVarP(&destination, "destination", "d", "", "Destination (required)")
	generateCmd.Flags().IntVarP(&days, "days", "n", 3, "Trip length in days")
	generateCmd.Flags().StringVarP(&budget, "budget", "b", string(planner.BudgetMid), "budget, mid-range or luxury")
	generateCmd.Flags().StringVarP(&travelers, "travelers", "t", string(planner.TravelersSolo), "1, 2, 3-4 or 5+")
	generateCmd.Flags().StringSliceVarP(&interests, "interest", "i", nil, "Interest tag, repeatable")
	generateCmd.Flags().StringSliceVarP(&cities, "city", "c", nil, "City to rotate through, one per day, repeatable")
	generateCmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	generateCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible output (0 is random)")
	generateCmd.Flags().BoolVar(&compact, "compact", false, "Print JSON on one line")
	_ = generateCmd.MarkFlagRequired("destination")
	rootCmd.AddCommand(generateCmd)

	// cities
	var country string
	citiesCmd := &cobra.Command{
		Use:   "cities",
		Short: "Suggest cities for a country",
		RunE: func(cmd *cobra.Command, args []string) error {
			suggested, err := services.NewCityService().SuggestCities(country)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, strings.Join(suggested, "\n"))
			return err
		},
	}
	citiesCmd.Flags().StringVar(&country, "country", "", "Country name (required)")
	_ = citiesCmd.MarkFlagRequired("country")
	rootCmd.AddCommand(citiesCmd)

	// destinations
	rootCmd.AddCommand(&cobra.Command{
		Use:   "destinations",
		Short: "List destinations with their own activity table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range planner.DefaultCatalog().Destinations() {
				if _, err := fmt.Fprintln(out, name); err != nil {
					return err
				}
			}
			return nil
		},
	})

	return rootCmd
}

func writeJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
