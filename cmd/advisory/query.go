package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mianwali/crop-advisory/internal/core/domain"
	"github.com/mianwali/crop-advisory/internal/infrastructure/config"
)

func newRecommendCmd(cfg func() *config.Config) *cobra.Command {
	var criteria domain.Criteria

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank crops for a soil type, season and region",
		Long: `Scores every crop in the catalog and prints those with a positive score,
best first. Soil type and season match on substrings; the region must match
exactly (case-insensitive).

Example:
  advisory recommend --soil Loamy --season Rabi --region "Mianwali City"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := buildAdvisory(cfg(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			recs := svc.Recommend(cmd.Context(), criteria)
			if len(recs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No crops match these conditions.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "RANK\tSCORE\tCROP\tSEASON\tSOIL\tREGION\tWATER\tYIELD")
			for i, r := range recs {
				fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					i+1, r.Score, r.Crop.Name, r.Crop.Season, r.Crop.SoilType,
					r.Crop.Region, r.Crop.WaterRequirement, r.Crop.ExpectedYield.String())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&criteria.SoilType, "soil", "", "Soil type, e.g. Loamy")
	cmd.Flags().StringVar(&criteria.Season, "season", "", "Season, e.g. Rabi")
	cmd.Flags().StringVar(&criteria.Region, "region", "", "Region, e.g. Piplan")
	_ = cmd.MarkFlagRequired("soil")
	_ = cmd.MarkFlagRequired("season")
	_ = cmd.MarkFlagRequired("region")
	return cmd
}

func newCropsCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "crops [query]",
		Short: "List the catalog, or search it by name, season or region",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := buildAdvisory(cfg(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return printCrops(cmd.OutOrStdout(), svc.SearchCrops(cmd.Context(), query))
		},
	}
}

func newSoilCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "soil <type>",
		Short: "List crops suited to a soil type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := buildAdvisory(cfg(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return printCrops(cmd.OutOrStdout(), svc.SoilSuggestions(cmd.Context(), args[0]))
		},
	}
}

func printCrops(w io.Writer, crops []domain.Crop) error {
	if len(crops) == 0 {
		_, err := fmt.Fprintln(w, "No crops found.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CROP\tSEASON\tSOIL\tREGION\tWATER\tYIELD")
	for _, c := range crops {
		fmt.Fprintln(tw, strings.Join([]string{
			c.Name, c.Season, c.SoilType, c.Region, string(c.WaterRequirement), c.ExpectedYield.String(),
		}, "\t"))
	}
	return tw.Flush()
}
