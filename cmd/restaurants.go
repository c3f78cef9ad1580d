package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/chrisdamba/foodbrowse/internal/query"
	"github.com/chrisdamba/foodbrowse/internal/source"
	"github.com/spf13/cobra"
)

var restaurantsCmd = &cobra.Command{
	Use:   "restaurants",
	Short: "List restaurants near the configured location",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustLoadConfig()
		ctx, cancel := signalContext()
		defer cancel()

		pages, _ := cmd.Flags().GetInt("pages")
		search, _ := cmd.Flags().GetString("query")
		filter, _ := cmd.Flags().GetString("filter")
		asJSON, _ := cmd.Flags().GetBool("json")

		browser := newBrowser(cfg, newAdapter(cfg))
		if err := browser.DetectLocation(ctx); err != nil {
			var locErr *models.LocationError
			if errors.As(err, &locErr) {
				return fmt.Errorf("could not determine location (%s); pass --lat and --lng", locErr.Reason)
			}
			return err
		}
		for i := 1; i < pages; i++ {
			if !browser.Feed.State().HasMore {
				break
			}
			if err := browser.Feed.LoadMore(ctx); err != nil {
				return err
			}
		}
		browser.Wait()

		state := browser.Feed.State()
		items := query.ApplyFilter(state.Items, search, query.ParseFilter(filter))
		if state.Notice != "" {
			fmt.Fprintln(os.Stderr, state.Notice)
		}

		if asJSON {
			state.Items = items
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(state)
		}
		return printRestaurants(cmd.OutOrStdout(), state, items)
	},
}

func init() {
	restaurantsCmd.Flags().Int("pages", 1, "Number of pages to load")
	restaurantsCmd.Flags().StringP("query", "q", "", "Search restaurant names and cuisines")
	restaurantsCmd.Flags().StringP("filter", "f", models.FilterAll, "Filter: all, fast-delivery, offers, top-rated, veg, price")
	restaurantsCmd.Flags().Bool("json", false, "Print the feed state as JSON")
	rootCmd.AddCommand(restaurantsCmd)
}

func printRestaurants(out io.Writer, state source.FeedState, items []models.Restaurant) error {
	if state.Location != nil {
		fmt.Fprintf(out, "Restaurants near %s (%s data, %d page(s))\n\n", state.Location, state.Source, state.Page)
	}
	if len(items) == 0 {
		fmt.Fprintln(out, "No restaurants found. Try a different search or filter.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCUISINE\tRATING\tTIME\tFOR TWO\tOFFER")
	for _, r := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%d min\t%d\t%s\n",
			r.ID, r.Name, strings.Join(r.Cuisine, ", "), r.Rating, r.DeliveryTime, r.PriceForTwo, r.Discount)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if state.HasMore {
		fmt.Fprintln(out, "\nMore restaurants available, use --pages to load them.")
	}
	return nil
}
