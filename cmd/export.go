package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/chrisdamba/foodbrowse/internal/output"
	"github.com/chrisdamba/foodbrowse/internal/repositories"
	"github.com/chrisdamba/foodbrowse/internal/repositories/postgres"
	"github.com/chrisdamba/foodbrowse/internal/source"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Walk every restaurant page for a location and export snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustLoadConfig()
		ctx, cancel := signalContext()
		defer cancel()

		maxPages, _ := cmd.Flags().GetInt("max-pages")
		withMenus, _ := cmd.Flags().GetBool("with-menus")

		events, err := output.NewOutputDestination(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := events.Close(); err != nil {
				log.Printf("Error closing output: %v", err)
			}
		}()

		exp := &exporter{events: events, now: time.Now}
		if cfg.DatabaseEnabled {
			pool, err := pgxpool.New(ctx, cfg.Database.DSN())
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer pool.Close()
			if err := postgres.EnsureSchema(ctx, pool); err != nil {
				return err
			}
			exp.restaurants = postgres.NewRestaurantRepository(pool)
			exp.menus = postgres.NewMenuItemRepository(pool)
		}

		adapter := newAdapter(cfg)
		browser := newBrowser(cfg, adapter)
		return exp.run(ctx, browser, adapter, maxPages, withMenus)
	},
}

func init() {
	exportCmd.Flags().Int("max-pages", 20, "Stop after this many pages")
	exportCmd.Flags().Bool("with-menus", false, "Also fetch and export every restaurant's menu")
	rootCmd.AddCommand(exportCmd)
}

type detailFetcher interface {
	FetchRestaurantDetail(ctx context.Context, id string) (models.RestaurantDetail, error)
	PageSize() int
}

type exporter struct {
	events      output.OutputDestination
	restaurants repositories.RestaurantRepository
	menus       repositories.MenuItemRepository
	now         func() time.Time
}

func (e *exporter) run(ctx context.Context, browser *source.Browser, details detailFetcher, maxPages int, withMenus bool) error {
	if err := browser.DetectLocation(ctx); err != nil {
		return err
	}
	for page := 1; page < maxPages && browser.Feed.State().HasMore; page++ {
		if err := browser.Feed.LoadMore(ctx); err != nil {
			return err
		}
	}
	browser.Wait()

	state := browser.Feed.State()
	loc := models.Location{}
	if state.Location != nil {
		loc = *state.Location
	}
	log.Printf("Exporting %d restaurants near %s (%s data)", len(state.Items), loc, state.Source)

	at := e.now()
	page := models.Page{Source: state.Source}
	pageSize := max(details.PageSize(), 1)
	for i, r := range state.Items {
		page.Page = i/pageSize + 1
		if err := output.Publish(e.events, output.TopicRestaurantSnapshots, output.NewRestaurantSnapshot(r, loc, page, at)); err != nil {
			return err
		}
	}
	if e.restaurants != nil {
		if err := e.restaurants.BulkUpsert(ctx, state.Items); err != nil {
			return fmt.Errorf("failed to store restaurants: %w", err)
		}
	}

	if !withMenus {
		return nil
	}

	bar := progressbar.NewOptions(len(state.Items),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Exporting menus"),
		progressbar.OptionShowCount(),
	)
	for _, r := range state.Items {
		detail, err := details.FetchRestaurantDetail(ctx, r.ID)
		if err != nil {
			return err
		}
		for _, event := range output.NewMenuItemSnapshots(detail, at) {
			if err := output.Publish(e.events, output.TopicMenuItemSnapshots, event); err != nil {
				return err
			}
		}
		if e.menus != nil {
			if err := e.menus.ReplaceMenu(ctx, r.ID, detail.Menu); err != nil {
				return fmt.Errorf("failed to store menu for %s: %w", r.ID, err)
			}
		}
		_ = bar.Add(1)
	}
	return bar.Finish()
}
