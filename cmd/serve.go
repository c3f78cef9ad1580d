package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/chrisdamba/foodbrowse/internal/output"
	"github.com/chrisdamba/foodbrowse/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve restaurants, menus and carts over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustLoadConfig()
		ctx, cancel := signalContext()
		defer cancel()

		if release, _ := cmd.Flags().GetBool("release"); release {
			gin.SetMode(gin.ReleaseMode)
		}

		events, err := output.NewOutputDestination(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := events.Close(); err != nil {
				log.Printf("Error closing event output: %v", err)
			}
		}()

		fallback := models.Location{Lat: cfg.Upstream.DefaultLatitude, Lon: cfg.Upstream.DefaultLongitude}
		handler := server.NewHandler(newAdapter(cfg), server.NewCartStore(events), fallback)
		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           server.NewRouter(handler, cfg.Server),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Printf("Listening on %s", cfg.Server.Addr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.Println("Shutting down server...")
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().Bool("release", false, "Run gin in release mode")
	if err := viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr")); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(serveCmd)
}
