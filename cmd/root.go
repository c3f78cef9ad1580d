package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "foodbrowse",
	Short: "Browse restaurants and menus from a food delivery aggregator",
	Long: `foodbrowse fetches nearby restaurants and their menus from a food delivery
aggregator, falling back to sample data when the aggregator is unreachable. It can
list and filter restaurants, show a menu with a local cart, serve the same data
over HTTP, and export browse snapshots to JSON, Parquet, Kafka or Postgres.`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or $HOME/.foodbrowse/config.yaml)")
	flags.Float64("lat", 0, "Latitude to browse from (default from config)")
	flags.Float64("lng", 0, "Longitude to browse from (default from config)")
	flags.Bool("offline", false, "Skip the upstream and use mock data only")
	flags.String("mock-source", "fixed", "Fallback dataset: fixed or synthetic")
	flags.Int("page-size", 6, "Restaurants per page")
	flags.String("output-format", "json", "Output format for events: json, parquet or console")
	flags.String("output-path", ".", "Base path for event output")
	flags.Bool("kafka-enabled", false, "Publish events to Kafka")
	flags.String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	flags.Bool("database-enabled", false, "Write exported snapshots to Postgres")

	bindFlag("upstream.latitude", "lat")
	bindFlag("upstream.longitude", "lng")
	bindFlag("upstream.offline", "offline")
	bindFlag("upstream.mock_source", "mock-source")
	bindFlag("upstream.page_size", "page-size")
	bindFlag("output_format", "output-format")
	bindFlag("output_path", "output-path")
	bindFlag("kafka_enabled", "kafka-enabled")
	bindFlag("kafka_broker_list", "kafka-broker-list")
	bindFlag("database_enabled", "database-enabled")
}

// bindFlag binds a persistent flag to a config key. Unset flags leave the
// config file and environment in charge.
func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
