package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type UpstreamConfig struct {
	ListURL          string        `mapstructure:"list_url"`
	MenuURL          string        `mapstructure:"menu_url"`
	ImageCDNURL      string        `mapstructure:"image_cdn_url"`
	MenuImageCDNURL  string        `mapstructure:"menu_image_cdn_url"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`
	MockDelay        time.Duration `mapstructure:"mock_delay"`
	Offline          bool          `mapstructure:"offline"`     // skip the upstream, serve mock data only
	MockSource       string        `mapstructure:"mock_source"` // "fixed" or "synthetic"
	SyntheticCount   int           `mapstructure:"synthetic_restaurants"`
	SyntheticSeed    int64         `mapstructure:"synthetic_seed"`
	PageSize         int           `mapstructure:"page_size"`
	LocationTimeout  time.Duration `mapstructure:"location_timeout"`
	CityLookupDelay  time.Duration `mapstructure:"city_lookup_delay"`
	Cities           []string      `mapstructure:"cities"`
	DefaultLatitude  float64       `mapstructure:"latitude"`
	DefaultLongitude float64       `mapstructure:"longitude"`
}

type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN builds a libpq style connection string accepted by pgxpool.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type Config struct {
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Server   ServerConfig   `mapstructure:"server"`

	OutputFormat      string             `mapstructure:"output_format"` // json, parquet, console
	OutputDestination string             `mapstructure:"output_destination"`
	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`

	KafkaEnabled     bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList  string `mapstructure:"kafka_broker_list"`
	KafkaTopicPrefix string `mapstructure:"kafka_topic_prefix"`

	DatabaseEnabled bool           `mapstructure:"database_enabled"`
	Database        DatabaseConfig `mapstructure:"database"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("upstream.list_url", "https://www.swiggy.com/dapi/restaurants/list/v5")
	v.SetDefault("upstream.menu_url", "https://www.swiggy.com/dapi/menu/pl?page-type=REGULAR_MENU&complete-menu=true&restaurantId=")
	v.SetDefault("upstream.image_cdn_url", "https://media-assets.swiggy.com/swiggy/image/upload/fl_lossy,f_auto,q_auto,w_508,h_320,c_fill/")
	v.SetDefault("upstream.menu_image_cdn_url", "https://media-assets.swiggy.com/swiggy/image/upload/fl_lossy,f_auto,q_auto,w_400/")
	v.SetDefault("upstream.request_timeout", "15s")
	v.SetDefault("upstream.mock_delay", "1s")
	v.SetDefault("upstream.mock_source", "fixed")
	v.SetDefault("upstream.synthetic_restaurants", 60)
	v.SetDefault("upstream.synthetic_seed", 42)
	v.SetDefault("upstream.page_size", 6)
	v.SetDefault("upstream.location_timeout", "10s")
	v.SetDefault("upstream.city_lookup_delay", "500ms")
	v.SetDefault("upstream.cities", []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Hyderabad", "Kolkata"})
	v.SetDefault("upstream.latitude", 26.8947446)
	v.SetDefault("upstream.longitude", 75.8301169)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("output_format", "json")
	v.SetDefault("output_destination", "local")
	v.SetDefault("output_path", ".")
	v.SetDefault("output_folder", "output")
	v.SetDefault("kafka_broker_list", "localhost:9092")
	v.SetDefault("kafka_topic_prefix", "foodbrowse")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslmode", "disable")
}

// LoadConfig reads .env, the config file and FOODBROWSE_* environment
// variables, in that order of increasing precedence. A missing config file is
// not an error when none was asked for explicitly.
func LoadConfig(cfgFile string) (*Config, error) {
	return LoadConfigWith(viper.GetViper(), cfgFile)
}

func LoadConfigWith(v *viper.Viper, cfgFile string) (*Config, error) {
	_ = godotenv.Load()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".foodbrowse"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("foodbrowse")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := v.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if config.Upstream.PageSize <= 0 {
		return nil, fmt.Errorf("upstream.page_size must be positive, got %d", config.Upstream.PageSize)
	}
	if len(config.Upstream.Cities) == 0 {
		return nil, errors.New("upstream.cities must not be empty")
	}

	return &config, nil
}
