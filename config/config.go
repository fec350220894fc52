package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	GRPC      GRPCConfig      `yaml:"grpc"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Search    SearchConfig    `yaml:"search"`
	Estimator EstimatorConfig `yaml:"estimator"`
	Bookings  BookingsConfig  `yaml:"bookings"`
}

type HTTPConfig struct {
	Address        string   `yaml:"address"`
	SwaggerDir     string   `yaml:"swagger_dir"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

// DSN prefers an explicit URL over the discrete fields.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

// SearchConfig points at the travel-search provider. APIKey normally comes
// from SERPAPI_KEY rather than the file.
type SearchConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (s SearchConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

type EstimatorConfig struct {
	DestinationCode   string `yaml:"destination_code"`
	DestinationCity   string `yaml:"destination_city"`
	HotelAdults       int    `yaml:"hotel_adults"`
	Country           string `yaml:"gl"`
	Language          string `yaml:"hl"`
	Currency          string `yaml:"currency"`
	SessionTTLMinutes int    `yaml:"session_ttl_minutes"`
	LockTTLSeconds    int    `yaml:"lock_ttl_seconds"`
}

func (e EstimatorConfig) SessionTTL() time.Duration {
	return time.Duration(e.SessionTTLMinutes) * time.Minute
}

func (e EstimatorConfig) LockTTL() time.Duration {
	return time.Duration(e.LockTTLSeconds) * time.Second
}

type BookingsConfig struct {
	ItemsPerPage int `yaml:"items_per_page"`
}

// LoadConfig reads the YAML file at path, fills defaults and overlays
// secrets from the environment (and .env when present).
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[config] ignoring .env: %v", err)
	}
	cfg.overlayEnv()
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) overlayEnv() {
	if v := os.Getenv("SERPAPI_KEY"); v != "" {
		c.Search.APIKey = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.HTTP.AllowedOrigins = append(c.HTTP.AllowedOrigins, origin)
			}
		}
	}
}

func (c *Config) applyDefaults() {
	setString(&c.HTTP.Address, ":8080")
	setString(&c.HTTP.SwaggerDir, "docs/swagger")
	if len(c.HTTP.AllowedOrigins) == 0 {
		c.HTTP.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	setString(&c.GRPC.Address, ":9090")

	setString(&c.Database.Host, "localhost")
	setInt(&c.Database.Port, 5432)
	setString(&c.Database.User, "postgres")
	setString(&c.Database.Name, "dentaltrip")
	setString(&c.Database.SSLMode, "disable")

	setString(&c.Redis.Addr, "localhost:6379")

	if len(c.Kafka.Brokers) == 0 {
		c.Kafka.Brokers = []string{"localhost:9092"}
	}
	setString(&c.Kafka.BookingEventsTopic, "booking-events")
	setString(&c.Kafka.NotificationsTopic, "clinic-notifications")
	setString(&c.Kafka.GroupID, "dentaltrip-worker")

	setString(&c.Search.BaseURL, "https://serpapi.com/search.json")
	setInt(&c.Search.TimeoutSeconds, 20)

	setString(&c.Estimator.DestinationCode, "CAI")
	setString(&c.Estimator.DestinationCity, "Cairo")
	setInt(&c.Estimator.HotelAdults, 2)
	setString(&c.Estimator.Country, "us")
	setString(&c.Estimator.Language, "en")
	setString(&c.Estimator.Currency, "USD")
	setInt(&c.Estimator.SessionTTLMinutes, 60)
	setInt(&c.Estimator.LockTTLSeconds, 30)

	setInt(&c.Bookings.ItemsPerPage, 8)
}

func setString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func setInt(dst *int, def int) {
	if *dst == 0 {
		*dst = def
	}
}
