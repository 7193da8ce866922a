package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/danisworo/stocklens/internal/analyze"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	App      AppConfig
	Cache    CacheConfig
	Archive  ArchiveConfig
	Drive    DriveConfig
	Analysis AnalysisConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AppConfig struct {
	InputDir  string
	OutputDir string
}

type CacheConfig struct {
	Enabled          bool
	RedisURL         string
	RedisHost        string
	RedisPort        string
	RedisPassword    string
	RedisDB          int
	ReportTTLSeconds int
}

type ArchiveConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type DriveConfig struct {
	CredentialsJSON string
	FolderID        string
}

// AnalysisConfig mirrors the analyzer thresholds as environment-tunable keys.
type AnalysisConfig struct {
	LowStockThreshold int
	CriticalThreshold int
	ReorderTarget     int
	MinimumReorder    int
}

// Analyze materializes the immutable threshold value passed into each run.
func (c AnalysisConfig) Analyze() analyze.Config {
	return analyze.Config{
		LowStockThreshold: c.LowStockThreshold,
		CriticalThreshold: c.CriticalThreshold,
		ReorderTarget:     c.ReorderTarget,
		MinimumReorder:    c.MinimumReorder,
	}
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "info")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 15)
		viper.SetDefault("DB_ENABLED", false)
		viper.SetDefault("DB_HOST", "localhost")
		viper.SetDefault("DB_PORT", "5432")
		viper.SetDefault("DB_USER", "postgres")
		viper.SetDefault("DB_PASSWORD", "postgres")
		viper.SetDefault("DB_NAME", "stocklens")
		viper.SetDefault("DB_SSLMODE", "disable")
		viper.SetDefault("APP_INPUT_DIR", "./data/input")
		viper.SetDefault("APP_OUTPUT_DIR", "./data/reports")
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_REPORT_TTL_SECONDS", 300)
		viper.SetDefault("ARCHIVE_ENABLED", false)
		viper.SetDefault("ARCHIVE_ENDPOINT", "")
		viper.SetDefault("ARCHIVE_ACCESS_KEY", "")
		viper.SetDefault("ARCHIVE_SECRET_KEY", "")
		viper.SetDefault("ARCHIVE_BUCKET", "stocklens-reports")
		viper.SetDefault("ARCHIVE_USE_SSL", true)
		viper.SetDefault("DRIVE_CREDENTIALS_JSON", "")
		viper.SetDefault("DRIVE_FOLDER_ID", "")
		viper.SetDefault("LOW_STOCK_THRESHOLD", analyze.DefaultLowStockThreshold)
		viper.SetDefault("CRITICAL_THRESHOLD", analyze.DefaultCriticalThreshold)
		viper.SetDefault("REORDER_TARGET", analyze.DefaultReorderTarget)
		viper.SetDefault("MINIMUM_REORDER", analyze.DefaultMinimumReorder)

		// Read from environment variables
		viper.AutomaticEnv()

		// Ensure input and output directories exist
		ensureDir(viper.GetString("APP_INPUT_DIR"))
		ensureDir(viper.GetString("APP_OUTPUT_DIR"))

		instance = &Config{
			Server: ServerConfig{
				Port:         viper.GetString("SERVER_PORT"),
				Mode:         viper.GetString("SERVER_MODE"),
				ReadTimeout:  viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout: viper.GetInt("SERVER_WRITE_TIMEOUT"),
			},
			Database: DatabaseConfig{
				Enabled:  viper.GetBool("DB_ENABLED"),
				Host:     viper.GetString("DB_HOST"),
				Port:     viper.GetString("DB_PORT"),
				User:     viper.GetString("DB_USER"),
				Password: viper.GetString("DB_PASSWORD"),
				DBName:   viper.GetString("DB_NAME"),
				SSLMode:  viper.GetString("DB_SSLMODE"),
			},
			App: AppConfig{
				InputDir:  viper.GetString("APP_INPUT_DIR"),
				OutputDir: viper.GetString("APP_OUTPUT_DIR"),
			},
			Cache: CacheConfig{
				Enabled:          viper.GetBool("CACHE_ENABLED"),
				RedisURL:         viper.GetString("REDIS_URL"),
				RedisHost:        viper.GetString("REDIS_HOST"),
				RedisPort:        viper.GetString("REDIS_PORT"),
				RedisPassword:    viper.GetString("REDIS_PASSWORD"),
				RedisDB:          viper.GetInt("REDIS_DB"),
				ReportTTLSeconds: viper.GetInt("CACHE_REPORT_TTL_SECONDS"),
			},
			Archive: ArchiveConfig{
				Enabled:   viper.GetBool("ARCHIVE_ENABLED"),
				Endpoint:  viper.GetString("ARCHIVE_ENDPOINT"),
				AccessKey: viper.GetString("ARCHIVE_ACCESS_KEY"),
				SecretKey: viper.GetString("ARCHIVE_SECRET_KEY"),
				Bucket:    viper.GetString("ARCHIVE_BUCKET"),
				UseSSL:    viper.GetBool("ARCHIVE_USE_SSL"),
			},
			Drive: DriveConfig{
				CredentialsJSON: viper.GetString("DRIVE_CREDENTIALS_JSON"),
				FolderID:        viper.GetString("DRIVE_FOLDER_ID"),
			},
			Analysis: AnalysisConfig{
				LowStockThreshold: viper.GetInt("LOW_STOCK_THRESHOLD"),
				CriticalThreshold: viper.GetInt("CRITICAL_THRESHOLD"),
				ReorderTarget:     viper.GetInt("REORDER_TARGET"),
				MinimumReorder:    viper.GetInt("MINIMUM_REORDER"),
			},
		}
	})

	return instance
}

func ensureDir(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}
