package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"linsearch/internal/benchmark"
)

// Config is the typed view of the loaded settings.
type Config struct {
	Host              string
	Port              int
	PortFallback      bool
	MetricsPort       int
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration

	Verbose bool
	LogFile string

	Limits benchmark.Limits

	HistoryType string
	HistoryPath string
	HistoryDSN  string
	ReportCSV   string
}

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// A missing .env is not an error.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("linsearch")
	}

	viper.SetEnvPrefix("LINSEARCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Warning: failed to read config file %s: %v\n", cfgFile, err)
	}
}

// SetDefaults registers the default value of every known key.
func SetDefaults() {
	limits := benchmark.DefaultLimits()

	viper.SetDefault("host", "")
	viper.SetDefault("port", 8080)
	viper.SetDefault("port_fallback", true)
	viper.SetDefault("metrics_port", 2112)
	viper.SetDefault("read_header_timeout", 10*time.Second)
	viper.SetDefault("shutdown_timeout", 5*time.Second)
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")

	viper.SetDefault("search.min", limits.SearchMin)
	viper.SetDefault("search.max", limits.SearchMax)
	viper.SetDefault("search.default", limits.SearchDefault)
	viper.SetDefault("batch.min", limits.BatchMin)
	viper.SetDefault("batch.max", limits.BatchMax)
	viper.SetDefault("batch.fallback", limits.BatchFallback)
	viper.SetDefault("batch.max_count", limits.BatchMaxCount)
	viper.SetDefault("batch.default_sizes", limits.BatchDefaultSizes)

	viper.SetDefault("history.type", "file")
	viper.SetDefault("history.path", ".linsearch/history.json")
	viper.SetDefault("history.dsn", "")
	viper.SetDefault("report.csv", "performance_results.csv")
}

// Get materializes the current viper state into a Config.
func Get() Config {
	return Config{
		Host:              viper.GetString("host"),
		Port:              viper.GetInt("port"),
		PortFallback:      viper.GetBool("port_fallback"),
		MetricsPort:       viper.GetInt("metrics_port"),
		ReadHeaderTimeout: viper.GetDuration("read_header_timeout"),
		ShutdownTimeout:   viper.GetDuration("shutdown_timeout"),
		Verbose:           viper.GetBool("verbose"),
		LogFile:           viper.GetString("log_file"),
		Limits: benchmark.Limits{
			SearchMin:         viper.GetInt("search.min"),
			SearchMax:         viper.GetInt("search.max"),
			SearchDefault:     viper.GetInt("search.default"),
			BatchMin:          viper.GetInt("batch.min"),
			BatchMax:          viper.GetInt("batch.max"),
			BatchFallback:     viper.GetInt("batch.fallback"),
			BatchMaxCount:     viper.GetInt("batch.max_count"),
			BatchDefaultSizes: viper.GetIntSlice("batch.default_sizes"),
		},
		HistoryType: viper.GetString("history.type"),
		HistoryPath: viper.GetString("history.path"),
		HistoryDSN:  viper.GetString("history.dsn"),
		ReportCSV:   viper.GetString("report.csv"),
	}
}
