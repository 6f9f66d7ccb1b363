package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"linsearch/internal/benchmark"
	"linsearch/internal/config"
	"linsearch/internal/db"
	"linsearch/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// closeLog releases the log file opened by the last initConfig.
var closeLog = func() error { return nil }

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "linsearch",
	Short: "Linear search benchmark service",
	Long: `linsearch measures linear search over synthetic video-ID datasets.
It serves the measurements as a small JSON HTTP API and can run the same
benchmarks from the command line, export them as CSV and keep a history
of performance analyses.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'linsearch --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./linsearch.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)

	closeLog()
	closeLog = telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))
}

// loadConfig returns the validated settings for the current invocation.
func loadConfig() (config.Config, error) {
	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openHistory opens the analysis history backend selected by cfg.
func openHistory(cfg config.Config) (benchmark.Store, error) {
	conn := cfg.HistoryDSN
	switch strings.ToLower(cfg.HistoryType) {
	case "file", "json":
		conn = cfg.HistoryPath
	}

	store, err := db.NewStore(db.StoreConfig{Type: cfg.HistoryType, ConnectionString: conn})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s history: %w", cfg.HistoryType, err)
	}
	return store, nil
}
