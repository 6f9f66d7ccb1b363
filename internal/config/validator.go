package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("configuration validation failed")

// Validate checks every setting and reports all violations at once.
func Validate(cfg Config) error {
	var problems []string

	checkPort := func(name string, port int, allowZero bool) {
		if allowZero && port == 0 {
			return
		}
		if port < 1 || port > 65535 {
			problems = append(problems, fmt.Sprintf("%s must be between 1 and 65535, got: %d", name, port))
		}
	}

	checkPort("port", cfg.Port, false)
	checkPort("metrics_port", cfg.MetricsPort, true)
	if cfg.PortFallback && cfg.Port == 65535 {
		problems = append(problems, "port_fallback requires port below 65535")
	}
	if cfg.MetricsPort != 0 && cfg.MetricsPort == cfg.Port {
		problems = append(problems, fmt.Sprintf("metrics_port must differ from port, both are %d", cfg.Port))
	}

	if cfg.ReadHeaderTimeout < 0 {
		problems = append(problems, fmt.Sprintf("read_header_timeout must not be negative, got: %v", cfg.ReadHeaderTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("shutdown_timeout must be positive, got: %v", cfg.ShutdownTimeout))
	}

	l := cfg.Limits
	if l.SearchMin < 1 {
		problems = append(problems, fmt.Sprintf("search.min must be positive, got: %d", l.SearchMin))
	}
	if l.SearchMax < l.SearchMin {
		problems = append(problems, fmt.Sprintf("search.max (%d) must not be below search.min (%d)", l.SearchMax, l.SearchMin))
	}
	if l.SearchDefault < l.SearchMin || l.SearchDefault > l.SearchMax {
		problems = append(problems, fmt.Sprintf("search.default (%d) must be within [%d, %d]", l.SearchDefault, l.SearchMin, l.SearchMax))
	}
	if l.BatchMin < 1 {
		problems = append(problems, fmt.Sprintf("batch.min must be positive, got: %d", l.BatchMin))
	}
	if l.BatchMax < l.BatchMin {
		problems = append(problems, fmt.Sprintf("batch.max (%d) must not be below batch.min (%d)", l.BatchMax, l.BatchMin))
	}
	if l.BatchFallback < l.BatchMin || l.BatchFallback > l.BatchMax {
		problems = append(problems, fmt.Sprintf("batch.fallback (%d) must be within [%d, %d]", l.BatchFallback, l.BatchMin, l.BatchMax))
	}
	if l.BatchMaxCount < 1 {
		problems = append(problems, fmt.Sprintf("batch.max_count must be positive, got: %d", l.BatchMaxCount))
	}

	switch strings.ToLower(cfg.HistoryType) {
	case "file", "json":
		if cfg.HistoryPath == "" {
			problems = append(problems, "history.path is required for file history")
		}
	case "sqlite", "sqlite3", "":
	case "postgres", "postgresql":
		if cfg.HistoryDSN == "" {
			problems = append(problems, "history.dsn is required for postgres history")
		}
	default:
		problems = append(problems, fmt.Sprintf("history.type must be file, sqlite or postgres, got: %q", cfg.HistoryType))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalid, strings.Join(problems, "\n  "))
	}

	return nil
}
