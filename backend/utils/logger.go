package utils

import (
	"io"
	"log"
	"os"
)

// LoggerConfig controls how InitLogger builds the process logger.
type LoggerConfig struct {
	// text or json
	Format string
	// defaults to os.Stdout
	Output io.Writer
	// colorize the prefix and request lines
	EnableColors bool
}

const colorReset = "\033[0m"

// InitLogger creates the process-wide logger.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[Quiz Builder] "

	if cfg.Format == "json" {
		return log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)
	}
	if cfg.EnableColors {
		prefix = "\033[36m" + prefix + colorReset
	}
	return log.New(cfg.Output, prefix, log.LstdFlags|log.Lshortfile|log.LUTC)
}

// Colorize wraps s in the ANSI color matching an HTTP status or method.
// Unknown values are returned unchanged.
func Colorize(s string, status int, method string) string {
	color := ""
	if status > 0 {
		color = statusColor(status)
	} else {
		color = methodColor(method)
	}
	if color == "" {
		return s
	}
	return color + s + colorReset
}

func statusColor(status int) string {
	switch {
	case status >= 500:
		return "\033[31m"
	case status >= 400:
		return "\033[33m"
	case status >= 300:
		return "\033[36m"
	case status >= 200:
		return "\033[32m"
	default:
		return ""
	}
}

func methodColor(method string) string {
	switch method {
	case "GET":
		return "\033[34m"
	case "POST":
		return "\033[33m"
	case "PUT":
		return "\033[36m"
	case "DELETE":
		return "\033[31m"
	case "PATCH":
		return "\033[32m"
	default:
		return ""
	}
}
