// Package config provides the application configuration from command-line
// flags, environment variables and an optional .env file.
package config

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Addr defines the server's listening address (ip:port).
	Addr string

	// BaseURL is the base used to compose short URLs.
	BaseURL string

	// FilePath is the path to the storage journal for file-backed persistence.
	FilePath string

	// DatabaseDSN holds the PostgreSQL connection string.
	DatabaseDSN string

	// RedisAddr points at an optional Redis used to cache redirects.
	RedisAddr string

	// EnablePprof indicates whether to expose pprof for profiling.
	EnablePprof bool

	// EnableHTTPS indicates whether to serve TLS via autocert.
	EnableHTTPS bool
}

// options holds the current configuration values.
var options = &Options{}

func init() {
	flag.StringVar(&options.Addr, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.BaseURL, "b", "http://localhost:8080", "base url for short links")
	flag.StringVar(&options.FilePath, "f", "", "path to storage file")
	flag.StringVar(&options.DatabaseDSN, "d", "", "database dsn")
	flag.StringVar(&options.RedisAddr, "r", "", "redis address for the redirect cache")
	flag.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	flag.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
}

// Parse loads .env when present, parses flags and applies environment
// overrides. Environment variables win over flags.
func Parse() *Options {
	_ = godotenv.Load()

	flag.Parse()

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Addr = serverAddress
	}

	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		options.BaseURL = baseURL
	}

	if storagePath := os.Getenv("FILE_STORAGE_PATH"); storagePath != "" {
		options.FilePath = storagePath
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}

	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		options.RedisAddr = redisAddr
	}

	if enableHTTPS := os.Getenv("ENABLE_HTTPS"); enableHTTPS != "" {
		httpsMode, err := strconv.ParseBool(enableHTTPS)
		if err != nil {
			options.EnableHTTPS = false
		}

		options.EnableHTTPS = httpsMode
	}

	return options
}
