package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvHTTPAddr        = "FIRSTWEEK_HTTP_ADDR"
	EnvGRPCAddr        = "FIRSTWEEK_GRPC_ADDR"
	EnvStorageDriver   = "FIRSTWEEK_STORAGE_DRIVER"
	EnvDatabaseDSN     = "FIRSTWEEK_DATABASE_DSN"
	EnvLogFormat       = "FIRSTWEEK_LOG_FORMAT"
	EnvShutdownTimeout = "FIRSTWEEK_SHUTDOWN_TIMEOUT"
)

// envLookup resolves variables from the process environment first and then
// from the dotenv file at path. A missing dotenv file is not an error.
func envLookup(path string) func(string) (string, bool) {
	file, err := godotenv.Read(path)
	if err != nil {
		file = map[string]string{}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}
}

// parseEnv overlays Config with the FIRSTWEEK_* variables that are set.
// FIRSTWEEK_SHUTDOWN_TIMEOUT takes a Go duration string such as "15s".
func parseEnv(config *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		EnvHTTPAddr:      &config.EndpointAddrHTTP,
		EnvGRPCAddr:      &config.EndpointAddrGRPC,
		EnvStorageDriver: &config.StorageDriver,
		EnvDatabaseDSN:   &config.DatabaseDSN,
		EnvLogFormat:     &config.LogFormat,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup(EnvShutdownTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", EnvShutdownTimeout, err)
		}
		config.ShutdownTimeout = d
	}

	return nil
}
