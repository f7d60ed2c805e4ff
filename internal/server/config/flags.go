package config

import (
	"flag"
	"io"
	"strings"
)

// parseFlags overlays command-line flags.
//
// Supported flags:
//
//	-c, -config string     JSON config file (read earlier by parseJson)
//	-env string            logging profile: local, dev, prod
//	-a string              HTTP bind address (e.g. ":5001")
//	-driver string         database driver: postgres or sqlite
//	-d string              database DSN
//	-s string              token signing secret
//	-t duration            token validity (e.g. "168h")
//	-bcrypt-cost int       bcrypt cost
//	-shutdown-timeout dur  graceful shutdown timeout
//	-origins string        comma-separated CORS origins
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var configPath, origins string
	fs.StringVar(&configPath, "config", "", "path to config file")
	fs.StringVar(&configPath, "c", "", "path to config file (short)")

	fs.StringVar(&config.Env, "env", config.Env, "logging profile: local, dev, prod")
	fs.StringVar(&config.HTTPAddress, "a", config.HTTPAddress, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "driver", config.DatabaseDriver, "database driver: postgres or sqlite")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "token signing secret")
	fs.DurationVar(&config.TokenValidityDuration, "t", config.TokenValidityDuration, "token validity duration")
	fs.IntVar(&config.BcryptCost, "bcrypt-cost", config.BcryptCost, "bcrypt cost")
	fs.DurationVar(&config.ShutdownTimeout, "shutdown-timeout", config.ShutdownTimeout, "graceful shutdown timeout")
	fs.StringVar(&origins, "origins", strings.Join(config.AllowedOrigins, ","), "comma-separated CORS origins")

	if err := fs.Parse(args); err != nil {
		return err
	}

	config.AllowedOrigins = splitList(origins)
	return nil
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
