package config

import (
	"flag"
	"io"
)

func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var configPath string
	fs.StringVar(&configPath, "config", "", "path to config file")
	fs.StringVar(&configPath, "c", "", "path to config file (short)")

	fs.StringVar(&config.ServerURL, "a", config.ServerURL, "server base URL")
	fs.DurationVar(&config.RequestTimeout, "timeout", config.RequestTimeout, "request timeout")

	return fs.Parse(args)
}
