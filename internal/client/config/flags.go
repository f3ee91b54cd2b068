package config

import (
	"flag"
	"os"
	"time"

	"github.com/avasiliev/fittrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the authentication service
//	-e string   base URL of the exercise catalog service
//	-k string   catalog API key
//	-t int      request timeout in seconds
//	-d string   path to the client database file
//
// os.Args is filtered to only the flags handled here, via flagx.FilterArgs,
// to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-e", "-k", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthEndpointAddr, "a", cfg.AuthEndpointAddr, "base URL of the auth service")
	fs.StringVar(&cfg.CatalogEndpointAddr, "e", cfg.CatalogEndpointAddr, "base URL of the exercise catalog")
	fs.StringVar(&cfg.CatalogAPIKey, "k", cfg.CatalogAPIKey, "catalog API key")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the client database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
