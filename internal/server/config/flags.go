package config

import (
	"flag"
	"os"

	"github.com/brayenid/espj-sub000/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   listen address of the gRPC endpoint
//	-b string   database connection string
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddrGRPC, "a", cfg.EndpointAddrGRPC, "address and port to listen on")
	fs.StringVar(&cfg.DatabaseDSN, "b", cfg.DatabaseDSN, "database connection string")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
