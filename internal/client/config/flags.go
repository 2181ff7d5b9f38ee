package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/kudos/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   published store URL
//	-f string   form endpoint URL
//	-r string   relay endpoint URL ("" disables relay notification)
//	-d string   client database path
//	-l int      cache TTL, minutes
//	-i int      autosave interval, seconds
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with the shared -c/-config flag.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-f", "-r", "-d", "-l", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreURL, "s", cfg.StoreURL, "published store URL")
	fs.StringVar(&cfg.FormEndpoint, "f", cfg.FormEndpoint, "form endpoint URL")
	fs.StringVar(&cfg.RelayEndpoint, "r", cfg.RelayEndpoint, "relay endpoint URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "client database path")
	cacheTTL := fs.Int("l", int(cfg.CacheTTL.Minutes()), "cache TTL (in minutes)")
	autosaveInterval := fs.Int("i", int(cfg.AutosaveInterval.Seconds()), "autosave interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.CacheTTL = time.Duration(*cacheTTL) * time.Minute
	cfg.AutosaveInterval = time.Duration(*autosaveInterval) * time.Second
}
