package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/kudos/internal/flagx"
)

// parseFlags populates Config from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   path to the testimonial store file
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.StorePath, "f", cfg.StorePath, "path to the testimonial store file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
