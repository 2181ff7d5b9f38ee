package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/kudos/internal/flagx"
)

// parseFlags populates selected relay Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g. ":8090")
//	-e string   dispatch API base URL
//	-t int      dispatch timeout, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the shared -c/-config flag.
// Credentials are deliberately not accepted as flags so they never show up
// in process listings.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-e", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run relay")
	fs.StringVar(&config.DispatchBaseURL, "e", config.DispatchBaseURL, "dispatch API base URL")
	dispatchTimeout := fs.Int("t", int(config.DispatchTimeout.Seconds()), "dispatch timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.DispatchTimeout = time.Duration(*dispatchTimeout) * time.Second
}
