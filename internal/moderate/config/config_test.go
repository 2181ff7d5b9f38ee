package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "data/testimonials.json", cfg.StorePath)
}

func TestParseFlags(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-f", "elsewhere/records.json"}

	cfg := &Config{}
	require.NotPanics(t, func() { parseFlags(cfg) })
	assert.Equal(t, "elsewhere/records.json", cfg.StorePath)
}
