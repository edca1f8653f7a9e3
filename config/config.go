// Package config holds the runtime tunables of the core. Everything
// about the board itself is a compile-time constant; only execution
// knobs live here.
package config

import (
	"runtime"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
)

type Config struct {
	// BatchWorkers is the number of goroutines used for batch
	// evaluation. Zero or negative means one per CPU.
	BatchWorkers int
	Debug        bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("crosspeg", flag.ContinueOnError)
	fs.IntVar(&c.BatchWorkers, "batch-workers", 0, "worker goroutines for batch evaluation; 0 means one per CPU")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	c.AdjustLogLevel()
	return nil
}

func (c *Config) AdjustLogLevel() {
	if c.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func DefaultConfig() Config {
	return Config{BatchWorkers: runtime.NumCPU()}
}
