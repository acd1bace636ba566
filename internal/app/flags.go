package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Size       int
	Scale      int
	TPS        int
	Seed       int64
	ConfigFile string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Size: 200, Scale: 3, TPS: 60, Seed: 1337}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "world grid edge length")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for world generation")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional YAML world config file")
}
