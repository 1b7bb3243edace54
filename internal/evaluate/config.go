package evaluate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the yaml run configuration. Zero values mean "use the
// default"; CLI flags override whatever the file sets.
type Config struct {
	InputDir string   `yaml:"input_dir"`
	Output   string   `yaml:"output"`
	Workers  int      `yaml:"workers"`
	Reps     int      `yaml:"reps"`
	Families []string `yaml:"families"`
	Plots    bool     `yaml:"plots"`
	PlotDir  string   `yaml:"plot_dir"`
	Seed     uint64   `yaml:"seed"`
}

// DefaultConfig returns the built-in run settings.
func DefaultConfig() Config {
	return Config{
		InputDir: "data",
		Reps:     1000,
		PlotDir:  "plots",
	}
}

// LoadConfig reads a yaml config file on top of the defaults. An empty
// path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.Reps < 0 {
		return fmt.Errorf("reps must be >= 0, got %d", c.Reps)
	}
	return nil
}
