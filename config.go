package arena

import (
	"flag"
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	MemoryPaged  = "paged"
	MemoryLinear = "linear"
)

// Config describes an arena the host builds at startup.
type Config struct {
	// Base is the address of the first reservation.
	Base uint64 `yaml:"base"`
	// Ceiling is the exclusive upper bound for reservations.
	Ceiling uint64 `yaml:"ceiling"`
	// Memory selects the backing store: paged or linear.
	Memory string `yaml:"memory"`
	// LinearWords is the size of the linear backing store.
	LinearWords uint64 `yaml:"linear_words"`
}

func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	cfg.RegisterFlagsWithPrefix("arena.", f)
}

func (cfg *Config) RegisterFlagsWithPrefix(prefix string, f *flag.FlagSet) {
	f.Uint64Var(&cfg.Base, prefix+"base", 0, "Address of the first reservation, in words.")
	f.Uint64Var(&cfg.Ceiling, prefix+"ceiling", uint64(DefaultCeiling), "Exclusive upper bound for reservations, in words.")
	f.StringVar(&cfg.Memory, prefix+"memory", MemoryPaged, fmt.Sprintf("Backing store for the arena. Supported values: %s, %s.", MemoryPaged, MemoryLinear))
	f.Uint64Var(&cfg.LinearWords, prefix+"linear-words", uint64(DefaultCeiling), "Size of the linear backing store, in words.")
}

func (cfg *Config) Validate() error {
	switch cfg.Memory {
	case MemoryPaged:
	case MemoryLinear:
		if cfg.Ceiling > cfg.LinearWords {
			return fmt.Errorf("ceiling %d exceeds linear memory of %d words", cfg.Ceiling, cfg.LinearWords)
		}
	default:
		return fmt.Errorf("unsupported memory %q", cfg.Memory)
	}
	if cfg.Base > cfg.Ceiling {
		return fmt.Errorf("base %d is above ceiling %d", cfg.Base, cfg.Ceiling)
	}
	return nil
}

// ParseConfig reads a YAML document on top of the flag defaults.
func ParseConfig(b []byte) (Config, error) {
	var cfg Config
	cfg.RegisterFlags(flag.NewFlagSet("defaults", flag.PanicOnError))
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parsing arena config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid arena config")
	}
	return cfg, nil
}

// NewFromConfig builds an Arena from cfg. opts are applied after the
// configured settings and may override them.
func NewFromConfig(cfg Config, opts ...Option) (*Arena, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid arena config")
	}

	var memory Memory
	switch cfg.Memory {
	case MemoryLinear:
		memory = NewSliceMemory(make([]Word, cfg.LinearWords))
	default:
		memory = NewPagedMemory()
	}

	base := []Option{
		WithBase(Word(cfg.Base)),
		WithCeiling(Word(cfg.Ceiling)),
		WithMemory(memory),
	}
	return NewArena(append(base, opts...)...), nil
}
