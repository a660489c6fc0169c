package srclog

/*
config.go

TOML configuration glue: the initial global level, the concurrency choice,
the two prefix feature toggles and the source set can be supplied from a
file instead of code. Level values are the canonical names accepted by
ParseLevel (case-insensitive).

Example:

	level        = "info"
	thread_safe  = true
	with_timestamp = false
	with_function  = false

	[sources]
	NET  = "debug"
	DISK = "warning"
*/

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// Config mirrors the TOML configuration file.
type Config struct {
	Level         string            `toml:"level"`
	ThreadSafe    bool              `toml:"thread_safe"`
	WithTimestamp bool              `toml:"with_timestamp"`
	WithFunction  bool              `toml:"with_function"`
	Sources       map[string]string `toml:"sources"`
}

// LoadConfig reads and parses a TOML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Build constructs and initializes a Logger from the configuration and
// registers all configured sources (in name order, so dumps of a freshly
// built logger are stable).
func (c *Config) Build(sink io.Writer) (*Logger, error) {
	level := ParseLevel(c.Level)
	if level == LVL_INVALID {
		return nil, fmt.Errorf("invalid global level %q", c.Level)
	}
	l := NewWithParams(sink, c.WithFunction, c.WithTimestamp)
	if err := l.Init(level, c.ThreadSafe); err != nil {
		return nil, err
	}
	sources := make([]string, 0, len(c.Sources))
	for source := range c.Sources {
		sources = append(sources, source)
	}
	slices.Sort(sources)
	for _, source := range sources {
		srcLevel := ParseLevel(c.Sources[source])
		if srcLevel == LVL_INVALID {
			return nil, fmt.Errorf("invalid level %q for source %q", c.Sources[source], source)
		}
		if err := l.Register(source, srcLevel); err != nil {
			return nil, fmt.Errorf("registering %q: %w", source, err)
		}
	}
	return l, nil
}
