// Package config loads settings for the velo command from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the settings of the velo command.
type Config struct {
	// Encoding names the encoding of program output.
	Encoding string `yaml:"encoding"`
	Trace    Trace  `yaml:"trace"`
	Prompt   Prompt `yaml:"prompt"`
	Banner   Banner `yaml:"banner"`
}

// Trace controls evaluation tracing.
type Trace struct {
	// Verbosity is the log verbosity. 2 and above shows evaluation traces;
	// -4 and below turns logging off.
	Verbosity int `yaml:"verbosity"`
	// File is the path of the log file. Empty means standard error.
	File string `yaml:"file"`
}

// Prompt holds the REPL prompts.
type Prompt struct {
	// PS1 is shown when the REPL waits for a new line.
	PS1 string `yaml:"ps1"`
	// PS2 is shown when the current line continues.
	PS2 string `yaml:"ps2"`
}

// Banner controls the REPL banner.
type Banner struct {
	// TimeFormat is the strftime format of the start time.
	TimeFormat string `yaml:"timeFormat"`
}

// Default returns the settings used when there is no configuration file.
func Default() *Config {
	return &Config{
		Encoding: "utf8",
		Trace:    Trace{Verbosity: 0},
		Prompt:   Prompt{PS1: "velo> ", PS2: "...   "},
		Banner:   Banner{TimeFormat: "%Y-%m-%d %H:%M:%S"},
	}
}

// Parse decodes YAML settings over the defaults. Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and parses the settings file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse config %s: %w", path, err)
	}
	return c, nil
}

// String formats the settings as YAML.
func (c *Config) String() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config error: %v", err)
	}
	return string(b)
}
