// Package config holds CL's run-time configuration: the REPL prompt, debug
// tracing tags, and the environment variables the interpreter consults.
package config

import "os"

// A Config holds the configuration of one interpreter run. The zero value
// holds the default settings.
type Config struct {
	prompt string
	debug  map[string]bool
}

func (c *Config) Prompt() string {
	if c == nil || c.prompt == "" {
		return "cl> "
	}
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) { c.prompt = prompt }

// Debug reports whether a debug tag is enabled (e.g. "tokens", "balance",
// "eval"), set via -debug or SetDebug.
func (c *Config) Debug(tag string) bool {
	if c == nil {
		return false
	}
	return c.debug[tag]
}

func (c *Config) SetDebug(tag string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[tag] = state
}

// ShowBalancedEquation reports the current value of the
// show_balanced_equation environment variable, re-read on every call since
// the interpreter treats it as live, not cached at startup.
func (c *Config) ShowBalancedEquation() bool {
	v := os.Getenv("show_balanced_equation")
	return v == "pass" || v == "true" || v == "1"
}
