// Package config provides loading and parsing of redact.yaml pipeline
// configuration files: enabled labels, extra blocklist entries, operator
// validity rules, annotator endpoints, and the cross-document sharing opt-in.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/transcriptguard/redact/span"
	"github.com/transcriptguard/redact/validity"
)

// Config represents a redact.yaml configuration file.
type Config struct {
	// Labels restricts redaction to the listed categories. Empty enables
	// every category.
	Labels []string `yaml:"labels,omitempty"`

	// Blocklist adds extra invalid surface forms per label on top of the
	// built-in rules, keyed by label name.
	Blocklist map[string][]string `yaml:"blocklist,omitempty"`

	// Rules are operator-defined CEL validity expressions.
	Rules []RuleConfig `yaml:"rules,omitempty"`

	// Annotators configures the external detection sources.
	Annotators []AnnotatorConfig `yaml:"annotators,omitempty"`

	// Sharing configures cross-document identity sharing. Disabled unless
	// explicitly enabled.
	Sharing *SharingConfig `yaml:"sharing,omitempty"`
}

// RuleConfig is one operator validity rule.
type RuleConfig struct {
	// Label restricts the rule to one category; empty applies it to all.
	Label string `yaml:"label,omitempty"`

	// Expr is a CEL expression over text and label producing a bool;
	// true marks the span invalid.
	Expr string `yaml:"expr"`
}

// AnnotatorConfig describes one external detection source.
type AnnotatorConfig struct {
	Name     string `yaml:"name"`
	Endpoint string `yaml:"endpoint"`

	// Timeout is a Go duration string (e.g. "30s"). Default: 30s.
	Timeout string `yaml:"timeout,omitempty"`
}

// GetTimeout parses the annotator timeout, falling back to the default when
// unset or invalid.
func (a *AnnotatorConfig) GetTimeout() time.Duration {
	if a == nil || a.Timeout == "" {
		return 30 * time.Second
	}
	d, err := time.ParseDuration(a.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// SharingConfig is the cross-document identity sharing opt-in.
type SharingConfig struct {
	Enabled   bool   `yaml:"enabled"`
	RedisURL  string `yaml:"redis_url,omitempty"`
	Namespace string `yaml:"namespace,omitempty"`

	// ConnectTimeout is a Go duration string. Default: 5s.
	ConnectTimeout string `yaml:"connect_timeout,omitempty"`
}

// GetConnectTimeout parses the connect timeout, falling back to the default.
func (s *SharingConfig) GetConnectTimeout() time.Duration {
	if s == nil || s.ConnectTimeout == "" {
		return 5 * time.Second
	}
	d, err := time.ParseDuration(s.ConnectTimeout)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// EnabledLabels returns the configured labels parsed into span labels, or all
// labels when none are configured.
func (c *Config) EnabledLabels() ([]span.Label, error) {
	if len(c.Labels) == 0 {
		return span.AllLabels(), nil
	}
	labels := make([]span.Label, 0, len(c.Labels))
	for _, name := range c.Labels {
		label, err := span.ParseLabel(name)
		if err != nil {
			return nil, fmt.Errorf("config label %q: %w", name, err)
		}
		labels = append(labels, label)
	}
	return labels, nil
}

// ValidityRules converts the configured rules into validity rules, checking
// that every label parses.
func (c *Config) ValidityRules() ([]validity.Rule, error) {
	rules := make([]validity.Rule, 0, len(c.Rules))
	for _, rc := range c.Rules {
		var label span.Label
		if rc.Label != "" {
			parsed, err := span.ParseLabel(rc.Label)
			if err != nil {
				return nil, fmt.Errorf("config rule label %q: %w", rc.Label, err)
			}
			label = parsed
		}
		rules = append(rules, validity.Rule{Label: label, Expr: rc.Expr})
	}
	return rules, nil
}

// Checker builds the full validity checker described by the configuration:
// the built-in rules, then the extra blocklist, then the CEL rules.
func (c *Config) Checker() (validity.Checker, error) {
	checkers := []validity.Checker{validity.NewRuleChecker()}

	if len(c.Blocklist) > 0 {
		blocklist := make(map[span.Label][]string, len(c.Blocklist))
		for name, words := range c.Blocklist {
			label, err := span.ParseLabel(name)
			if err != nil {
				return nil, fmt.Errorf("config blocklist label %q: %w", name, err)
			}
			blocklist[label] = words
		}
		checkers = append(checkers, validity.NewBlocklistChecker(blocklist))
	}

	if len(c.Rules) > 0 {
		rules, err := c.ValidityRules()
		if err != nil {
			return nil, err
		}
		cel, err := validity.NewCELChecker(rules)
		if err != nil {
			return nil, err
		}
		checkers = append(checkers, cel)
	}
	return validity.Chain(checkers...), nil
}

// Validate checks the configuration for structural errors.
func (c *Config) Validate() error {
	if _, err := c.EnabledLabels(); err != nil {
		return err
	}
	if _, err := c.ValidityRules(); err != nil {
		return err
	}
	for label := range c.Blocklist {
		if _, err := span.ParseLabel(label); err != nil {
			return fmt.Errorf("config blocklist label %q: %w", label, err)
		}
	}
	for _, annotator := range c.Annotators {
		if annotator.Name == "" {
			return fmt.Errorf("config annotator with empty name")
		}
		if annotator.Endpoint == "" {
			return fmt.Errorf("config annotator %q: empty endpoint", annotator.Name)
		}
	}
	if c.Sharing != nil && c.Sharing.Enabled && c.Sharing.RedisURL == "" {
		return fmt.Errorf("config sharing enabled without redis_url")
	}
	return nil
}

// Parse parses and validates configuration bytes.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load reads and parses a redact.yaml file from the given path. If the path
// is a directory, it looks for redact.yaml or redact.yml in that directory.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	configPath := path
	if info.IsDir() {
		yamlPath := filepath.Join(path, "redact.yaml")
		if _, err := os.Stat(yamlPath); err == nil {
			configPath = yamlPath
		} else {
			ymlPath := filepath.Join(path, "redact.yml")
			if _, err := os.Stat(ymlPath); err != nil {
				return nil, fmt.Errorf("no redact.yaml or redact.yml found in %s", path)
			}
			configPath = ymlPath
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}
