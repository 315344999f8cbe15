package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transcriptguard/redact/span"
)

const sampleConfig = `
labels:
  - person
  - LOCATION
blocklist:
  person:
    - Redacted Panel
rules:
  - label: PERSON
    expr: "text.size() < 2"
annotators:
  - name: transformer
    endpoint: http://localhost:8000/annotate
    timeout: 45s
sharing:
  enabled: true
  redis_url: redis://localhost:6379
  namespace: hearings
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	labels, err := cfg.EnabledLabels()
	require.NoError(t, err)
	assert.Equal(t, []span.Label{span.LabelPerson, span.LabelLocation}, labels)

	require.Len(t, cfg.Annotators, 1)
	assert.Equal(t, 45*time.Second, cfg.Annotators[0].GetTimeout())

	require.NotNil(t, cfg.Sharing)
	assert.True(t, cfg.Sharing.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Sharing.GetConnectTimeout())
}

func TestEnabledLabelsDefaultsToAll(t *testing.T) {
	cfg := &Config{}
	labels, err := cfg.EnabledLabels()
	require.NoError(t, err)
	assert.Equal(t, span.AllLabels(), labels)
}

func TestChecker(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	checker, err := cfg.Checker()
	require.NoError(t, err)

	// built-in rule
	assert.True(t, checker.IsInvalid(span.LabelPerson, "inmate"))
	// configured blocklist
	assert.True(t, checker.IsInvalid(span.LabelPerson, "redacted panel"))
	// configured CEL rule
	assert.True(t, checker.IsInvalid(span.LabelPerson, "J"))
	assert.False(t, checker.IsInvalid(span.LabelPerson, "John Smith"))
}

func TestValidateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown label", "labels:\n  - BOGUS\n"},
		{"unknown blocklist label", "blocklist:\n  BOGUS:\n    - x\n"},
		{"annotator without name", "annotators:\n  - endpoint: http://x\n"},
		{"annotator without endpoint", "annotators:\n  - name: x\n"},
		{"sharing without url", "sharing:\n  enabled: true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestGetTimeoutFallbacks(t *testing.T) {
	var a *AnnotatorConfig
	assert.Equal(t, 30*time.Second, a.GetTimeout())
	assert.Equal(t, 30*time.Second, (&AnnotatorConfig{Timeout: "junk"}).GetTimeout())

	var s *SharingConfig
	assert.Equal(t, 5*time.Second, s.GetConnectTimeout())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "redact.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	// direct file path
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Labels, 2)

	// directory lookup
	cfg, err = Load(dir)
	require.NoError(t, err)
	assert.Len(t, cfg.Labels, 2)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
