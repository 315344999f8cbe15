package redact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transcriptguard/redact/config"
	"github.com/transcriptguard/redact/span"
)

func TestOptionsFromConfig(t *testing.T) {
	cfg, err := config.Parse([]byte("labels:\n  - PERSON\n"))
	require.NoError(t, err)

	opts, err := OptionsFromConfig(context.Background(), cfg)
	require.NoError(t, err)

	text := "John lives in Sacramento"
	spans := []span.Span{
		{Start: 0, End: 4, Label: span.LabelPerson, Text: "John"},
		{Start: 14, End: 24, Label: span.LabelLocation, Text: "Sacramento"},
	}
	result, err := Process(context.Background(), "doc.txt", text, spans, opts...)
	require.NoError(t, err)

	assert.Equal(t, "[Person_1] lives in Sacramento", result.Redacted)
	require.Len(t, result.Filtered, 1)
	assert.Equal(t, span.LabelLocation, result.Filtered[0].Label,
		"disabled categories are filtered, not pseudonymized")
}

func TestOptionsFromConfigKeepsBuiltInRules(t *testing.T) {
	cfg, err := config.Parse([]byte("labels:\n  - PERSON\n"))
	require.NoError(t, err)

	opts, err := OptionsFromConfig(context.Background(), cfg)
	require.NoError(t, err)

	text := "John met God"
	spans := []span.Span{
		{Start: 0, End: 4, Label: span.LabelPerson, Text: "John"},
		{Start: 9, End: 12, Label: span.LabelPerson, Text: "God"},
	}
	result, err := Process(context.Background(), "doc.txt", text, spans, opts...)
	require.NoError(t, err)

	assert.Equal(t, "[Person_1] met God", result.Redacted)
	require.Len(t, result.Filtered, 1)
}

func TestOptionsFromConfigRejectsBadLabel(t *testing.T) {
	cfg := &config.Config{Labels: []string{"BOGUS"}}

	_, err := OptionsFromConfig(context.Background(), cfg)
	assert.ErrorIs(t, err, &Error{Kind: KindConfiguration})
}

func TestOptionsFromConfigBadRedisURL(t *testing.T) {
	cfg := &config.Config{
		Sharing: &config.SharingConfig{Enabled: true, RedisURL: "http://not-redis"},
	}

	_, err := OptionsFromConfig(context.Background(), cfg)
	assert.ErrorIs(t, err, &Error{Kind: KindStorage})
}