package redact

import (
	"context"

	"github.com/transcriptguard/redact/config"
	"github.com/transcriptguard/redact/document"
	"github.com/transcriptguard/redact/identity"
	"github.com/transcriptguard/redact/span"
	"github.com/transcriptguard/redact/validity"
)

// OptionsFromConfig translates a parsed redact.yaml into processor options:
// the combined validity checker with the enabled-label restriction layered on
// top, and the Redis-backed shared identity store when sharing is enabled.
// The Redis connection, once opened, lives for the life of the process.
func OptionsFromConfig(ctx context.Context, cfg *config.Config) ([]document.Option, error) {
	labels, err := cfg.EnabledLabels()
	if err != nil {
		return nil, &Error{Op: "OptionsFromConfig", Kind: KindConfiguration, Err: err}
	}
	checker, err := cfg.Checker()
	if err != nil {
		return nil, &Error{Op: "OptionsFromConfig", Kind: KindConfiguration, Err: err}
	}
	opts := []document.Option{
		document.WithChecker(validity.Chain(checker, labelRestriction(labels))),
	}

	if cfg.Sharing != nil && cfg.Sharing.Enabled {
		store, err := identity.NewRedisStore(ctx, identity.RedisOptions{
			URL:            cfg.Sharing.RedisURL,
			Namespace:      cfg.Sharing.Namespace,
			ConnectTimeout: cfg.Sharing.GetConnectTimeout(),
		})
		if err != nil {
			return nil, &Error{Op: "OptionsFromConfig", Kind: KindStorage, Err: err}
		}
		opts = append(opts, document.WithSharedStore(store))
	}
	return opts, nil
}

// labelRestriction marks spans of categories outside the enabled set invalid,
// so they are filtered rather than pseudonymized.
func labelRestriction(enabled []span.Label) validity.Checker {
	set := make(map[span.Label]struct{}, len(enabled))
	for _, label := range enabled {
		set[label] = struct{}{}
	}
	return validity.CheckerFunc(func(label span.Label, _ string) bool {
		_, ok := set[label]
		return !ok
	})
}
