package document

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/transcriptguard/redact/annotate"
	"github.com/transcriptguard/redact/classify"
	"github.com/transcriptguard/redact/identity"
	"github.com/transcriptguard/redact/validity"
)

// Option configures a Processor.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	tracer     trace.Tracer
	meter      metric.Meter
	checker    validity.Checker
	classifier classify.Classifier
	store      identity.Store
	annotators []annotate.Annotator
}

func defaultConfig() config {
	return config{
		logger:     slog.Default(),
		tracer:     tracenoop.NewTracerProvider().Tracer("redact"),
		meter:      metricnoop.NewMeterProvider().Meter("redact"),
		checker:    validity.NewRuleChecker(),
		classifier: classify.None,
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithTracer sets the OpenTelemetry tracer for pipeline stages. Defaults to a
// noop tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) {
		c.tracer = tracer
	}
}

// WithMeter sets the OpenTelemetry meter for the span counters. Defaults to a
// noop meter.
func WithMeter(meter metric.Meter) Option {
	return func(c *config) {
		c.meter = meter
	}
}

// WithChecker replaces the validity checker. Chain the built-in rules with
// CEL rules via validity.Chain to extend rather than replace.
func WithChecker(checker validity.Checker) Option {
	return func(c *config) {
		c.checker = checker
	}
}

// WithClassifier sets the zero-shot classifier used to sub-type
// organizations, locations, and NRP mentions.
func WithClassifier(classifier classify.Classifier) Option {
	return func(c *config) {
		c.classifier = classifier
	}
}

// WithSharedStore opts into cross-document identity sharing. Without it every
// document gets an isolated registry.
func WithSharedStore(store identity.Store) Option {
	return func(c *config) {
		c.store = store
	}
}

// WithAnnotators sets the detection sources consulted when a document arrives
// without pre-detected spans.
func WithAnnotators(annotators ...annotate.Annotator) Option {
	return func(c *config) {
		c.annotators = annotators
	}
}
