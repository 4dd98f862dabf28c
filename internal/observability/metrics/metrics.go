package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	requestsCreated metric.Int64Counter
	transitions     metric.Int64Counter
	matcherLookups  metric.Int64Counter
	rateLimitDenied metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "srbooster"
	}
	meter := provider.Meter(name)

	requestsCreated, err := meter.Int64Counter("srbooster_requests_created_total")
	if err != nil {
		return nil, err
	}
	transitions, err := meter.Int64Counter("srbooster_request_transitions_total")
	if err != nil {
		return nil, err
	}
	matcherLookups, err := meter.Int64Counter("srbooster_matcher_lookups_total")
	if err != nil {
		return nil, err
	}
	rateLimitDenied, err := meter.Int64Counter("srbooster_rate_limit_denied_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		requestsCreated: requestsCreated,
		transitions:     transitions,
		matcherLookups:  matcherLookups,
		rateLimitDenied: rateLimitDenied,
	}, nil
}

// RecordRequestCreated increments the approval-request creation count.
func (m *Metrics) RecordRequestCreated(ctx context.Context, featureID string) {
	if m == nil {
		return
	}
	m.requestsCreated.Add(ctx, 1, metric.WithAttributes(
		attribute.String("feature_id", strings.TrimSpace(featureID)),
	))
}

// RecordTransition increments approval/rejection counts by target status.
func (m *Metrics) RecordTransition(ctx context.Context, status string) {
	if m == nil {
		return
	}
	m.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", strings.TrimSpace(status)),
	))
}

// RecordMatcherLookup increments matcher lookups, labeled by cache outcome.
func (m *Metrics) RecordMatcherLookup(ctx context.Context, cacheHit bool) {
	if m == nil {
		return
	}
	m.matcherLookups.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("cache_hit", cacheHit),
	))
}

// RecordRateLimitDenied increments denied request counts.
func (m *Metrics) RecordRateLimitDenied(ctx context.Context) {
	if m == nil {
		return
	}
	m.rateLimitDenied.Add(ctx, 1)
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(protocol)) {
	case "", "grpc":
		return otlpmetricgrpc.New(context.Background(),
			otlpmetricgrpc.WithEndpoint(endpoint),
			otlpmetricgrpc.WithInsecure(),
		)
	case "http", "http/protobuf":
		return otlpmetrichttp.New(context.Background(),
			otlpmetrichttp.WithEndpoint(endpoint),
			otlpmetrichttp.WithInsecure(),
		)
	default:
		return nil, fmt.Errorf("unsupported otlp protocol %q", protocol)
	}
}
