package tracing

import (
	"fmt"
	"net/http"
	"strings"

	"contrib.go.opencensus.io/exporter/aws"
	"contrib.go.opencensus.io/exporter/jaeger"
	"contrib.go.opencensus.io/exporter/prometheus"
	"contrib.go.opencensus.io/exporter/stackdriver"
	"contrib.go.opencensus.io/exporter/zipkin"
	"contrib.go.opencensus.io/integrations/ocsql"
	datadog "github.com/DataDog/opencensus-go-exporter-datadog"
	zipkinhttp "github.com/openzipkin/zipkin-go/reporter/http"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/trace"

	"github.com/Go4ItSports/go4it/config"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type traceExporterFactory func(cfg *config.TracingConfig) (trace.Exporter, error)

type metricsExporterFactory func(cfg *config.TracingConfig, log logger.Logger) (view.Exporter, error)

var traceExporters = map[string]traceExporterFactory{
	"jaeger":      newJaegerExporter,
	"zipkin":      newZipkinExporter,
	"stackdriver": newStackdriverExporter,
	"datadog":     newDatadogTraceExporter,
	"xray":        newXRayExporter,
}

var metricsExporters = map[string]metricsExporterFactory{
	"prometheus":  newPrometheusExporter,
	"stackdriver": newStackdriverMetricsExporter,
	"datadog":     newDatadogMetricsExporter,
}

// InitTracing configures sampling, registers exporters and the default views
// codecov:ignore:start
func InitTracing(cfg *config.TracingConfig, log logger.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	trace.ApplyConfig(trace.Config{
		DefaultSampler: trace.ProbabilitySampler(cfg.SamplingProbability),
	})

	if name := cfg.TraceExporter; name != "" && name != "none" {
		factory, ok := traceExporters[name]
		if !ok {
			return fmt.Errorf("unsupported trace exporter: %s", name)
		}
		exporter, err := factory(cfg)
		if err != nil {
			return fmt.Errorf("failed to create %s trace exporter: %w", name, err)
		}
		trace.RegisterExporter(exporter)
		log.WithField("exporter", name).Info("Trace exporter registered")
	}

	for _, name := range splitExporters(cfg.MetricsExporter) {
		factory, ok := metricsExporters[name]
		if !ok {
			return fmt.Errorf("unsupported metrics exporter: %s", name)
		}
		exporter, err := factory(cfg, log)
		if err != nil {
			return fmt.Errorf("failed to create %s metrics exporter: %w", name, err)
		}
		view.RegisterExporter(exporter)
		log.WithField("exporter", name).Info("Metrics exporter registered")
	}

	if err := view.Register(ochttp.DefaultServerViews...); err != nil {
		return fmt.Errorf("failed to register HTTP server views: %w", err)
	}
	if err := view.Register(ocsql.DefaultViews...); err != nil {
		return fmt.Errorf("failed to register database views: %w", err)
	}

	return nil
}

func splitExporters(list string) []string {
	var out []string
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" || name == "none" {
			continue
		}
		out = append(out, name)
	}
	return out
}

func newJaegerExporter(cfg *config.TracingConfig) (trace.Exporter, error) {
	if cfg.JaegerEndpoint == "" {
		return nil, fmt.Errorf("jaeger endpoint is required")
	}
	return jaeger.NewExporter(jaeger.Options{
		CollectorEndpoint: cfg.JaegerEndpoint,
		Process:           jaeger.Process{ServiceName: cfg.ServiceName},
	})
}

func newZipkinExporter(cfg *config.TracingConfig) (trace.Exporter, error) {
	if cfg.ZipkinEndpoint == "" {
		return nil, fmt.Errorf("zipkin endpoint is required")
	}
	reporter := zipkinhttp.NewReporter(cfg.ZipkinEndpoint)
	return zipkin.NewExporter(reporter, nil), nil
}

func newStackdriverExporter(cfg *config.TracingConfig) (trace.Exporter, error) {
	if cfg.StackdriverProjectID == "" {
		return nil, fmt.Errorf("stackdriver project id is required")
	}
	return stackdriver.NewExporter(stackdriver.Options{ProjectID: cfg.StackdriverProjectID})
}

func newDatadogTraceExporter(cfg *config.TracingConfig) (trace.Exporter, error) {
	if cfg.DatadogAgentAddress == "" {
		return nil, fmt.Errorf("datadog agent address is required")
	}
	return datadog.NewExporter(datadog.Options{
		Service:   cfg.ServiceName,
		TraceAddr: cfg.DatadogAgentAddress,
		StatsAddr: cfg.DatadogAgentAddress,
	})
}

func newXRayExporter(cfg *config.TracingConfig) (trace.Exporter, error) {
	if cfg.XRayRegion == "" {
		return nil, fmt.Errorf("aws region is required for x-ray")
	}
	return aws.NewExporter(aws.WithRegion(cfg.XRayRegion), aws.WithVersion("latest"))
}

func newPrometheusExporter(cfg *config.TracingConfig, log logger.Logger) (view.Exporter, error) {
	pe, err := prometheus.NewExporter(prometheus.Options{
		Namespace: strings.ReplaceAll(cfg.ServiceName, "-", "_"),
		OnError: func(err error) {
			log.Error(fmt.Sprintf("Prometheus exporter error: %v", err))
		},
	})
	if err != nil {
		return nil, err
	}

	if cfg.PrometheusPort > 0 {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", pe)
			addr := fmt.Sprintf(":%d", cfg.PrometheusPort)
			log.WithField("address", addr).Info("Starting Prometheus metrics server")
			if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
				log.Error(fmt.Sprintf("Prometheus metrics server stopped: %v", err))
			}
		}()
	}

	return pe, nil
}

func newStackdriverMetricsExporter(cfg *config.TracingConfig, log logger.Logger) (view.Exporter, error) {
	if cfg.StackdriverProjectID == "" {
		return nil, fmt.Errorf("stackdriver project id is required")
	}
	return stackdriver.NewExporter(stackdriver.Options{
		ProjectID:    cfg.StackdriverProjectID,
		MetricPrefix: cfg.ServiceName,
		OnError: func(err error) {
			log.Error(fmt.Sprintf("Stackdriver metrics exporter error: %v", err))
		},
	})
}

func newDatadogMetricsExporter(cfg *config.TracingConfig, log logger.Logger) (view.Exporter, error) {
	if cfg.DatadogAgentAddress == "" {
		return nil, fmt.Errorf("datadog agent address is required")
	}
	return datadog.NewExporter(datadog.Options{
		Service:   cfg.ServiceName,
		StatsAddr: cfg.DatadogAgentAddress,
		OnError: func(err error) {
			log.Error(fmt.Sprintf("Datadog metrics exporter error: %v", err))
		},
	})
}

// codecov:ignore:end
