package llm

import (
	"context"
	"time"
)

// Observer receives one observation per provider call.
type Observer interface {
	ObserveLLMCall(purpose, model string, success bool, latency time.Duration, usage Usage)
}

// MetricsProvider reports every call to an Observer.
type MetricsProvider struct {
	inner    Provider
	observer Observer
}

func WithMetrics(p Provider, o Observer) Provider {
	return &MetricsProvider{inner: p, observer: o}
}

func (m *MetricsProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := m.inner.Generate(ctx, req)

	model := m.inner.ModelID()
	var usage Usage
	if resp != nil {
		usage = resp.Usage
		if resp.Model != "" {
			model = resp.Model
		}
	}
	m.observer.ObserveLLMCall(PurposeFrom(ctx), model, err == nil, time.Since(start), usage)
	return resp, err
}

func (m *MetricsProvider) ModelID() string {
	return m.inner.ModelID()
}
