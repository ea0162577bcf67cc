package es

import (
	"context"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
)

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
	// ResultWindow is the index max_result_window; 0 means the Elasticsearch default.
	ResultWindow int
}

const defaultResultWindow = 10_000

func (c ClientConfig) resultWindow() int {
	if c.ResultWindow > 0 {
		return c.ResultWindow
	}
	return defaultResultWindow
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewTypedClient(cfg)

	return client, err
}

type HealthChecker struct {
	client *elasticsearch.TypedClient
}

func NewHealthChecker(config ClientConfig) (*HealthChecker, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, err
	}
	return &HealthChecker{client: client}, nil
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	ok, err := hc.client.Ping().Do(ctx)
	if err != nil {
		slog.Warn("Elasticsearch health check failed", "error", err)
		return false
	}
	return ok
}
