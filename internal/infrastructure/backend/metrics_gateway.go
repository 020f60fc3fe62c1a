package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	"github.com/rafikey/rafikey-admin/internal/domain/repository"
)

// MetricsGateway fetches raw metric payloads from either backend.
type MetricsGateway struct {
	Core *Client
	Bot  *Client
}

func NewMetricsGateway(core, bot *Client) *MetricsGateway {
	return &MetricsGateway{Core: core, Bot: bot}
}

func (g *MetricsGateway) Fetch(ctx context.Context, token string, source entity.MetricSource, path string) (json.RawMessage, error) {
	var c *Client
	switch source {
	case entity.SourceCore:
		c = g.Core
	case entity.SourceBot:
		c = g.Bot
	default:
		return nil, fmt.Errorf("unknown metric source %q", source)
	}
	var raw json.RawMessage
	if err := c.GetJSON(ctx, path, token, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

var _ repository.MetricsRepository = (*MetricsGateway)(nil)
