package repository

import (
	"context"
	"encoding/json"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
)

// MetricsRepository fetches one raw metric payload.
type MetricsRepository interface {
	Fetch(ctx context.Context, token string, source entity.MetricSource, path string) (json.RawMessage, error)
}
