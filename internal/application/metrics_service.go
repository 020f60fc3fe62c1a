package application

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	repo "github.com/rafikey/rafikey-admin/internal/domain/repository"
	"github.com/rafikey/rafikey-admin/pkg/helpers"
)

type MetricsService struct {
	Repo   repo.MetricsRepository
	Logger *logrus.Logger
}

func NewMetricsService(r repo.MetricsRepository, logger *logrus.Logger) *MetricsService {
	return &MetricsService{Repo: r, Logger: logger}
}

// Fetch issues one request per descriptor concurrently. A failure only marks
// its own entry Failed; the set always holds every descriptor's key.
func (s *MetricsService) Fetch(ctx context.Context, actor entity.Actor, descs []entity.MetricDescriptor) entity.MetricSet {
	set := make(entity.MetricSet, len(descs))
	for _, d := range descs {
		set[d.Key] = entity.MetricResult{}
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, d := range descs {
		g.Go(func() error {
			res := s.fetchOne(gctx, actor, d)
			mu.Lock()
			set[d.Key] = res
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return set
}

func (s *MetricsService) fetchOne(ctx context.Context, actor entity.Actor, d entity.MetricDescriptor) entity.MetricResult {
	raw, err := s.Repo.Fetch(ctx, actor.Token, d.Source, d.Path)
	if err != nil {
		helpers.LogWarn(s.Logger, "metric fetch failed", err, logrus.Fields{"metric": d.Key, "path": d.Path})
		return entity.Failed(d.FailureMessage)
	}
	return entity.Ready(raw)
}
