package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	repo "github.com/rafikey/rafikey-admin/internal/domain/repository"
)

// leakOptions skips the opencensus view worker that the storage client
// dependency starts at init, plus anything alive before the test.
func leakOptions() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"),
		goleak.IgnoreCurrent(),
	}
}

func TestMetricsService_FailureIsIsolated(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions()...)

	f := &fakeMetrics{
		answers: map[string]string{
			"/metrics/engagement_rate": `{"engagement_rate": 42.26}`,
		},
		fail: map[string]error{
			"/metrics/drop_off_rate": &repo.StatusError{Status: 500},
		},
	}
	svc := NewMetricsService(f, nil)
	set := svc.Fetch(context.Background(), entity.Actor{Token: "t"}, AnalysisMetrics)

	require.Len(t, set, len(AnalysisMetrics))
	assert.Len(t, f.calls, len(AnalysisMetrics))

	drop := set.Get(MetricDropOffRate)
	assert.True(t, drop.IsFailed())
	assert.Equal(t, "Failed to fetch Drop-off Rate", drop.Err)

	for _, d := range AnalysisMetrics {
		if d.Key == MetricDropOffRate {
			continue
		}
		assert.True(t, set.Get(d.Key).IsReady(), "%s should be ready", d.Key)
	}
	assert.Equal(t, "42.3%", Display(set, MetricEngagementRate).Text)
}

func TestMetricsService_TransportFailureStillFillsOthers(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions()...)

	f := &fakeMetrics{fail: map[string]error{
		"/chatbot/topics": errors.Join(repo.ErrUnavailable, errors.New("dial tcp: refused")),
	}}
	set := NewMetricsService(f, nil).Fetch(context.Background(), entity.Actor{}, DashboardMetrics)

	view := BuildDashboard(set)
	assert.Equal(t, "Failed to load topics", view.TopicsErr)
	assert.Empty(t, view.QuestionsErr)
	assert.Equal(t, "0", view.Conversations.Text)
}

func TestMetricsService_CancelledContextReturns(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions()...)

	block := make(chan struct{})
	defer close(block)
	f := &fakeMetrics{block: map[string]chan struct{}{"/chatbot/questions": block}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	set := NewMetricsService(f, nil).Fetch(ctx, entity.Actor{}, DashboardMetrics)
	assert.True(t, set.Get(MetricQuestions).IsFailed())
}
