package application

import (
	"sort"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
)

type Topic struct {
	Topic      string   `json:"topic"`
	Confidence float64  `json:"confidence"`
	Keywords   []string `json:"keywords"`
}

// Level buckets confidence for badge colouring.
func (t Topic) Level() string {
	switch {
	case t.Confidence >= 99:
		return "high"
	case t.Confidence >= 95:
		return "medium"
	}
	return "low"
}

type FAQ struct {
	Question  string `json:"question"`
	Frequency int    `json:"frequency"`
}

type Sentiment struct {
	Positive  float64 `json:"positive"`
	Neutral   float64 `json:"neutral"`
	Negative  float64 `json:"negative"`
	Available bool    `json:"-"`
}

// DashboardView is the home page's live section.
type DashboardView struct {
	Conversations    MetricValue
	ActiveUsersToday MetricValue

	Sentiment    Sentiment
	SentimentErr string

	Topics    []Topic
	TopicsErr string

	Questions    []FAQ
	QuestionsErr string
}

func BuildDashboard(set entity.MetricSet) DashboardView {
	v := DashboardView{
		Conversations:    countValue(set.Get(MetricConversations), "count", true),
		ActiveUsersToday: countValue(set.Get(MetricActiveUsersToday), "active_users_today", false),
	}

	if r := set.Get(MetricSentiment); r.IsFailed() {
		v.SentimentErr = r.Err
	} else if r.IsReady() {
		var s Sentiment
		if r.Decode(&s) == nil && s.Positive+s.Neutral+s.Negative > 0 {
			s.Available = true
			v.Sentiment = s
		}
	}

	if r := set.Get(MetricTopics); r.IsFailed() {
		v.TopicsErr = r.Err
	} else if r.IsReady() {
		_ = r.Decode(&v.Topics)
	}

	if r := set.Get(MetricQuestions); r.IsFailed() {
		v.QuestionsErr = r.Err
	} else if r.IsReady() {
		_ = r.Decode(&v.Questions)
		sort.SliceStable(v.Questions, func(i, j int) bool { return v.Questions[i].Frequency > v.Questions[j].Frequency })
	}
	return v
}

// countValue formats a {field: n} payload. A non-numeric answer reads as 0;
// quiet failures also read as 0 instead of an error.
func countValue(r entity.MetricResult, field string, quiet bool) MetricValue {
	switch r.State {
	case entity.ResultPending:
		return MetricValue{Text: "...", Pending: true}
	case entity.ResultFailed:
		if quiet {
			return text("0")
		}
		return MetricValue{Text: r.Err, Failed: true}
	}
	if n := numberField(r, field); n != nil {
		return text(formatNumber(*n))
	}
	return text("0")
}
