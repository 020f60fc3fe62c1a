package application

import "github.com/rafikey/rafikey-admin/internal/domain/entity"

// Dashboard metrics, served by the bot backend.
const (
	MetricConversations    entity.MetricKey = "conversations"
	MetricActiveUsersToday entity.MetricKey = "active_users_today"
	MetricSentiment        entity.MetricKey = "sentiment"
	MetricTopics           entity.MetricKey = "topics"
	MetricQuestions        entity.MetricKey = "questions"
)

// Analysis metrics, served by the core backend.
const (
	MetricUserSatisfaction  entity.MetricKey = "user_satisfaction"
	MetricUSS               entity.MetricKey = "user_satisfaction_score"
	MetricTimeSpent         entity.MetricKey = "time_spent_per_session"
	MetricEngagementRate    entity.MetricKey = "engagement_rate"
	MetricMessageCompletion entity.MetricKey = "message_completion_rate"
	MetricRetention         entity.MetricKey = "user_retention_rate"
	MetricActiveMonthly     entity.MetricKey = "active_monthly_users"
	MetricReferralRate      entity.MetricKey = "referral_rate"
	MetricDropOffRate       entity.MetricKey = "drop_off_rate"
	MetricServiceFinder     entity.MetricKey = "service_finder_usage"
	MetricDemographicReach  entity.MetricKey = "demographic_reach"
	MetricGenderAnalysis    entity.MetricKey = "gender_analysis"
)

var DashboardMetrics = []entity.MetricDescriptor{
	{Key: MetricConversations, Source: entity.SourceBot, Path: "/chatbot/unique_thread_ids/count", Label: "Total Conversations", FailureMessage: "Failed to load"},
	{Key: MetricActiveUsersToday, Source: entity.SourceBot, Path: "/chatbot/active_users_today", Label: "Active Users Today", FailureMessage: "Failed to load"},
	{Key: MetricSentiment, Source: entity.SourceBot, Path: "/chatbot/sentiment_analysis", Label: "Sentiment Analysis", FailureMessage: "Failed to load sentiment analysis"},
	{Key: MetricTopics, Source: entity.SourceBot, Path: "/chatbot/topics", Label: "Trending Topics", FailureMessage: "Failed to load topics"},
	{Key: MetricQuestions, Source: entity.SourceBot, Path: "/chatbot/questions", Label: "Frequently Asked Questions", FailureMessage: "Failed to load questions"},
}

var AnalysisMetrics = []entity.MetricDescriptor{
	coreMetric(MetricUserSatisfaction, "User Satisfaction", "Failed to fetch User Satisfaction"),
	coreMetric(MetricUSS, "User Satisfaction Score (USS)", "Failed to fetch USS"),
	coreMetric(MetricTimeSpent, "Time Spent Per Session", "Failed to fetch Time Spent"),
	coreMetric(MetricEngagementRate, "Engagement Rate", "Failed to fetch Engagement Rate"),
	coreMetric(MetricMessageCompletion, "Message Completion Rate", "Failed to fetch Message Completion Rate"),
	coreMetric(MetricRetention, "User Retention Rate (7-day & 30-day)", "Failed to fetch User Retention Rate"),
	coreMetric(MetricActiveMonthly, "Active Monthly Users (AMU)", "Failed to fetch Active Monthly Users"),
	coreMetric(MetricReferralRate, "Referral Rate", "Failed to fetch Referral Rate"),
	coreMetric(MetricDropOffRate, "Drop-off Rate", "Failed to fetch Drop-off Rate"),
	coreMetric(MetricServiceFinder, "Service Finder Usage Rate", "Failed to fetch Service Finder Usage Rate"),
	coreMetric(MetricDemographicReach, "Demographic Reach", "Failed to fetch Demographic Reach"),
	coreMetric(MetricGenderAnalysis, "Gender Analysis", "Failed to fetch Gender Analysis"),
}

func coreMetric(key entity.MetricKey, label, failure string) entity.MetricDescriptor {
	return entity.MetricDescriptor{
		Key:            key,
		Source:         entity.SourceCore,
		Path:           "/metrics/" + string(key),
		Label:          label,
		FailureMessage: failure,
	}
}
