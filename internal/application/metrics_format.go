package application

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
)

const notAvailable = "N/A"

// MetricValue is the display form of one live metric.
type MetricValue struct {
	Text      string
	Pending   bool
	Failed    bool
	Total     *float64
	Breakdown []Count
}

type Count struct {
	Label string
	Value float64
}

// Display renders a raw result for key following the analysis page rules.
// Demographic reach reads gender_analysis first, so it takes the whole set.
func Display(set entity.MetricSet, key entity.MetricKey) MetricValue {
	if key == MetricDemographicReach {
		return displayDemographics(set)
	}
	r := set.Get(key)
	switch r.State {
	case entity.ResultPending:
		return MetricValue{Text: "Loading...", Pending: true}
	case entity.ResultFailed:
		return MetricValue{Text: r.Err, Failed: true}
	}

	switch key {
	case MetricUSS:
		var v struct {
			USS     *float64 `json:"USS"`
			Message string   `json:"message"`
		}
		if r.Decode(&v) == nil {
			if v.USS != nil {
				return text(formatNumber(*v.USS))
			}
			if v.Message != "" {
				return text(v.Message)
			}
		}
	case MetricTimeSpent:
		var v struct {
			Minutes  *float64 `json:"average_time_spent_minutes"`
			Sessions *int64   `json:"sessions_count"`
		}
		if r.Decode(&v) == nil && v.Minutes != nil {
			return text(FormatDuration(*v.Minutes, v.Sessions))
		}
	case MetricEngagementRate, MetricMessageCompletion, MetricDropOffRate:
		if p := numberField(r, string(key)); p != nil {
			return text(formatPercent(*p))
		}
	case MetricRetention:
		var v struct {
			Day7  *float64 `json:"7_day_retention"`
			Day30 *float64 `json:"30_day_retention"`
		}
		if r.Decode(&v) == nil && v.Day7 != nil && v.Day30 != nil {
			return text(fmt.Sprintf("7d: %s, 30d: %s", formatPercent(*v.Day7), formatPercent(*v.Day30)))
		}
	case MetricActiveMonthly:
		var v struct {
			Count *float64 `json:"active_monthly_users"`
		}
		if r.Decode(&v) == nil && v.Count != nil {
			return text(formatNumber(*v.Count))
		}
	case MetricReferralRate:
		var v struct {
			Rate    *float64 `json:"referral_rate"`
			Message string   `json:"message"`
		}
		if r.Decode(&v) == nil {
			if v.Rate != nil {
				return text(formatPercent(*v.Rate))
			}
			if v.Message != "" {
				return text(v.Message)
			}
		}
	case MetricServiceFinder:
		var v struct {
			Uses        *float64 `json:"service_finder_uses"`
			UniqueUsers *float64 `json:"unique_users"`
			Message     string   `json:"message"`
		}
		if r.Decode(&v) == nil {
			if v.Uses != nil && v.UniqueUsers != nil {
				return text(fmt.Sprintf("%s uses, %s unique users", formatNumber(*v.Uses), formatNumber(*v.UniqueUsers)))
			}
			if v.Message != "" {
				return text(v.Message)
			}
		}
	case MetricUserSatisfaction:
		var v struct {
			TotalFeedback *float64 `json:"total_feedback"`
		}
		if r.Decode(&v) == nil && v.TotalFeedback != nil {
			return text(formatNumber(*v.TotalFeedback) + " responses")
		}
	}
	return text(notAvailable)
}

type genderData struct {
	TotalUsers      *float64           `json:"total_users"`
	GenderBreakdown map[string]float64 `json:"gender_breakdown"`
}

// displayDemographics prefers gender_analysis when it carries total_users.
func displayDemographics(set entity.MetricSet) MetricValue {
	reach, gender := set.Get(MetricDemographicReach), set.Get(MetricGenderAnalysis)
	if reach.State == entity.ResultPending || gender.State == entity.ResultPending {
		return MetricValue{Text: "Loading...", Pending: true}
	}
	if reach.IsFailed() {
		return MetricValue{Text: reach.Err, Failed: true}
	}
	if gender.IsFailed() {
		return MetricValue{Text: gender.Err, Failed: true}
	}

	var g, d genderData
	_ = gender.Decode(&g)
	_ = reach.Decode(&d)
	data := d
	if g.TotalUsers != nil {
		data = g
	}
	if data.TotalUsers == nil {
		return text(notAvailable)
	}

	out := MetricValue{Total: data.TotalUsers, Text: formatNumber(*data.TotalUsers) + " users"}
	for label, n := range data.GenderBreakdown {
		if label == "" || label == "null" {
			continue
		}
		out.Breakdown = append(out.Breakdown, Count{Label: label, Value: n})
	}
	sort.Slice(out.Breakdown, func(i, j int) bool { return out.Breakdown[i].Label < out.Breakdown[j].Label })
	return out
}

// FormatDuration renders minutes as "Xh Ym" from an hour up, otherwise with
// two decimals, and appends the session count when known.
func FormatDuration(minutes float64, sessions *int64) string {
	var s string
	if minutes >= 60 {
		s = fmt.Sprintf("%dh %dm", int64(math.Floor(minutes/60)), int64(math.Round(math.Mod(minutes, 60))))
	} else {
		s = fmt.Sprintf("%.2f min", minutes)
	}
	if sessions != nil {
		s += fmt.Sprintf(" (%d sessions)", *sessions)
	}
	return s
}

func formatPercent(v float64) string { return fmt.Sprintf("%.1f%%", v) }

// formatNumber prints integers without decimals and groups thousands.
func formatNumber(v float64) string {
	if v != math.Trunc(v) {
		return fmt.Sprintf("%g", v)
	}
	neg := v < 0
	digits := fmt.Sprintf("%d", int64(math.Abs(v)))
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// numberField reads one numeric field, ignoring the rest of the object.
func numberField(r entity.MetricResult, name string) *float64 {
	var obj map[string]json.RawMessage
	if r.Decode(&obj) != nil {
		return nil
	}
	var f *float64
	if json.Unmarshal(obj[name], &f) != nil {
		return nil
	}
	return f
}

func text(s string) MetricValue { return MetricValue{Text: s} }
