package entity

import "encoding/json"

// MetricSource names the backend a metric is served from.
type MetricSource string

const (
	SourceCore MetricSource = "core"
	SourceBot  MetricSource = "bot"
)

type MetricKey string

// MetricDescriptor describes one independently fetched metric.
type MetricDescriptor struct {
	Key            MetricKey
	Source         MetricSource
	Path           string
	Label          string
	FailureMessage string
}

type ResultState int

const (
	ResultPending ResultState = iota
	ResultFailed
	ResultReady
)

// MetricResult is Pending, Failed or Ready. The zero value is Pending.
type MetricResult struct {
	State ResultState
	Err   string
	Raw   json.RawMessage
}

func Ready(raw json.RawMessage) MetricResult {
	return MetricResult{State: ResultReady, Raw: raw}
}

func Failed(msg string) MetricResult {
	return MetricResult{State: ResultFailed, Err: msg}
}

func (r MetricResult) IsReady() bool  { return r.State == ResultReady }
func (r MetricResult) IsFailed() bool { return r.State == ResultFailed }

// Decode unmarshals a ready payload into dst.
func (r MetricResult) Decode(dst any) error {
	if r.State != ResultReady {
		return ErrMetricNotReady
	}
	return json.Unmarshal(r.Raw, dst)
}

// MetricSet is the outcome of one page load, keyed by descriptor.
type MetricSet map[MetricKey]MetricResult

// Get returns the result for key; missing keys read as Pending.
func (s MetricSet) Get(key MetricKey) MetricResult { return s[key] }

// CatalogEntry is one row of the static metric catalog.
type CatalogEntry struct {
	ID         int       `yaml:"id"`
	Category   string    `yaml:"category"`
	Metric     string    `yaml:"metric"`
	Definition string    `yaml:"definition"`
	Baseline   string    `yaml:"baseline"`
	Target     string    `yaml:"target"`
	Rationale  string    `yaml:"rationale"`
	Color      string    `yaml:"color"`
	Live       MetricKey `yaml:"live,omitempty"`
}
