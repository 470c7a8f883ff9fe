package models

type Metrics struct {
	Impressions int `json:"impressions" yaml:"impressions"`
	Engagement  int `json:"engagement" yaml:"engagement"`
	Clicks      int `json:"clicks" yaml:"clicks"`
	Shares      int `json:"shares" yaml:"shares"`
}

type AnalyticsData struct {
	Platform Platform `json:"platform" yaml:"platform"`
	Metrics  Metrics  `json:"metrics" yaml:"metrics"`
	Period   string   `json:"period" yaml:"period"`
}

// DateRange is inclusive on both ends.
type DateRange struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}
