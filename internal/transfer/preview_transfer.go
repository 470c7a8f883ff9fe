package transfer

type PreviewRequest struct {
	Platform  string   `json:"platform"`
	Platforms []string `json:"platforms"`
	Type      string   `json:"type"`
	Caption   string   `json:"caption"`
	MediaURL  string   `json:"media_url"`
}
