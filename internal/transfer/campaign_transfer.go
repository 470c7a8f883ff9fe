package transfer

type CampaignCreation struct {
	ID           string   `json:"id"`
	Name         string   `json:"name" validate:"required,max=120"`
	Description  string   `json:"description" validate:"max=2000"`
	ContentIDs   []string `json:"content_ids"`
	Platforms    []string `json:"platforms" validate:"required,min=1,dive,oneof=linkedin facebook instagram youtube twitter"`
	ScheduleType string   `json:"schedule_type" validate:"required,oneof=once daily weekly monthly custom"`
	StartDate    string   `json:"start_date" validate:"required"`
	EndDate      string   `json:"end_date"`
	Status       string   `json:"status" validate:"omitempty,oneof=draft active paused completed"`
}

type AccountCreation struct {
	ID           string `json:"id"`
	Platform     string `json:"platform" validate:"required,oneof=linkedin facebook instagram youtube twitter"`
	Username     string `json:"username" validate:"required,max=100"`
	IsConnected  bool   `json:"is_connected"`
	Followers    int    `json:"followers" validate:"gte=0"`
	ProfileImage string `json:"profile_image"`
}
