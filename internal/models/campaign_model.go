package models

import "time"

type ScheduleType string

const (
	ScheduleTypeOnce    ScheduleType = "once"
	ScheduleTypeDaily   ScheduleType = "daily"
	ScheduleTypeWeekly  ScheduleType = "weekly"
	ScheduleTypeMonthly ScheduleType = "monthly"
	ScheduleTypeCustom  ScheduleType = "custom"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

type Campaign struct {
	ID           string         `json:"id" yaml:"id"`
	Name         string         `json:"name" yaml:"name"`
	Description  string         `json:"description,omitempty" yaml:"description"`
	ContentIDs   []string       `json:"content_ids" yaml:"content_ids"`
	Platforms    []Platform     `json:"platforms" yaml:"platforms"`
	ScheduleType ScheduleType   `json:"schedule_type" yaml:"schedule_type"`
	StartDate    Date           `json:"start_date" yaml:"start_date"`
	EndDate      *Date          `json:"end_date,omitempty" yaml:"end_date"`
	Status       CampaignStatus `json:"status" yaml:"status"`
	CreatedAt    time.Time      `json:"created_at" yaml:"-"`
}

func (c Campaign) Key() string { return c.ID }
