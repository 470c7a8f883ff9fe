package models

import (
	"time"
)

type SocialAccount struct {
	ID           string     `json:"id" yaml:"id"`
	Platform     Platform   `json:"platform" yaml:"platform"`
	Username     string     `json:"username" yaml:"username"`
	IsConnected  bool       `json:"is_connected" yaml:"is_connected"`
	LastSync     *time.Time `json:"last_sync,omitempty" yaml:"-"`
	Followers    int        `json:"followers,omitempty" yaml:"followers"`
	ProfileImage string     `json:"profile_image,omitempty" yaml:"profile_image"`
}

func (a SocialAccount) Key() string { return a.ID }
