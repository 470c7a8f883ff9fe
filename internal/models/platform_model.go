package models

import (
	"errors"
	"fmt"
)

type Platform string

const (
	PlatformLinkedIn  Platform = "linkedin"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
)

// Platforms lists every supported platform in legend order.
var Platforms = []Platform{
	PlatformLinkedIn,
	PlatformFacebook,
	PlatformInstagram,
	PlatformYouTube,
	PlatformTwitter,
}

var ErrUnknownPlatform = errors.New("unknown platform")

// PlatformInfo is the static preview metadata of a platform.
type PlatformInfo struct {
	Name         string `json:"name"`
	Color        string `json:"color"`
	MaxChars     int    `json:"max_chars"`
	ProfileName  string `json:"profile_name"`
	ProfileImage string `json:"profile_image"`
	TimeAgo      string `json:"time_ago"`
}

var platformInfo = map[Platform]PlatformInfo{
	PlatformLinkedIn: {
		Name:         "LinkedIn",
		Color:        "bg-blue-600",
		MaxChars:     3000,
		ProfileName:  "Your Company",
		ProfileImage: "👔",
		TimeAgo:      "2h",
	},
	PlatformFacebook: {
		Name:         "Facebook",
		Color:        "bg-blue-500",
		MaxChars:     63206,
		ProfileName:  "Your Page",
		ProfileImage: "📘",
		TimeAgo:      "3h",
	},
	PlatformInstagram: {
		Name:         "Instagram",
		Color:        "bg-pink-500",
		MaxChars:     2200,
		ProfileName:  "yourhandle",
		ProfileImage: "📸",
		TimeAgo:      "1h",
	},
	PlatformYouTube: {
		Name:         "YouTube",
		Color:        "bg-red-500",
		MaxChars:     5000,
		ProfileName:  "Your Channel",
		ProfileImage: "🎥",
		TimeAgo:      "4h",
	},
	PlatformTwitter: {
		Name:         "X (Twitter)",
		Color:        "bg-black",
		MaxChars:     280,
		ProfileName:  "@yourhandle",
		ProfileImage: "🐦",
		TimeAgo:      "30m",
	},
}

// calendarColors are the card colors used on the scheduling grid; they differ
// slightly from the preview header colors.
var calendarColors = map[Platform]string{
	PlatformLinkedIn:  "bg-blue-500",
	PlatformFacebook:  "bg-blue-600",
	PlatformInstagram: "bg-pink-500",
	PlatformYouTube:   "bg-red-500",
	PlatformTwitter:   "bg-black",
}

func ParsePlatform(s string) (Platform, error) {
	p := Platform(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
	}
	return p, nil
}

func (p Platform) Valid() bool {
	_, ok := platformInfo[p]
	return ok
}

// Info returns the preview metadata; the zero value for unknown platforms.
func (p Platform) Info() PlatformInfo {
	return platformInfo[p]
}

func (p Platform) CalendarColor() string {
	return calendarColors[p]
}
