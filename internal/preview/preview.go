// Package preview renders how a draft looks on each platform's feed.
package preview

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/maheshrc27/fluxora/internal/models"
)

const Ellipsis = "..."

// Content is the part of a draft a preview needs.
type Content struct {
	Type     models.ContentType `json:"type"`
	Caption  string             `json:"caption"`
	MediaURL string             `json:"media_url,omitempty"`
}

type Layout string

const (
	LayoutLinkedInFeed  Layout = "linkedin-feed"
	LayoutFacebookFeed  Layout = "facebook-feed"
	LayoutInstagramPost Layout = "instagram-post"
	LayoutYouTubeVideo  Layout = "youtube-video"
	LayoutTwitterPost   Layout = "twitter-post"
)

type Aspect string

const (
	AspectWide    Aspect = "wide"
	AspectSquare  Aspect = "square"
	AspectVideo   Aspect = "16:9"
	AspectRounded Aspect = "rounded"
)

type Header struct {
	DisplayName  string `json:"display_name,omitempty"`
	ProfileName  string `json:"profile_name"`
	ProfileImage string `json:"profile_image"`
	TimeAgo      string `json:"time_ago"`
	Badge        string `json:"badge,omitempty"`
	Audience     string `json:"audience,omitempty"`
}

type Media struct {
	URL         string `json:"url"`
	Aspect      Aspect `json:"aspect"`
	PlayOverlay bool   `json:"play_overlay,omitempty"`
}

// Action is an engagement affordance; Label is empty for icon-only rows.
type Action struct {
	Icon  string `json:"icon"`
	Label string `json:"label,omitempty"`
}

type Preview struct {
	Platform  models.Platform `json:"platform"`
	Name      string          `json:"name"`
	Color     string          `json:"color"`
	Layout    Layout          `json:"layout"`
	Header    Header          `json:"header"`
	Title     string          `json:"title,omitempty"`
	ViewCount string          `json:"view_count,omitempty"`
	Caption   string          `json:"caption"`
	Truncated bool            `json:"truncated"`
	Media     *Media          `json:"media,omitempty"`
	Actions   []Action        `json:"actions"`
	CharCount int             `json:"char_count"`
	MaxChars  int             `json:"max_chars"`
}

// Counter is the live "current/max" character readout.
func (p Preview) Counter() string {
	return fmt.Sprintf("%d/%d", p.CharCount, p.MaxChars)
}

func (p Preview) OverLimit() bool {
	return p.CharCount > p.MaxChars
}

// Truncate cuts caption to max characters and appends Ellipsis when it had to cut.
// The cut is by character count, not at a word boundary.
func Truncate(caption string, max int) (string, bool) {
	if utf8.RuneCountInString(caption) <= max {
		return caption, false
	}
	runes := []rune(caption)
	return string(runes[:max]) + Ellipsis, true
}

// Render builds the platform-specific preview. Each platform has its own builder;
// adding a Platform without one fails here with ErrUnknownPlatform.
func Render(platform models.Platform, content Content) (Preview, error) {
	info := platform.Info()
	base := Preview{
		Platform:  platform,
		Name:      info.Name,
		Color:     info.Color,
		CharCount: utf8.RuneCountInString(content.Caption),
		MaxChars:  info.MaxChars,
	}
	base.Caption, base.Truncated = Truncate(content.Caption, info.MaxChars)

	switch platform {
	case models.PlatformLinkedIn:
		return renderLinkedIn(base, info, content), nil
	case models.PlatformFacebook:
		return renderFacebook(base, info, content), nil
	case models.PlatformInstagram:
		return renderInstagram(base, info, content), nil
	case models.PlatformYouTube:
		return renderYouTube(base, info, content), nil
	case models.PlatformTwitter:
		return renderTwitter(base, info, content), nil
	default:
		return Preview{}, fmt.Errorf("%w: %q", models.ErrUnknownPlatform, platform)
	}
}

// RenderAll renders content for every platform in order, stopping at the first unknown one.
func RenderAll(platforms []models.Platform, content Content) ([]Preview, error) {
	out := make([]Preview, 0, len(platforms))
	for _, p := range platforms {
		pv, err := Render(p, content)
		if err != nil {
			return nil, err
		}
		out = append(out, pv)
	}
	return out, nil
}

func renderLinkedIn(p Preview, info models.PlatformInfo, c Content) Preview {
	p.Layout = LayoutLinkedInFeed
	p.Header = Header{
		ProfileName:  info.ProfileName,
		ProfileImage: info.ProfileImage,
		TimeAgo:      info.TimeAgo,
		Badge:        "Following",
		Audience:     "🌍",
	}
	if c.MediaURL != "" {
		p.Media = &Media{URL: c.MediaURL, Aspect: AspectWide}
	}
	p.Actions = []Action{{Icon: "heart", Label: "Like"}, {Icon: "chat", Label: "Comment"}, {Icon: "repost", Label: "Repost"}}
	return p
}

func renderFacebook(p Preview, info models.PlatformInfo, c Content) Preview {
	p.Layout = LayoutFacebookFeed
	p.Header = Header{
		ProfileName:  info.ProfileName,
		ProfileImage: info.ProfileImage,
		TimeAgo:      info.TimeAgo,
		Audience:     "🌍",
	}
	if c.MediaURL != "" {
		p.Media = &Media{URL: c.MediaURL, Aspect: AspectWide}
	}
	p.Actions = []Action{{Icon: "heart", Label: "Like"}, {Icon: "chat", Label: "Comment"}, {Icon: "repost", Label: "Share"}}
	return p
}

// Instagram leads with square media; the caption follows the action icons.
func renderInstagram(p Preview, info models.PlatformInfo, c Content) Preview {
	p.Layout = LayoutInstagramPost
	p.Header = Header{
		ProfileName:  info.ProfileName,
		ProfileImage: info.ProfileImage,
		TimeAgo:      strings.ToUpper(info.TimeAgo),
	}
	if c.MediaURL != "" {
		p.Media = &Media{URL: c.MediaURL, Aspect: AspectSquare}
	}
	p.Actions = []Action{{Icon: "heart"}, {Icon: "chat"}, {Icon: "repost"}}
	return p
}

func renderYouTube(p Preview, info models.PlatformInfo, c Content) Preview {
	p.Layout = LayoutYouTubeVideo
	p.Header = Header{
		ProfileName:  info.ProfileName,
		ProfileImage: info.ProfileImage,
		TimeAgo:      info.TimeAgo,
	}
	p.Title, _, _ = strings.Cut(c.Caption, "\n")
	if p.Title == "" {
		p.Title = "Video Title"
	}
	p.ViewCount = "1.2K views"
	if c.MediaURL != "" {
		p.Media = &Media{URL: c.MediaURL, Aspect: AspectVideo, PlayOverlay: true}
	}
	p.Actions = []Action{}
	return p
}

func renderTwitter(p Preview, info models.PlatformInfo, c Content) Preview {
	p.Layout = LayoutTwitterPost
	p.Header = Header{
		DisplayName:  "Your Name",
		ProfileName:  info.ProfileName,
		ProfileImage: info.ProfileImage,
		TimeAgo:      info.TimeAgo,
	}
	if c.MediaURL != "" {
		p.Media = &Media{URL: c.MediaURL, Aspect: AspectRounded}
	}
	p.Actions = []Action{{Icon: "chat", Label: "Reply"}, {Icon: "repost", Label: "Repost"}, {Icon: "heart", Label: "Like"}}
	return p
}
