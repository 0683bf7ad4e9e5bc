package domain

import (
	"fmt"
	"time"
)

const (
	watchURLPrefix = "https://www.youtube.com/watch?v="
	displayLayout  = "2006-01-02 15:04:05"
)

type Video struct {
	ID           string
	Title        string
	ChannelTitle string
	PublishedAt  time.Time
	Duration     time.Duration
}

// URL is the public watch page of the video.
func (v Video) URL() string {
	return watchURLPrefix + v.ID
}

func (v Video) PublishedDisplay() string {
	return FormatPublished(v.PublishedAt)
}

// FormatPublished renders t in UTC as YYYY-MM-DD HH:MM:SS.
func FormatPublished(t time.Time) string {
	return t.UTC().Format(displayLayout)
}

// ParsePublished parses the RFC 3339 timestamp sent by the API.
func ParsePublished(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: publishedAt %q: %v", ErrMalformedResponse, raw, err)
	}
	return t.UTC(), nil
}

// DurationDisplay formats d as H:MM:SS or M:SS. Zero means unknown.
func (v Video) DurationDisplay() string {
	if v.Duration <= 0 {
		return ""
	}
	total := int(v.Duration.Round(time.Second).Seconds())
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
