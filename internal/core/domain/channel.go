package domain

import (
	"fmt"
	"strings"
)

type ChannelHandle string

// ParseChannelHandle returns the text between the first '@' of channelURL
// and the next '/'.
func ParseChannelHandle(channelURL string) (ChannelHandle, error) {
	_, rest, found := strings.Cut(channelURL, "@")
	if !found {
		return "", fmt.Errorf("%w: %q has no @handle", ErrInvalidChannelURL, channelURL)
	}

	handle, _, _ := strings.Cut(rest, "/")
	if handle == "" {
		return "", fmt.Errorf("%w: %q has an empty handle", ErrInvalidChannelURL, channelURL)
	}

	return ChannelHandle(handle), nil
}

type Status int

const (
	StatusOK Status = iota
	StatusNoVideos
	StatusChannelNotFound
	StatusResolveFailed
	StatusListFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoVideos:
		return "no_videos"
	case StatusChannelNotFound:
		return "channel_not_found"
	case StatusResolveFailed:
		return "resolve_failed"
	case StatusListFailed:
		return "list_failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ChannelUploads is the outcome of processing one configured channel.
// Err is set only for StatusResolveFailed and StatusListFailed.
type ChannelUploads struct {
	URL       string
	Handle    ChannelHandle
	ChannelID string
	Status    Status
	Videos    []Video
	Err       error
}

// Resolved reports whether a channel id was found for the handle.
func (c ChannelUploads) Resolved() bool {
	return c.Status != StatusChannelNotFound && c.Status != StatusResolveFailed
}
