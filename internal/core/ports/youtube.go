package ports

import (
	"channel_uploads/internal/core/domain"
	"context"
	"time"
)

type YoutubePort interface {
	ResolveChannelID(ctx context.Context, handle domain.ChannelHandle) (string, error)
	ListRecentVideos(ctx context.Context, channelID string, maxResults int64) ([]domain.Video, error)
	GetVideoDurations(ctx context.Context, videoIDs []string) (map[string]time.Duration, error)
}
