package usecases

import (
	"channel_uploads/internal/core/domain"
	"channel_uploads/internal/core/ports"
	"context"
)

const DefaultMaxResults int64 = 10

type uploadsUseCase struct {
	service       ports.YoutubePort
	log           ports.LoggerPort
	maxResults    int64
	withDurations bool
}

type UploadsUseCase interface {
	GetChannelUploads(ctx context.Context, channelURL string) (domain.ChannelUploads, error)
}

type Options struct {
	MaxResults    int64
	WithDurations bool
}

func NewUploadsUseCase(service ports.YoutubePort, logger ports.LoggerPort, opts Options) UploadsUseCase {
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}

	return &uploadsUseCase{
		service:       service,
		log:           logger,
		maxResults:    opts.MaxResults,
		withDurations: opts.WithDurations,
	}
}
