package provider

import (
	"channel_uploads/internal/core/domain"
	"channel_uploads/internal/core/ports"
	"context"
	"errors"
	"fmt"
	"github.com/sosodev/duration"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
	"html"
	"time"
)

const (
	searchPart     = "snippet"
	typeChannel    = "channel"
	typeVideo      = "video"
	orderDate      = "date"
	maxVideosBatch = 50
)

type youtubeProvider struct {
	log     ports.LoggerPort
	service *youtube.Service
}

// NewYoutubeProvider builds the API client once. Extra options are appended
// after the API key, so tests can redirect the endpoint.
func NewYoutubeProvider(ctx context.Context, apiKey string, logger ports.LoggerPort, opts ...option.ClientOption) (ports.YoutubePort, error) {
	clientOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)

	service, err := youtube.NewService(ctx, clientOpts...)
	if err != nil {
		logger.Error("error while create youtube service", err)
		return nil, fmt.Errorf("error while create youtube service: %w", err)
	}

	logger.Info("Create youtube service completed")

	return &youtubeProvider{
		log:     logger,
		service: service,
	}, nil
}

func (s *youtubeProvider) ResolveChannelID(ctx context.Context, handle domain.ChannelHandle) (string, error) {
	if handle == "" {
		return "", fmt.Errorf("%w: empty handle", domain.ErrInvalidChannelURL)
	}

	call := s.service.Search.List([]string{searchPart}).
		Q(string(handle)).
		Type(typeChannel).
		MaxResults(1).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return "", wrapAPIError("search channel", err)
	}

	if len(response.Items) == 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrChannelNotFound, handle)
	}

	item := response.Items[0]
	if item.Id != nil && item.Id.ChannelId != "" {
		return item.Id.ChannelId, nil
	}
	if item.Snippet != nil && item.Snippet.ChannelId != "" {
		return item.Snippet.ChannelId, nil
	}

	return "", fmt.Errorf("%w: channel search result without channel id", domain.ErrMalformedResponse)
}

func (s *youtubeProvider) ListRecentVideos(ctx context.Context, channelID string, maxResults int64) ([]domain.Video, error) {
	call := s.service.Search.List([]string{searchPart}).
		ChannelId(channelID).
		Order(orderDate).
		Type(typeVideo).
		MaxResults(maxResults).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, wrapAPIError("search videos", err)
	}

	videos := make([]domain.Video, 0, len(response.Items))
	for i, item := range response.Items {
		video, err := toVideo(item)
		if err != nil {
			return nil, fmt.Errorf("item %d of channel %s: %w", i, channelID, err)
		}
		videos = append(videos, video)
	}

	s.log.Info(fmt.Sprintf("Listed %d videos for channel %s", len(videos), channelID))

	return videos, nil
}

// GetVideoDurations looks up contentDetails.duration for each id. Ids the
// API does not return are absent from the map.
func (s *youtubeProvider) GetVideoDurations(ctx context.Context, videoIDs []string) (map[string]time.Duration, error) {
	durations := make(map[string]time.Duration, len(videoIDs))

	for start := 0; start < len(videoIDs); start += maxVideosBatch {
		end := min(start+maxVideosBatch, len(videoIDs))

		call := s.service.Videos.List([]string{"contentDetails"}).
			Id(videoIDs[start:end]...).
			Context(ctx)

		response, err := call.Do()
		if err != nil {
			return nil, wrapAPIError("list videos", err)
		}

		for _, item := range response.Items {
			if item.ContentDetails == nil || item.ContentDetails.Duration == "" {
				continue
			}
			parsed, err := duration.Parse(item.ContentDetails.Duration)
			if err != nil {
				s.log.Warning(fmt.Sprintf("Invalid duration %q for video %s", item.ContentDetails.Duration, item.Id))
				continue
			}
			durations[item.Id] = parsed.ToTimeDuration()
		}
	}

	return durations, nil
}

func toVideo(item *youtube.SearchResult) (domain.Video, error) {
	if item == nil || item.Id == nil || item.Id.VideoId == "" {
		return domain.Video{}, fmt.Errorf("%w: video search result without video id", domain.ErrMalformedResponse)
	}
	if item.Snippet == nil {
		return domain.Video{}, fmt.Errorf("%w: video %s without snippet", domain.ErrMalformedResponse, item.Id.VideoId)
	}

	published, err := domain.ParsePublished(item.Snippet.PublishedAt)
	if err != nil {
		return domain.Video{}, err
	}

	return domain.Video{
		ID:           item.Id.VideoId,
		Title:        html.UnescapeString(item.Snippet.Title),
		ChannelTitle: html.UnescapeString(item.Snippet.ChannelTitle),
		PublishedAt:  published,
	}, nil
}

func wrapAPIError(operation string, err error) error {
	apiErr := &domain.APIError{Operation: operation, Err: err}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		apiErr.StatusCode = gErr.Code
	}

	return apiErr
}
