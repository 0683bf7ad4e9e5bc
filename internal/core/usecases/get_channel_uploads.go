package usecases

import (
	"channel_uploads/internal/core/domain"
	"context"
	"errors"
	"fmt"
)

// GetChannelUploads resolves the handle in channelURL and lists its newest
// videos. API failures and empty results are reported through the Status of
// the returned value; only an invalid URL or a malformed response is
// returned as an error.
func (uc *uploadsUseCase) GetChannelUploads(ctx context.Context, channelURL string) (domain.ChannelUploads, error) {
	uc.log.Info("Init Get Channel Uploads for " + channelURL)

	result := domain.ChannelUploads{URL: channelURL}

	handle, err := domain.ParseChannelHandle(channelURL)
	if err != nil {
		uc.log.Error("Failed to parse channel url", err)
		return result, err
	}
	result.Handle = handle

	channelID, err := uc.service.ResolveChannelID(ctx, handle)
	switch {
	case errors.Is(err, domain.ErrChannelNotFound):
		uc.log.Warning(fmt.Sprintf("No channel found for handle %s", handle))
		result.Status = domain.StatusChannelNotFound
		return result, nil
	case domain.IsAPIError(err):
		uc.log.Error("Failed to resolve channel id", err)
		result.Status = domain.StatusResolveFailed
		result.Err = err
		return result, nil
	case err != nil:
		uc.log.Error("Unexpected error while resolving channel id", err)
		return result, fmt.Errorf("error while resolving channel %s: %w", handle, err)
	}
	result.ChannelID = channelID

	videos, err := uc.service.ListRecentVideos(ctx, channelID, uc.maxResults)
	switch {
	case domain.IsAPIError(err):
		uc.log.Error("Failed to list channel videos", err)
		result.Status = domain.StatusListFailed
		result.Err = err
		return result, nil
	case err != nil:
		uc.log.Error("Unexpected error while listing channel videos", err)
		return result, fmt.Errorf("error while listing videos of channel %s: %w", channelID, err)
	}

	if len(videos) == 0 {
		uc.log.Warning(fmt.Sprintf("Channel %s has no videos", channelID))
		result.Status = domain.StatusNoVideos
		return result, nil
	}

	if uc.withDurations {
		uc.attachDurations(ctx, videos)
	}

	result.Status = domain.StatusOK
	result.Videos = videos

	uc.log.Info(fmt.Sprintf("Get Channel Uploads completed: %d videos", len(videos)))

	return result, nil
}

// attachDurations fills Video.Duration in place. A failed lookup leaves the
// durations unset.
func (uc *uploadsUseCase) attachDurations(ctx context.Context, videos []domain.Video) {
	ids := make([]string, len(videos))
	for i, v := range videos {
		ids[i] = v.ID
	}

	durations, err := uc.service.GetVideoDurations(ctx, ids)
	if err != nil {
		uc.log.Error("Failed to get video durations", err)
		return
	}

	for i := range videos {
		videos[i].Duration = durations[videos[i].ID]
	}
}
