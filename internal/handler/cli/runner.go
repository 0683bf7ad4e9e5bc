package cli

import (
	"channel_uploads/internal/core/domain"
	"channel_uploads/internal/core/ports"
	"channel_uploads/internal/core/usecases"
	"context"
	"fmt"
	"io"
	"strings"
)

type Runner struct {
	uploads  usecases.UploadsUseCase
	log      ports.LoggerPort
	out      io.Writer
	style    styles
	channels []string
}

func NewRunner(uploads usecases.UploadsUseCase, logger ports.LoggerPort, out io.Writer, channels []string) *Runner {
	return &Runner{
		uploads:  uploads,
		log:      logger,
		out:      out,
		style:    newStyles(out),
		channels: channels,
	}
}

// Run processes the channels in order and prints a report for each one.
// A channel that cannot be resolved or listed is reported and skipped; an
// invalid channel url or a malformed api response stops the run.
func (r *Runner) Run(ctx context.Context) error {
	r.log.Info(fmt.Sprintf("Run started with %d channels", len(r.channels)))

	for _, channelURL := range r.channels {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.println("")
		r.println(r.style.banner.Render("Fetching videos from: " + channelURL))

		result, err := r.uploads.GetChannelUploads(ctx, channelURL)
		if err != nil {
			r.log.Error("Run aborted", err)
			return fmt.Errorf("error while processing %s: %w", channelURL, err)
		}

		r.printResult(result)
	}

	r.log.Info("Run finished")

	return nil
}

func (r *Runner) printResult(result domain.ChannelUploads) {
	switch result.Status {
	case domain.StatusResolveFailed:
		r.println(r.style.errorMsg.Render(fmt.Sprintf("Error fetching channel ID for %s: %v", result.URL, result.Err)))
		r.println(r.style.warning.Render("Could not find channel ID for " + result.URL))
	case domain.StatusChannelNotFound:
		r.println(r.style.warning.Render("Could not find channel ID for " + result.URL))
	case domain.StatusListFailed:
		r.println(r.style.errorMsg.Render(fmt.Sprintf("Error fetching videos for channel %s: %v", result.ChannelID, result.Err)))
	case domain.StatusNoVideos:
		r.println(r.style.warning.Render("No recent videos found for " + result.URL))
	default:
		for _, video := range result.Videos {
			r.printVideo(video)
		}
	}
}

func (r *Runner) printVideo(video domain.Video) {
	r.println("")
	r.println(r.style.label.Render("Title:") + " " + video.Title)
	r.println(r.style.label.Render("Published:") + " " + video.PublishedDisplay())
	r.println(r.style.label.Render("URL:") + " " + r.style.url.Render(video.URL()))
	r.println(r.style.label.Render("Channel:") + " " + video.ChannelTitle)
	if d := video.DurationDisplay(); d != "" {
		r.println(r.style.label.Render("Duration:") + " " + d)
	}
	r.println(r.style.separator.Render(strings.Repeat("-", separatorWidth)))
}

func (r *Runner) println(line string) {
	fmt.Fprintln(r.out, line)
}
