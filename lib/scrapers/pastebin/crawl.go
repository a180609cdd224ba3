package pastebin

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/codes"
)

type CrawlOptions struct {
	// maximum number of pastes to collect, 0 collects every listed paste
	Limit int
	// when true, the raw content of each paste is downloaded as well
	FetchContent bool
}

// Crawl walks the archive listing and assembles a Paste per row. A
// failure to fetch or parse the listing itself is fatal; a failure to
// download one paste's raw content is logged and leaves that Content
// nil without affecting the rest of the run.
func (c *Client) Crawl(ctx context.Context, opts CrawlOptions) ([]Paste, error) {
	ctx, span := tracer.Start(ctx, "client:Crawl")
	defer span.End()

	iter, err := c.IterArchive(ctx, ArchiveOptions{Limit: opts.Limit})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch archive listing")
		return nil, err
	}

	var pastes []Paste
	for {
		metadata, ok, err := iter.Next(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "archive iteration interrupted")
			return nil, err
		}
		if !ok {
			break
		}

		var content *string
		if opts.FetchContent {
			raw, err := c.FetchRawContent(ctx, metadata.PasteID)
			if err != nil {
				slog.WarnContext(
					ctx, "failed to download paste",
					"paste_id", metadata.PasteID,
					"err", err,
				)
			} else {
				content = &raw
			}
		}

		pastes = append(pastes, Paste{Metadata: metadata, Content: content})
	}

	return pastes, nil
}

// FetchRawContent downloads the raw body of one paste. Transport
// failures and non-success statuses both come back as errors.
func (c *Client) FetchRawContent(ctx context.Context, pasteId string) (string, error) {
	ctx, span := tracer.Start(ctx, "client:FetchRawContent")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get("/raw/" + pasteId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch raw paste")
		return "", err
	}
	if res.IsError() {
		err := fmt.Errorf("raw paste %q returned status %d", pasteId, res.StatusCode())
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	return res.String(), nil
}
