package pastebin

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"pastebin-crawler/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

// ErrArchiveTableMissing is returned when the archive page renders
// without the listing table, which usually means the markup changed or
// an interstitial page was served instead.
var ErrArchiveTableMissing = fmt.Errorf("unable to locate the archive table on the page")

type ArchiveOptions struct {
	// maximum number of rows to yield, 0 yields every listed row
	Limit int
}

// ArchiveIterator walks the rows of a fetched archive page lazily and
// in document order. It is finite and cannot be restarted; fetch a new
// one with IterArchive to walk the listing again.
type ArchiveIterator struct {
	client     *Client
	archiveUrl *url.URL
	rows       *goquery.Selection

	limit   int
	index   int
	yielded int
}

// IterArchive fetches the archive page and returns an iterator over its
// listing. The fetch itself happens here, row extraction is deferred to
// Next.
func (c *Client) IterArchive(ctx context.Context, opts ArchiveOptions) (*ArchiveIterator, error) {
	ctx, span := tracer.Start(ctx, "client:IterArchive")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get("/archive")
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch archive page")
		return nil, err
	}
	if res.IsError() {
		err := fmt.Errorf("archive page returned status %d", res.StatusCode())
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse archive page html")
		return nil, err
	}

	table := doc.Find("table.maintable")
	if table.Length() == 0 {
		span.SetStatus(codes.Error, ErrArchiveTableMissing.Error())
		return nil, ErrArchiveTableMissing
	}

	return &ArchiveIterator{
		client:     c,
		archiveUrl: c.BaseUrl.JoinPath("archive"),
		rows:       table.Find("tr"),
		limit:      opts.Limit,
	}, nil
}

// Next returns the next listed paste, reporting false once the table is
// exhausted or the configured limit was reached. The inter-row pause is
// served at the start of every call after the first yield, except once
// the limit cuts iteration off, so a crawl of L rows pauses L-1 times.
// Cancelling ctx during the pause ends iteration with the context error.
func (it *ArchiveIterator) Next(ctx context.Context) (PasteMetadata, bool, error) {
	if it.limit > 0 && it.yielded >= it.limit {
		return PasteMetadata{}, false, nil
	}

	if it.yielded > 0 && it.client.delay > 0 {
		err := it.client.sleep(ctx, it.client.delay)
		if err != nil {
			return PasteMetadata{}, false, err
		}
	}

	for it.index < it.rows.Length() {
		row := it.rows.Eq(it.index)
		it.index++

		metadata, ok := it.parseRow(row)
		if !ok {
			continue
		}

		slog.DebugContext(ctx, "discovered paste", "paste_id", metadata.PasteID)
		it.yielded++
		return metadata, true, nil
	}

	return PasteMetadata{}, false, nil
}

// parseRow extracts metadata out of one <tr>. Header rows, rows without
// cells and rows whose first cell has no link are skipped.
func (it *ArchiveIterator) parseRow(row *goquery.Selection) (PasteMetadata, bool) {
	if row.Find("th").Length() > 0 {
		return PasteMetadata{}, false
	}
	cells := row.Find("td")
	if cells.Length() == 0 {
		return PasteMetadata{}, false
	}

	anchor, ok := htmlutil.FirstAnchor(cells.Eq(0))
	if !ok || anchor.Href == "" {
		return PasteMetadata{}, false
	}

	ref, err := url.Parse(anchor.Href)
	if err != nil {
		return PasteMetadata{}, false
	}

	pasteId := strings.TrimLeft(anchor.Href, "/")
	title := anchor.Name
	if title == "" {
		title = pasteId
	}

	return PasteMetadata{
		PasteID: pasteId,
		Title:   title,
		URL:     it.archiveUrl.ResolveReference(ref).String(),
		Author:  cellText(cells, 1),
		Added:   cellText(cells, 2),
		Syntax:  cellText(cells, 3),
	}, true
}

// cellText returns the cleaned text of cells[index], or nil if the cell
// is missing or empty after cleanup.
func cellText(cells *goquery.Selection, index int) *string {
	if index >= cells.Length() {
		return nil
	}
	text := htmlutil.CleanText(cells.Eq(index).Text())
	if text == "" {
		return nil
	}
	return &text
}
