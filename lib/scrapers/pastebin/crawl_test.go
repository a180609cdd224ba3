package pastebin

import (
	"context"
	"net/http"
	"testing"

	"pastebin-crawler/lib/testutil"

	"github.com/stretchr/testify/require"
)

var rawFixture = map[string]string{
	"abc12345": "127.0.0.1 - - [10/Oct/2000] \"GET /apache_pb.gif\"",
	"def67890": "hello world",
	"ghi13579": "eggs\nmilk\nbread",
}

func TestCrawl(t *testing.T) {
	client := setupArchiveClient(
		t,
		testutil.SiteParams{ArchiveHTML: archiveFixture, RawPastes: rawFixture},
		ClientOptions{Delay: -1},
	)

	pastes, err := client.Crawl(context.Background(), CrawlOptions{FetchContent: true})
	require.NoError(t, err)
	require.Len(t, pastes, 3)

	for _, p := range pastes {
		require.NotNil(t, p.Content, "content missing for %s", p.Metadata.PasteID)
		require.Equal(t, rawFixture[p.Metadata.PasteID], *p.Content)
	}
}

func TestCrawlSkipContent(t *testing.T) {
	client := setupArchiveClient(
		t,
		testutil.SiteParams{ArchiveHTML: archiveFixture, RawPastes: rawFixture},
		ClientOptions{Delay: -1},
	)

	pastes, err := client.Crawl(context.Background(), CrawlOptions{FetchContent: false})
	require.NoError(t, err)
	require.Len(t, pastes, 3)

	for _, p := range pastes {
		require.Nil(t, p.Content)
	}
}

func TestCrawlLimit(t *testing.T) {
	client := setupArchiveClient(
		t,
		testutil.SiteParams{ArchiveHTML: archiveFixture, RawPastes: rawFixture},
		ClientOptions{Delay: -1},
	)

	pastes, err := client.Crawl(context.Background(), CrawlOptions{Limit: 1, FetchContent: true})
	require.NoError(t, err)
	require.Len(t, pastes, 1)
	require.Equal(t, "abc12345", pastes[0].Metadata.PasteID)
}

func TestCrawlPartialContentFailure(t *testing.T) {
	client := setupArchiveClient(
		t,
		testutil.SiteParams{
			ArchiveHTML:  archiveFixture,
			RawPastes:    rawFixture,
			BrokenPastes: map[string]int{"def67890": http.StatusInternalServerError},
		},
		ClientOptions{Delay: -1},
	)

	pastes, err := client.Crawl(context.Background(), CrawlOptions{FetchContent: true})
	require.NoError(t, err)
	require.Len(t, pastes, 3)

	require.NotNil(t, pastes[0].Content)
	require.Nil(t, pastes[1].Content)
	require.NotNil(t, pastes[2].Content)
}

func TestFetchRawContentStatusError(t *testing.T) {
	client := setupArchiveClient(
		t,
		testutil.SiteParams{RawPastes: rawFixture},
		ClientOptions{Delay: -1},
	)

	_, err := client.FetchRawContent(context.Background(), "does-not-exist")
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}
