package commands

import (
	"log/slog"
	"os"
	"time"

	"pastebin-crawler/lib/configutil"
	"pastebin-crawler/lib/restyutil"
	"pastebin-crawler/lib/scrapers/pastebin"
	"pastebin-crawler/lib/serviceutil"
	"pastebin-crawler/lib/telemetry"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl   string `json:"base_url"`
	UserAgent string `json:"user_agent"`
}

var (
	crawlLimit       *int
	crawlDelay       *time.Duration
	crawlOutput      *string
	crawlSkipContent *bool
)

func init() {
	crawlLimit = crawlCmd.Flags().Int("limit", 10, "Maximum number of pastes to fetch (0 fetches every listed paste).")
	crawlDelay = crawlCmd.Flags().Duration("delay", time.Second, "Time to wait between HTTP requests.")
	crawlOutput = crawlCmd.Flags().String("output", "", "Optional path to a JSON file that will receive the crawler output.")
	crawlSkipContent = crawlCmd.Flags().Bool("skip-content", false, "Do not download the raw paste contents. Only metadata will be returned.")
	rootCmd.AddCommand(crawlCmd)
}

var crawlCmd = &cobra.Command{
	Use:   "crawl [--limit <n>] [--output <path/to/output.json>]",
	Short: "Crawls the most recent public pastes and emits them as JSON.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil && !os.IsNotExist(err) {
			serviceutil.Fatal("failed to read config", err)
		}

		client, err := pastebin.NewClient(ctx, pastebin.ClientOptions{
			BaseUrl:   cfg.BaseUrl,
			UserAgent: cfg.UserAgent,
			Delay:     *crawlDelay,
		})
		if err != nil {
			serviceutil.Fatal("failed to initialize pastebin client", err)
		}
		if verbosity >= 2 {
			client.SetDebugOutput(restyutil.NewFilesystemOutput(".dev/resty/pastebin"))
			telemetry.InstrumentPerfStats(ctx)
		}

		t1 := time.Now()
		pastes, err := client.Crawl(ctx, pastebin.CrawlOptions{
			Limit:        *crawlLimit,
			FetchContent: !*crawlSkipContent,
		})
		if err != nil {
			serviceutil.Fatal("network error while crawling pastebin", err)
		}
		slog.Info(
			"crawl finished",
			"pastes", len(pastes),
			"seconds", time.Since(t1).Seconds(),
		)

		if verbosity >= 1 {
			printSummary(pastes)
		}

		if *crawlOutput != "" {
			file, err := os.Create(*crawlOutput)
			if err != nil {
				serviceutil.Fatal("failed to create output file", err)
			}
			defer file.Close()

			err = pastebin.EncodeJSON(file, pastes)
			if err != nil {
				serviceutil.Fatal("failed to write output file", err)
			}
			slog.Info("wrote crawl results", "pastes", len(pastes), "path", *crawlOutput)
			return
		}

		err = pastebin.EncodeJSON(os.Stdout, pastes)
		if err != nil {
			serviceutil.Fatal("failed to write crawl results", err)
		}
	},
}

func printSummary(pastes []pastebin.Paste) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stderr)

	t.AppendHeader(table.Row{"Paste", "Title", "Author", "Added", "Syntax", "Content"})
	for _, p := range pastes {
		contentState := "skipped"
		if p.Content != nil {
			contentState = "fetched"
		}
		t.AppendRow(table.Row{
			p.Metadata.PasteID,
			p.Metadata.Title,
			orEmpty(p.Metadata.Author),
			orEmpty(p.Metadata.Added),
			orEmpty(p.Metadata.Syntax),
			contentState,
		})
	}
	t.Render()
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
