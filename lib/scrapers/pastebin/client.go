package pastebin

import (
	"context"
	"net/http/cookiejar"
	"net/url"
	"time"

	"pastebin-crawler/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const DefaultBaseUrl = "https://pastebin.com"

// the site rejects requests without a user agent, so a default is always set
const defaultUserAgent = "PastebinCrawler/1.0 (+https://pastebin.com/archive)"

const defaultTimeout = time.Second * 20
const defaultDelay = time.Second

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client

	delay time.Duration
	sleep func(ctx context.Context, d time.Duration) error
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	// overrides the default crawler user agent
	UserAgent string
	// pause between consecutive archive rows, defaults to one second.
	// a negative value disables the pause entirely.
	Delay time.Duration
	// per-request timeout, defaults to 20 seconds
	Timeout time.Duration
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	rawBaseUrl := opts.BaseUrl
	if rawBaseUrl == "" {
		rawBaseUrl = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(rawBaseUrl)
	if err != nil {
		return nil, err
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	delay := opts.Delay
	if delay == 0 {
		delay = defaultDelay
	}

	client := resty.New()
	client.SetBaseURL(baseUrl.String())
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", userAgent)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "scrapers/pastebin/http")

	c := &Client{
		BaseUrl: baseUrl,
		Http:    client,
		delay:   delay,
		sleep:   waitContext,
	}
	return c, nil
}

// waitContext blocks for d or until ctx is cancelled, whichever
// comes first.
func waitContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
