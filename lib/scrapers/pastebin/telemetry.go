package pastebin

import (
	"pastebin-crawler/lib/restyutil"
	"pastebin-crawler/lib/telemetry"
)

var tracer = telemetry.Tracer("pastebin-crawler.lib.scrapers.pastebin")

// SetDebugOutput makes the client dump every HTTP request/response
// transcript it exchanges to the given output.
func (c *Client) SetDebugOutput(out restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.Http, out)
}
