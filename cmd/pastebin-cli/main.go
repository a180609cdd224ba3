package main

import (
	"context"

	"pastebin-crawler/cmd/pastebin-cli/commands"
	"pastebin-crawler/lib/serviceutil"
	"pastebin-crawler/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "pastebin-cli")
	commands.ExecuteContext(serviceutil.SignalContext())
}
