// Command iso20022 validates and converts ISO 20022 and FedNow messages.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	_ "github.com/reoring/iso20022/catalog"
	"github.com/reoring/iso20022/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		code := cli.GetExitCode(err)
		if code == cli.ExitCommandError {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(code)
	}
}
