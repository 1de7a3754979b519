// Command chartkit inspects and restyles the axes of chart parts
// (ppt/charts/chartN.xml).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/wudi/chartkit/observability"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "chartkit: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "chartkit"
	app.Usage = "Inspect and restyle chart axes in Office Open XML chart parts"
	app.Metadata = map[string]interface{}{}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level (debug, info, warn, error)",
			EnvVars: []string{observability.LogLevelEnv},
		},
	}
	app.Before = func(c *cli.Context) error {
		c.App.Metadata["logger"] = observability.ConfigureLogging(c.App.ErrWriter, c.String("log-level"))
		return nil
	}
	app.Commands = []*cli.Command{
		cmdInspect,
		cmdApply,
		cmdScript,
		cmdFixture,
	}
	return app
}

func loggerFrom(c *cli.Context) observability.Logger {
	if l, ok := c.App.Metadata["logger"].(observability.Logger); ok {
		return l
	}
	return observability.NopLogger{}
}

func installSignals() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		signalChannel := make(chan os.Signal, 1)

		signal.Notify(
			signalChannel,
			syscall.SIGINT,
			syscall.SIGTERM,
		)
		select {
		case <-signalChannel:
		case <-ctx.Done():
		}
		cancel()
		signal.Reset()
	}()

	return ctx, cancel
}
