package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/strelka-io/chatserver/config"
)

const (
	ServiceName      = "chatserver"
	ServiceNamespace = "strelka"
)

var (
	version        = "0.0.0"
	commit         = "hash"
	commitDate     = time.Now().String()
	branch         = "branch"
	buildTimestamp = ""
)

func Run() error {
	app := &cli.App{
		Name:  ServiceName,
		Usage: "Multi-user chat RPC server",
		Commands: []*cli.Command{
			serverCmd(),
		},
	}

	return app.Run(os.Args)
}

func serverCmd() *cli.Command {
	return &cli.Command{
		Name:    "server",
		Aliases: []string{"s"},
		Usage:   "Run the gRPC server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config_file",
				Usage: "Path to the configuration file",
			},
			&cli.StringFlag{
				Name:  "listen",
				Usage: "Listen address for the gRPC server",
			},
		},
		Action: func(c *cli.Context) error {
			flags := config.Flags()
			if c.IsSet("listen") {
				if err := flags.Set("listen_addr", c.String("listen")); err != nil {
					return err
				}
			}

			cfg, err := config.Load(c.String("config_file"), flags)
			if err != nil {
				return err
			}
			app := NewApp(cfg)

			if err := app.Start(c.Context); err != nil {
				return err
			}

			slog.Info("chatserver started",
				slog.String("version", version),
				slog.String("commit", commit),
				slog.String("branch", branch),
				slog.String("built", buildTimestamp),
			)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop

			slog.Info("Shutting down...")
			return app.Stop(context.Background())
		},
	}
}
