package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func setupApp() *cli.App {
	app := cli.NewApp()
	app.Name = "xtransfer"
	app.Usage = "cross chain asset transfer tool"
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Flags = []cli.Flag{
		ConfigPathFlag,
		LogLevelFlag,
	}
	app.Commands = []cli.Command{
		assetIDCommand,
		locationCommand,
		messageCommand,
		transferCommand,
		journalCommand,
	}
	return app
}

func main() {
	if err := setupApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(ctx *cli.Context, level logrus.Level) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(ctx.App.ErrWriter)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(level)
	if name := ctx.GlobalString(GetFlagName(LogLevelFlag)); name != "" {
		lvl, err := logrus.ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		log.SetLevel(lvl)
	}
	return log, nil
}
