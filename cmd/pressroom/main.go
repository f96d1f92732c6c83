package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/pressroomhq/pressroom-cli/internal/buildinfo"
	"github.com/pressroomhq/pressroom-cli/internal/cli"
	"github.com/pressroomhq/pressroom-cli/internal/config"
	"github.com/pressroomhq/pressroom-cli/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()
	log := logging.NewZerologLogger(zl)

	app := cli.NewApp(cfg, log)
	app.Run(ctx)
}
