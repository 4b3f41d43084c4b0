// Package main is the cmsctl entrypoint: one-shot queries against the CMS
// API printed as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/samvad-hq/samvad-cms-reader/internal/app"
	"github.com/samvad-hq/samvad-cms-reader/internal/config"
	"github.com/samvad-hq/samvad-cms-reader/internal/logger"
	"go.uber.org/zap"
)

var opts struct {
	Articles   ArticlesCmd   `command:"articles" description:"list one page of articles"`
	Article    ArticleCmd    `command:"article" description:"fetch a single article by slug"`
	Categories CategoriesCmd `command:"categories" description:"list categories"`
	Category   CategoryCmd   `command:"category" description:"fetch a single category by slug"`
	Image      ImageCmd      `command:"image" description:"print the featured image of an article"`
	Index      IndexCmd      `command:"index" description:"fetch the front page articles and all categories"`

	Debug bool `long:"dbg" env:"DEBUG" description:"log requests to stderr"`
}

func main() {
	p := flags.NewParser(&opts, flags.Default)
	p.CommandHandler = func(cmd flags.Commander, args []string) error {
		if err := setup(); err != nil {
			fmt.Fprintf(os.Stderr, "cmsctl: %v\n", err)
			os.Exit(1)
		}
		defer logger.Close()

		if err := cmd.Execute(args); err != nil {
			fmt.Fprintf(os.Stderr, "cmsctl: %v\n", err)
			os.Exit(1)
		}
		return nil
	}

	if _, err := p.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

// setup loads config and installs the shared CMS client.
func setup() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var log logger.Logger = logger.NopLogger{}
	if opts.Debug {
		zl, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		log = logger.NewZap(zl)
	}

	client, err := app.NewCMSClient(cfg, log)
	if err != nil {
		return err
	}
	shared = &env{client: client, out: os.Stdout}
	return nil
}
