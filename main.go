package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v2"

	"papershift/config"
	"papershift/credential"
	"papershift/papershift"
	"papershift/session"
	"papershift/view"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	app := &cli.App{
		Name:   "papershift",
		Usage:  "Papershift working sessions and overtime",
		Writer: out,
		Commands: []*cli.Command{
			reportCommand,
			viewCommand,
			todayCommand,
			loginCommand,
		},
	}
	return app.Run(args)
}

var reportCommand = &cli.Command{
	Name:      "report",
	Usage:     "print worked time and overtime per day of a month",
	ArgsUsage: "[YYYY-MM]",
	Action: func(c *cli.Context) error {
		return withInjector(func(injector do.Injector) error {
			cfg := do.MustInvoke[*config.Config](injector)
			now := time.Now()
			r, err := papershift.MonthRange(c.Args().First(), now)
			if err != nil {
				return err
			}
			report, _, err := buildReport(c.Context, injector, r, now)
			if err != nil {
				return err
			}
			return view.NewTableViewer(c.App.Writer, cfg.Color).Do(r.Title(), report)
		})
	},
}

var viewCommand = &cli.Command{
	Name:      "view",
	Usage:     "browse a month in the terminal",
	ArgsUsage: "[YYYY-MM]",
	Action: func(c *cli.Context) error {
		return withInjector(func(injector do.Injector) error {
			cfg := do.MustInvoke[*config.Config](injector)
			now := time.Now()
			r, err := papershift.MonthRange(c.Args().First(), now)
			if err != nil {
				return err
			}
			report, _, err := buildReport(c.Context, injector, r, now)
			if err != nil {
				return err
			}
			logger, err := do.Invoke[*slog.Logger](injector)
			if err != nil {
				return err
			}
			return view.NewTUI(cfg.Color, logger).Do(r.Title(), report)
		})
	},
}

var todayCommand = &cli.Command{
	Name:  "today",
	Usage: "summarise today",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "short", Aliases: []string{"s"}, Usage: "print start, worked, breaks and overtime on one line"},
	},
	Action: func(c *cli.Context) error {
		return withInjector(func(injector do.Injector) error {
			cfg := do.MustInvoke[*config.Config](injector)
			now := time.Now()
			_, days, err := buildReport(c.Context, injector, papershift.DayRange(now), now)
			if err != nil {
				return err
			}
			summary, ok := session.Today(days, now)
			w := view.NewLineWriter(c.App.Writer, cfg.Color)
			if c.Bool("short") {
				return w.Short(summary, ok)
			}
			return w.Sentence(summary, ok)
		})
	},
}

var loginCommand = &cli.Command{
	Name:  "login",
	Usage: "store the user id and api token",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "user", Required: true, Usage: "papershift user id"},
		&cli.StringFlag{Name: "token", Required: true, Usage: "papershift api token"},
	},
	Action: func(c *cli.Context) error {
		return withInjector(func(injector do.Injector) error {
			store := do.MustInvoke[credential.Store](injector)
			if err := store.Save(credential.Credentials{
				UserID:   c.String("user"),
				APIToken: c.String("token"),
			}); err != nil {
				return err
			}
			_, err := fmt.Fprintln(c.App.Writer, "credentials saved")
			return err
		})
	},
}

func withInjector(fn func(injector do.Injector) error) error {
	injector, err := setupDI()
	if err != nil {
		return err
	}
	defer injector.Shutdown()
	return fn(injector)
}
