package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"dispatch/cmd"
	"dispatch/internal/adapters/in/seed"

	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "dispatch",
		Usage: "dispatch food orders to restaurants",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "optional dotenv file"},
			&cli.StringFlag{Name: "seed", Usage: "seed file, overrides DISPATCH_SEED_FILE"},
			&cli.StringFlag{Name: "strategy", Usage: "default selection strategy, overrides DISPATCH_DEFAULT_STRATEGY"},
		},
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "onboard the seed restaurants and replay the scripted steps",
				Action: runDemo,
			},
			{
				Name:   "simulate",
				Usage:  "keep placing and completing seed orders on a schedule until interrupted",
				Action: runSimulation,
			},
			{
				Name:   "strategies",
				Usage:  "list the available selection strategies",
				Action: listStrategies,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func getConfig(c *cli.Context) (cmd.Config, error) {
	config, err := cmd.LoadConfig(c.String("env-file"))
	if err != nil {
		return cmd.Config{}, fmt.Errorf("load config: %w", err)
	}

	if c.IsSet("seed") {
		config.SeedFile = c.String("seed")
	}
	if c.IsSet("strategy") {
		config.DefaultStrategy = c.String("strategy")
	}
	return config, nil
}

func newApp(c *cli.Context) (*cmd.CompositionRoot, cmd.Config, error) {
	config, err := getConfig(c)
	if err != nil {
		return nil, cmd.Config{}, err
	}

	root, err := cmd.NewCompositionRoot(config, cmd.NewLogger(config, c.App.ErrWriter))
	if err != nil {
		return nil, cmd.Config{}, err
	}
	return root, config, nil
}

func runDemo(c *cli.Context) error {
	root, config, err := newApp(c)
	if err != nil {
		return err
	}

	file, err := seed.Load(config.SeedFile)
	if err != nil {
		return err
	}

	seeder := root.CreateSeeder(c.App.Writer)
	if err = seeder.LoadRestaurants(c.Context, file); err != nil {
		return err
	}

	failed, err := seeder.RunSteps(c.Context, file.Steps)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "\n%d step(s), %d failed\n", len(file.Steps), failed)
	return nil
}

func runSimulation(c *cli.Context) error {
	root, config, err := newApp(c)
	if err != nil {
		return err
	}

	file, err := seed.Load(config.SeedFile)
	if err != nil {
		return err
	}

	if err = root.CreateSeeder(io.Discard).LoadRestaurants(c.Context, file); err != nil {
		return err
	}

	feed, err := root.CreateOrderFeed(file)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := root.CreateJobManager(feed)
	if err = jobManager.StartAll(); err != nil {
		return err
	}

	<-ctx.Done()
	jobManager.StopAll()

	return root.CreateStatusPrinter(c.App.Writer).Print(context.WithoutCancel(ctx))
}

func listStrategies(c *cli.Context) error {
	root, _, err := newApp(c)
	if err != nil {
		return err
	}

	current := root.Strategies().Default().Name()
	for _, name := range root.Strategies().Names() {
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Fprintf(c.App.Writer, "%s %s\n", marker, name)
	}
	return nil
}
