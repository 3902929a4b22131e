// Command sketchsolve is a thin CLI collaborator around the solver
// core: it reads a sketch JSON file, runs the propagation solver, and
// writes the solution plus diagnostics. The core itself defines no file
// formats, flags, or logging; this binary is where those concerns live.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/kestrelcad/sketchsolve/constraint"
	"github.com/kestrelcad/sketchsolve/geom"
	"github.com/kestrelcad/sketchsolve/internal/applog"
	"github.com/kestrelcad/sketchsolve/internal/config"
	"github.com/kestrelcad/sketchsolve/sketch"
	"github.com/kestrelcad/sketchsolve/solve"
)

func main() {
	cmd := &cli.Command{
		Name:        "sketchsolve",
		Usage:       "Solve 2-D geometric constraint sketches",
		HideVersion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to an optional sketchsolve.toml settings file",
				Value: "sketchsolve.toml",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn, or error",
			},
			&cli.StringFlag{
				Name:  "log-dir",
				Usage: "directory for the rotating diagnostic log",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "json or table",
			},
		},
		Commands: []*cli.Command{
			solveCommand(),
			validateCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return cfg, err
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v := cmd.String("log-dir"); v != "" {
		cfg.LogDir = v
	}
	if v := cmd.String("format"); v != "" {
		cfg.OutputFormat = v
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadSketch(path string) (sketch.Sketch, error) {
	f, err := os.Open(path)
	if err != nil {
		return sketch.Sketch{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return sketch.Load(f)
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "Run the propagation solver over a sketch file and print the solution",
		UsageText: "sketchsolve solve <sketch.json>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("solve: expected exactly one sketch file argument")
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			geom.SetEpsilon(cfg.Epsilon)

			logger := applog.New(cfg.LogLevel, cfg.LogDir)

			path := cmd.Args().First()
			sk, err := loadSketch(path)
			if err != nil {
				return err
			}
			constraints, err := sk.ToConstraints()
			if err != nil {
				return err
			}

			initial := sk.PointsMap()
			solution, solveLog := solve.Solve(initial, constraints)

			for _, step := range solveLog.Steps {
				logger.Step(string(step.Variable), step.Freedom, step.Intersected.String(), step.Chosen.String())
			}
			arbitraryIDs := make([]string, len(solveLog.Arbitrary))
			for i, id := range solveLog.Arbitrary {
				arbitraryIDs[i] = string(id)
			}
			logger.ArbitraryFallback(arbitraryIDs)

			order := make([]constraint.PointID, len(sk.Points))
			for i, p := range sk.Points {
				order[i] = p.ID
			}
			result := sketch.NewResult(order, solution, solveLog)

			if cfg.OutputFormat == "table" {
				fmt.Println(solveLog.String())
				return nil
			}
			return sketch.SaveResult(os.Stdout, result)
		},
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Report constraint dependency errors in a sketch file without solving it",
		UsageText: "sketchsolve validate <sketch.json>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("validate: expected exactly one sketch file argument")
			}
			sk, err := loadSketch(cmd.Args().First())
			if err != nil {
				return err
			}
			constraints, err := sk.ToConstraints()
			if err != nil {
				return err
			}

			known := make(map[constraint.PointID]bool, len(sk.Points))
			for _, p := range sk.Points {
				known[p.ID] = true
			}

			var problems []string
			for i, c := range constraints {
				for _, dep := range c.Dependencies() {
					if !known[dep] {
						problems = append(problems, fmt.Sprintf("constraint %d (%s): unknown point id %q", i, c.Kind(), dep))
					}
				}
			}

			if len(problems) == 0 {
				fmt.Println("ok: every constraint dependency is a declared point")
				return nil
			}
			for _, p := range problems {
				fmt.Println(p)
			}
			return fmt.Errorf("validate: %d problem(s) found", len(problems))
		},
	}
}
