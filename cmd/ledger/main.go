package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"ledger/executor/parallel"
	"ledger/executor/serial"
	"ledger/executor/types"
)

func main() {
	app := &cli.App{
		Name:  "ledger",
		Usage: "execute a block of transfers against an in-memory ledger",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "scenario",
				Usage: "load a YAML scenario `FILE` instead of the built-in examples",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "worker pool size (0 selects the number of CPUs)",
			},
			&cli.IntFlag{
				Name:  "repeat",
				Value: 1,
				Usage: "execute each block `N` times and report divergence between runs",
			},
			&cli.BoolFlag{
				Name:  "serial",
				Usage: "run transactions one at a time in block order",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log dropped transactions",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := zerolog.InfoLevel
	if c.Bool("debug") {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	scenarios := builtinScenarios()
	if path := c.String("scenario"); path != "" {
		s, err := loadScenario(path)
		if err != nil {
			return err
		}
		scenarios = []scenario{*s}
	}

	var exec types.BlockExecutor
	if c.Bool("serial") {
		exec = serial.NewExecutor(serial.WithLogger(log))
	} else {
		exec = parallel.NewExecutor(c.Int("workers"), parallel.WithLogger(log))
	}

	for _, s := range scenarios {
		block, values := s.build()

		var first []types.AccountValue
		for i := 0; i < c.Int("repeat"); i++ {
			start := time.Now()
			final, err := exec.ExecuteBlock(block, values)
			if err != nil {
				return err
			}

			if i == 0 {
				first = final
				log.Info().
					Str("scenario", s.Name).
					Int("transactions", len(block.Transactions)).
					Dur("elapsed", time.Since(start)).
					Msg("block executed")
				for _, v := range final {
					fmt.Printf("%s: %d\n", v.Name, v.Balance)
				}
				continue
			}
			if !equalValues(first, final) {
				log.Warn().
					Str("scenario", s.Name).
					Int("run", i+1).
					Msg("re-execution diverged from first run")
			}
		}
	}
	return nil
}

func equalValues(a, b []types.AccountValue) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
