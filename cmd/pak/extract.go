package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/quaketools/pak/pkg/pak"
)

func extractCmd() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "extract one entry, or every entry",
		ArgsUsage: "<archive> [name]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Value: ".",
				Usage: "destination directory",
			},
			&cli.BoolFlag{
				Name:  "flat",
				Usage: "ignore entry paths, write base names only",
			},
		},
		Action: extractAction,
	}
}

func extractAction(c *cli.Context) error {
	if c.NArg() < 1 || c.NArg() > 2 {
		return fmt.Errorf("usage: pak extract <archive> [name]")
	}

	a, err := pak.Load(c.Args().Get(0))
	if err != nil {
		return err
	}

	var (
		out    = c.String("out")
		nested = !c.Bool("flat")
	)

	if c.NArg() == 2 {
		e, err := a.Lookup(c.Args().Get(1))
		if err != nil {
			return err
		}
		target, err := e.Extract(out, nested)
		if err != nil {
			return err
		}
		fmt.Printf(
			"Extracted %s (%s)\n",
			target, humanBytes(int64(len(e.Data))),
		)
		return nil
	}

	slog.Debug("extracting all entries",
		"count", len(a.Entries),
		"out", out,
		"nested", nested,
	)
	count, err := a.ExtractAll(out, nested)
	if err != nil {
		return err
	}
	fmt.Printf("Extracted %d entries to %s\n", count, out)
	return nil
}
