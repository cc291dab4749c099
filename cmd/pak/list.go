package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/quaketools/pak/pkg/pak"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "list archive contents",
		ArgsUsage: "<archive>",
		Action:    listAction,
	}
}

func listAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: pak list <archive>")
	}

	a, err := pak.Load(c.Args().Get(0))
	if err != nil {
		return err
	}
	slog.Debug("loaded archive", "entries", len(a.Entries))

	var total int64
	for _, e := range a.Entries {
		fmt.Printf(
			"%-56s %10s  @%d\n",
			e.Name, humanBytes(int64(len(e.Data))), e.Offset,
		)
		total += int64(len(e.Data))
	}
	fmt.Printf(
		"%d entries (%s)\n", len(a.Entries), humanBytes(total),
	)
	return nil
}
