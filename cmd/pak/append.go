package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/quaketools/pak/pkg/pak"
)

func appendCmd() *cli.Command {
	return &cli.Command{
		Name:      "append",
		Usage:     "add a file to an archive",
		ArgsUsage: "<archive> <file> [name]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "create",
				Usage: "create the archive if it does not exist",
			},
		},
		Action: appendAction,
	}
}

func appendAction(c *cli.Context) error {
	if c.NArg() < 2 || c.NArg() > 3 {
		return fmt.Errorf("usage: pak append <archive> <file> [name]")
	}
	archivePath := c.Args().Get(0)

	a, err := pak.Load(archivePath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || !c.Bool("create") {
			return err
		}
		slog.Debug("creating new archive", "path", archivePath)
		a = pak.New()
	}

	name := c.Args().Get(2)
	if err := a.AppendFile(c.Args().Get(1), name); err != nil {
		return err
	}
	if err := a.Save(archivePath); err != nil {
		return err
	}

	added := a.Entries[len(a.Entries)-1]
	fmt.Printf(
		"Added %s (%s), %d entries total\n",
		added.Name, humanBytes(int64(len(added.Data))), len(a.Entries),
	)
	return nil
}
