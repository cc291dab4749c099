package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/quaketools/pak/pkg/pak"
)

func removeCmd() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "remove the first entry with the given name",
		ArgsUsage: "<archive> <name>",
		Action:    removeAction,
	}
}

func removeAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: pak remove <archive> <name>")
	}
	archivePath := c.Args().Get(0)

	a, err := pak.Load(archivePath)
	if err != nil {
		return err
	}
	if err := a.Remove(c.Args().Get(1)); err != nil {
		return err
	}
	if err := a.Save(archivePath); err != nil {
		return err
	}
	fmt.Printf(
		"Removed %s, %d entries remain\n",
		c.Args().Get(1), len(a.Entries),
	)
	return nil
}
