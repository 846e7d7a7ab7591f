package main

import (
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"
	grove "github.com/yeqown/hashed-grove"
)

// grove-ctl is a command line tool to poke at a hashed-grove store built
// from a dataset file.
// Usage:
// $ grove-ctl [global flags] sub-command [args...]
// It has sub-commands:
// - list:     grove-ctl list [first_name]
// - find:     grove-ctl find first_name last_name number
// - del:      grove-ctl del first_name last_name number
// - del-name: grove-ctl del-name first_name last_name
//
// Global flags:
// - dataset: path to the dataset file, default is ./phonebook.csv

var store *grove.Store

func main() {
	app := newCliApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Printf("grove-ctl failed: %v\n", err)
	}
}

func newCliApp() *cli.App {
	app := cli.NewApp()
	app.Name = "grove-ctl"
	app.Usage = "hashed-grove demo tool"
	app.Version = "0.0.1"
	app.Commands = []*cli.Command{
		newListCommand(),
		newFindCommand(),
		newDelCommand(),
		newDelNameCommand(),
	}
	app.Before = func(c *cli.Context) error {
		var err error
		if store, err = grove.NewStore(grove.WithExpectedRecords(11)); err != nil {
			return err
		}

		n, err := store.LoadFile(c.String("dataset"))
		if err != nil {
			return err
		}
		fmt.Printf("loaded %d records\n", n)
		return nil
	}
	// global flags
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "dataset",
			Aliases: []string{"d"},
			Usage:   "path to the dataset file",
			Value:   "./phonebook.csv",
		},
	}

	return app
}

func newListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list records, optionally only those under the given first name",
		Action: func(c *cli.Context) error {
			records := store.Records()
			if first := c.Args().First(); first != "" {
				records = store.WithFirstName(first)
			}
			for r := range records {
				fmt.Println(r)
			}
			return nil
		},
	}
}

func newFindCommand() *cli.Command {
	return &cli.Command{
		Name:  "find",
		Usage: "find a record by first name, last name and number",
		Action: func(c *cli.Context) error {
			if c.NArg() != 3 {
				return fmt.Errorf("want 3 args, got %d", c.NArg())
			}
			r, err := store.Get(c.Args().Get(0), c.Args().Get(1), c.Args().Get(2))
			if err != nil {
				return err
			}
			fmt.Println(r)
			return nil
		},
	}
}

func newDelCommand() *cli.Command {
	return &cli.Command{
		Name:  "del",
		Usage: "delete a record by first name, last name and number",
		Action: func(c *cli.Context) error {
			if c.NArg() != 3 {
				return fmt.Errorf("want 3 args, got %d", c.NArg())
			}
			return store.Remove(c.Args().Get(0), c.Args().Get(1), c.Args().Get(2))
		},
	}
}

func newDelNameCommand() *cli.Command {
	return &cli.Command{
		Name:  "del-name",
		Usage: "delete every record under a first and last name",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("want 2 args, got %d", c.NArg())
			}
			removed := store.RemoveByName(c.Args().Get(0), c.Args().Get(1))
			fmt.Printf("removed %d records\n", removed)
			return nil
		},
	}
}
