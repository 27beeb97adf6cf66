package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/global-container-format/gcfpack"
	"github.com/urfave/cli/v2"
)

const defaultDescription = "meta.json"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return logger
}

func main() {
	app := cli.NewApp()

	app.Name = "gcfpack"
	app.Usage = "GCF container packing utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "create",
			Usage:       "Create a GCF file from a JSON description",
			Description: "Validates the description and packs every referenced data file into a single GCF container.",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "description",
					Aliases:  []string{"i"},
					Usage:    "JSON description file",
					Required: true,
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output GCF file",
				},
				&cli.BoolFlag{
					Name:    "dry-run",
					Aliases: []string{"n"},
					Usage:   "validate the description without creating a GCF file",
				},
			},
			Action: func(c *cli.Context) error {
				desc, err := gcfpack.LoadDescriptionFile(c.String("description"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := gcfpack.Validate(desc); err != nil {
					return cli.Exit(err, 1)
				}

				if c.Bool("dry-run") {
					fmt.Println("GCF description is valid.")
					return nil
				}

				output := c.String("output")
				if output == "" {
					cli.ShowCommandHelpAndExit(c, "create", 1)
				}

				p := gcfpack.New(newLogger(c))
				if err := p.WriteContainer(desc, output); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "init",
			Usage:       "Create an example GCF description file",
			Description: "Writes a sample description with one blob and one texture resource to seed manual authoring.",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   defaultDescription,
					Usage:   "output file name",
				},
			},
			Action: func(c *cli.Context) error {
				f, err := os.Create(c.String("output"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer f.Close()

				if err := gcfpack.StoreDescription(f, gcfpack.SampleDescription()); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
