package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/hamster"
	"github.com/bodgit/hamster/dither"
	"github.com/urfave/cli/v2"
)

const defaultDB = "hamster.db"

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

func options(c *cli.Context) hamster.Options {
	return hamster.Options{
		Dither:                  c.String("dither"),
		ForcePaletteFirstColumn: c.Bool("force-palette-first-column"),
		Width:                   c.Int("width"),
		Height:                  c.Int("height"),
		Contrast:                float32(c.Float64("contrast")),
		Saturation:              float32(c.Float64("saturation")),
		Gamma:                   float32(c.Float64("gamma")),
		Format:                  c.String("format"),
		Workers:                 c.Int("workers"),
	}
}

func openDB(c *cli.Context) (*hamster.CacheDB, error) {
	if c.Bool("no-cache") {
		return nil, nil
	}
	return hamster.NewCacheDB(c.String("db"))
}

// withConverter sets up a converter from the global flags, runs f and tidies
// up afterwards
func withConverter(c *cli.Context, f func(*hamster.Converter) error) error {
	db, err := openDB(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if db != nil {
		defer db.Close()
	}

	h, err := hamster.New(db, newLogger(c), options(c))
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := f(h); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "hamster"
	app.Usage = "Amiga HAM6 image conversion utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"HAMSTER_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to conversion cache database",
		},
		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: "don't use the conversion cache",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.StringFlag{
			Name:    "dither",
			Aliases: []string{"d"},
			Value:   "none",
			Usage:   fmt.Sprintf("dither filter (%s)", strings.Join(dither.Names(), ", ")),
		},
		&cli.BoolFlag{
			Name:  "force-palette-first-column",
			Usage: "always use the palette for the first pixel of each row",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "resize to fit this width, requires --height",
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "resize to fit this height, requires --width",
		},
		&cli.Float64Flag{
			Name:  "contrast",
			Usage: "adjust contrast by percentage, -100 to 100",
		},
		&cli.Float64Flag{
			Name:  "saturation",
			Usage: "adjust saturation by percentage, -100 to 500",
		},
		&cli.Float64Flag{
			Name:  "gamma",
			Usage: "apply gamma correction",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert an image to HAM6 and back",
			ArgsUsage: "INPUT OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				return withConverter(c, func(h *hamster.Converter) error {
					return h.ConvertFile(c.Args().Get(0), c.Args().Get(1))
				})
			},
		},
		{
			Name:        "scan",
			Usage:       "Convert every image in a directory",
			Description: "Images are written to the same relative path under OUTPUT",
			ArgsUsage:   "INPUT OUTPUT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: "png",
					Usage: "output format (png, gif, bmp, tiff)",
				},
				&cli.IntFlag{
					Name:    "workers",
					EnvVars: []string{"HAMSTER_WORKERS"},
					Usage:   "number of concurrent conversions, 0 for one per CPU",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				return withConverter(c, func(h *hamster.Converter) error {
					return h.Scan(context.Background(), c.Args().Get(0), c.Args().Get(1))
				})
			},
		},
		{
			Name:      "dither",
			Usage:     "Apply only the adjustments and dither filter",
			ArgsUsage: "INPUT OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				h, err := hamster.New(nil, newLogger(c), options(c))
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := h.DitherFile(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "cache",
			Usage: "Manage the conversion cache",
			Subcommands: []*cli.Command{
				{
					Name:  "stats",
					Usage: "Show the number of cached conversions and pixels",
					Action: func(c *cli.Context) error {
						db, err := hamster.NewCacheDB(c.String("db"))
						if err != nil {
							return cli.Exit(err, 1)
						}
						defer db.Close()

						n, err := db.Count()
						if err != nil {
							return cli.Exit(err, 1)
						}
						px, err := db.Pixels()
						if err != nil {
							return cli.Exit(err, 1)
						}
						fmt.Fprintf(c.App.Writer, "%d cached conversions, %d pixels\n", n, px)

						return nil
					},
				},
				{
					Name:  "purge",
					Usage: "Remove every cached conversion",
					Action: func(c *cli.Context) error {
						db, err := hamster.NewCacheDB(c.String("db"))
						if err != nil {
							return cli.Exit(err, 1)
						}
						defer db.Close()

						if err := db.Purge(); err != nil {
							return cli.Exit(err, 1)
						}

						return nil
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
