package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/codegangsta/cli"
	dotmatrix "github.com/kevin-cantwell/dotmatrix-svg"
	"golang.org/x/text/language"
)

const successMessage = "[.] file written successfully!"

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		exit(err.Error(), 1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "dotmatrix"
	app.Usage = "A command-line tool for encoding images as SVG dot matrices."
	app.UsageText = "dotmatrix -i [file] -o [file.svg] [options]"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Writer = stdout
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "input,i",
			Usage: "`FILE` is the image to convert. Required.",
		},
		cli.StringFlag{
			Name:  "output,o",
			Usage: "`FILE` is where the SVG is written. Required.",
		},
		cli.IntFlag{
			Name:  "radius,r",
			Usage: "`RADIUS` of each dot. Each pixel becomes a 2*RADIUS square cell.",
			Value: dotmatrix.DefaultRadius,
		},
		cli.IntFlag{
			Name:  "threshold,t",
			Usage: "A dot is drawn when the pixel's channel sum is at least `THRESHOLD`.",
			Value: dotmatrix.DefaultThreshold,
		},
		cli.StringFlag{
			Name:  "config,c",
			Usage: "YAML `FILE` with defaults for any option but input and output.",
		},
		cli.StringFlag{
			Name:  "fit,f",
			Usage: "`FIT` = 80,25 scales down the image to at most 80x25 pixels, ie. 80x25 dots.",
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
		},
		cli.Float64Flag{
			Name:  "contrast",
			Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
		},
		cli.Float64Flag{
			Name:  "sharpen,s",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
		},
		cli.Float64Flag{
			Name:  "sigmoid-midpoint",
			Usage: "`MIDPOINT` in [0,1] is the centre of the sigmoid contrast curve.",
			Value: 0.5,
		},
		cli.Float64Flag{
			Name:  "sigmoid-factor",
			Usage: "`FACTOR` = 0 gives the original image. FACTOR greater than 0 increases contrast, less than 0 decreases it.",
		},
		cli.BoolFlag{
			Name:  "invert",
			Usage: "Inverts the image before thresholding.",
		},
		cli.BoolFlag{
			Name:  "auto-orient",
			Usage: "Rotates the image according to its EXIF orientation.",
		},
		cli.StringFlag{
			Name:  "preview",
			Usage: "Also renders the dots to the PNG `FILE`.",
		},
		cli.BoolFlag{
			Name:  "print,p",
			Usage: "Prints the dot matrix to stdout as braille.",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Logs progress and a summary to stderr.",
		},
	}
	app.Action = func(c *cli.Context) error {
		if c.Bool("verbose") {
			dotmatrix.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
			defer dotmatrix.SetLogger(nil)
		}

		cfg, err := config(c)
		if err != nil {
			return err
		}
		summary, err := convert(c.App.Writer, cfg, c.Bool("print"))
		if err != nil {
			return err
		}
		if c.Bool("verbose") {
			fmt.Fprintln(stderr, summary.Format(language.English))
		}
		fmt.Fprintln(c.App.Writer, successMessage)
		return nil
	}
	return app
}

// config layers the command line over the config file over the defaults.
func config(c *cli.Context) (dotmatrix.Config, error) {
	cfg := dotmatrix.DefaultConfig()
	if name := setName(c, "config,c"); name != "" {
		if err := dotmatrix.LoadConfig(c.String(name), &cfg); err != nil {
			return cfg, err
		}
	}
	if name := setName(c, "input,i"); name != "" {
		cfg.Input = c.String(name)
	}
	if name := setName(c, "output,o"); name != "" {
		cfg.Output = c.String(name)
	}
	if cfg.Input == "" {
		return cfg, errors.New("missing required flag --input")
	}
	if cfg.Output == "" {
		return cfg, errors.New("missing required flag --output")
	}

	if name := setName(c, "radius,r"); name != "" {
		cfg.Radius = c.Int(name)
	}
	if name := setName(c, "threshold,t"); name != "" {
		cfg.Threshold = c.Int(name)
	}
	if name := setName(c, "fit,f"); name != "" {
		cfg.Fit = c.String(name)
	}
	if name := setName(c, "gamma,g"); name != "" {
		cfg.Gamma = c.Float64(name)
	}
	if name := setName(c, "brightness,b"); name != "" {
		cfg.Brightness = c.Float64(name)
	}
	if c.IsSet("contrast") {
		cfg.Contrast = c.Float64("contrast")
	}
	if name := setName(c, "sharpen,s"); name != "" {
		cfg.Sharpen = c.Float64(name)
	}
	if c.IsSet("sigmoid-midpoint") {
		cfg.SigmoidMidpoint = c.Float64("sigmoid-midpoint")
	}
	if c.IsSet("sigmoid-factor") {
		cfg.SigmoidFactor = c.Float64("sigmoid-factor")
	}
	// --invert=false turns off a config file's invert: true.
	if c.IsSet("invert") {
		cfg.Invert = c.Bool("invert")
	}
	if c.IsSet("auto-orient") {
		cfg.AutoOrient = c.Bool("auto-orient")
	}
	if c.IsSet("preview") {
		cfg.Preview = c.String("preview")
	}
	return cfg, cfg.Validate()
}

// convert runs one conversion. Nothing is written unless the image decodes.
func convert(stdout io.Writer, cfg dotmatrix.Config, printBraille bool) (dotmatrix.Summary, error) {
	filters, err := cfg.Filters()
	if err != nil {
		return dotmatrix.Summary{}, err
	}
	img, layout, err := dotmatrix.Open(cfg.Input, cfg.AutoOrient)
	if err != nil {
		return dotmatrix.Summary{}, err
	}

	var m *dotmatrix.Mask
	err = dotmatrix.WriteFile(cfg.Output, func(w io.Writer) error {
		enc := dotmatrix.NewEncoder(w,
			dotmatrix.WithRadius(cfg.Radius),
			dotmatrix.WithThreshold(cfg.Threshold),
			dotmatrix.WithLayout(layout),
			dotmatrix.WithFilter(filters),
		)
		var err error
		if m, err = enc.Mask(img); err != nil {
			return err
		}
		return enc.EncodeMask(m)
	})
	if err != nil {
		return dotmatrix.Summary{}, err
	}

	if cfg.Preview != "" {
		if err := dotmatrix.SavePreview(cfg.Preview, m, cfg.Radius); err != nil {
			return dotmatrix.Summary{}, err
		}
	}
	if printBraille {
		if err := dotmatrix.EncodeBraille(stdout, m); err != nil {
			return dotmatrix.Summary{}, err
		}
	}
	return dotmatrix.Summarize(m, cfg.Radius), nil
}

// setName returns whichever of the comma separated flag names was given on
// the command line, or "" if none was.
func setName(c *cli.Context, names string) string {
	for _, name := range strings.Split(names, ",") {
		if c.IsSet(name) {
			return name
		}
	}
	return ""
}

func exit(msg string, code int) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
