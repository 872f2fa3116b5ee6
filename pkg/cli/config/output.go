package config

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Agrysif/ghrelease/pkg/controller/console"
)

// Output holds report output configuration
type Output struct {
	NoColor bool

	// Writer is the report destination, stdout if nil
	Writer io.Writer
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored output",
			Destination: &c.NoColor,
			Sources:     cli.EnvVars("GHRELEASE_NO_COLOR"),
		},
	}
}

// NewReporter builds the console reporter
func (c *Output) NewReporter() *console.Reporter {
	w := c.Writer
	if w == nil {
		w = os.Stdout
	}

	var opts []console.Option
	if c.NoColor {
		opts = append(opts, console.WithColor(false))
	}
	return console.NewReporter(w, opts...)
}
