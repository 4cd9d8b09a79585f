// Command niji exposes the color engine on the command line: parsing,
// blending and lightness operations on hex-encoded sRGB colors, with an
// ANSI swatch preview.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/nicholas-roether/niji/color"
)

var noColor = flag.Bool("no-color", false, "don't print ANSI color swatches")

const usage = `Usage: niji [-no-color] <command> [arguments]

Commands:
  parse   <color>                normalize a color to #rrggbbaa
  blend   <color> <color> <t>    interpolate between two colors
  mix     <color> <color>        blend at t=0.5
  lighten <color> <amount>       increase perceptual lightness
  darken  <color> <amount>       decrease perceptual lightness
  shade   <color> <lightness>    set perceptual lightness
  alpha   <color> <value>        replace the alpha channel
  ramp    <color> <color>        print a blend ramp (-steps n, default 8)

Colors are written as #rrggbb or #rrggbbaa.`

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "parse":
		err = cmdParse(rest)
	case "blend":
		err = cmdBlend(rest)
	case "mix":
		err = cmdMix(rest)
	case "lighten":
		err = cmdLightness(rest, 1)
	case "darken":
		err = cmdLightness(rest, -1)
	case "shade":
		err = cmdShade(rest)
	case "alpha":
		err = cmdAlpha(rest)
	case "ramp":
		err = cmdRamp(rest)
	default:
		fmt.Fprintf(os.Stderr, "niji: unknown command %q\n", cmd)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		if err == errUsage {
			flag.Usage()
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "niji:", err)
		os.Exit(1)
	}
}

var errUsage = fmt.Errorf("wrong number of arguments")

func cmdParse(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	c, err := color.Parse(args[0])
	if err != nil {
		return err
	}
	printColor(c)
	return nil
}

func cmdBlend(args []string) error {
	if len(args) != 3 {
		return errUsage
	}
	c1, err := color.Parse(args[0])
	if err != nil {
		return err
	}
	c2, err := color.Parse(args[1])
	if err != nil {
		return err
	}
	t, err := parseNumber(args[2])
	if err != nil {
		return err
	}
	printColor(c1.Blend(c2, t))
	return nil
}

func cmdMix(args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	c1, err := color.Parse(args[0])
	if err != nil {
		return err
	}
	c2, err := color.Parse(args[1])
	if err != nil {
		return err
	}
	printColor(c1.Mix(c2))
	return nil
}

func cmdLightness(args []string, sign float64) error {
	if len(args) != 2 {
		return errUsage
	}
	c, err := color.Parse(args[0])
	if err != nil {
		return err
	}
	amount, err := parseNumber(args[1])
	if err != nil {
		return err
	}
	printColor(c.Lighten(sign * amount))
	return nil
}

func cmdShade(args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	c, err := color.Parse(args[0])
	if err != nil {
		return err
	}
	lightness, err := parseNumber(args[1])
	if err != nil {
		return err
	}
	printColor(c.Shade(lightness))
	return nil
}

func cmdAlpha(args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	c, err := color.Parse(args[0])
	if err != nil {
		return err
	}
	a, err := parseNumber(args[1])
	if err != nil {
		return err
	}
	printColor(c.WithAlpha(a))
	return nil
}

func cmdRamp(args []string) error {
	fs := flag.NewFlagSet("ramp", flag.ContinueOnError)
	steps := fs.Int("steps", 8, "number of ramp entries")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	args = fs.Args()
	if len(args) != 2 {
		return errUsage
	}
	if *steps < 2 {
		return fmt.Errorf("ramp needs at least 2 steps")
	}
	c1, err := color.Parse(args[0])
	if err != nil {
		return err
	}
	c2, err := color.Parse(args[1])
	if err != nil {
		return err
	}
	for i := 0; i < *steps; i++ {
		t := float64(i) / float64(*steps-1)
		printColor(c1.Blend(c2, t))
	}
	return nil
}

func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}

// printColor writes the color's hex form, preceded by a 24-bit ANSI swatch
// unless -no-color is set.
func printColor(c color.Color) {
	if *noColor {
		fmt.Println(c.Hex())
		return
	}
	n := c.NRGBA()
	fmt.Printf("\x1b[48;2;%d;%d;%dm  \x1b[0m %s\n", n.R, n.G, n.B, c.Hex())
}
