// Package colorgap finds sets of colors that keep a minimum perceptual
// distance (CIEDE2000) from a caller-supplied avoid list and from each
// other, by greedily sweeping a discretized RGB cube. Its main use is
// picking UI accent colors that stay legible against fixed theme colors.
package colorgap

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/jsvensson/colorgap/internal/color"
	"github.com/jsvensson/colorgap/internal/engine"
	"github.com/jsvensson/colorgap/internal/palette"
)

// Options configures a search. The zero value is not useful; Step must be
// set to a value in [1, 255].
type Options struct {
	// Step is the RGB lattice stride, 1-255.
	Step int
	// Gap is the minimum CIEDE2000 distance accepted colors keep from
	// every avoid color. Deliberately unconstrained.
	Gap float64
	// Avoid lists hex colors (6 digits, case-insensitive, optional #) to
	// seed the avoid collection.
	Avoid []string
	// AvoidFiles lists HCL avoid files loaded after Avoid.
	AvoidFiles []string
	// DiscordLight, DiscordDark and DiscordRoles seed the corresponding
	// built-in palettes after the files.
	DiscordLight bool
	DiscordDark  bool
	DiscordRoles bool
	// Workers parallelizes the rejection scan; output does not depend on
	// it. Values below 2 run sequentially.
	Workers int
	// Sink receives progress notifications; nil means silent.
	Sink engine.Sink
}

// ValidationError reports an option that failed validation before the
// search started.
type ValidationError struct {
	Option string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Option, e.Value, e.Reason)
}

// Run validates opts, sweeps the lattice, and returns the accepted colors
// as uppercase bare hex strings sorted by hue. Validation failures return
// a *ValidationError before any lattice point is evaluated.
func Run(ctx context.Context, opts Options) ([]string, error) {
	if opts.Step < 1 || opts.Step > 255 {
		return nil, &ValidationError{
			Option: "step",
			Value:  strconv.Itoa(opts.Step),
			Reason: "must be between 1 and 255",
		}
	}

	seed, err := seedAvoids(opts)
	if err != nil {
		return nil, err
	}

	eng := &engine.Engine{
		Step:    opts.Step,
		Gap:     opts.Gap,
		Workers: opts.Workers,
		Sink:    opts.Sink,
	}
	found, err := eng.Run(ctx, seed)
	if err != nil {
		return nil, err
	}

	SortByHue(found)
	out := make([]string, len(found))
	for i, c := range found {
		out[i] = c.HexUpper()
	}
	return out, nil
}

// seedAvoids assembles the initial avoid collection: explicit hex values,
// then avoid files in argument order, then the selected built-in palettes.
func seedAvoids(opts Options) ([]color.Color, error) {
	var seed []color.Color

	for _, hex := range opts.Avoid {
		c, err := color.ParseHex(hex)
		if err != nil {
			return nil, &ValidationError{
				Option: "avoid",
				Value:  hex,
				Reason: "must be 6 hex digits",
			}
		}
		seed = append(seed, c)
	}

	for _, path := range opts.AvoidFiles {
		colors, err := palette.LoadAvoidFile(path)
		if err != nil {
			return nil, fmt.Errorf("avoid file %s: %w", path, err)
		}
		seed = append(seed, colors...)
	}

	if opts.DiscordLight {
		seed = append(seed, palette.DiscordLight...)
	}
	if opts.DiscordDark {
		seed = append(seed, palette.DiscordDark...)
	}
	if opts.DiscordRoles {
		seed = append(seed, palette.DiscordRoles...)
	}
	return seed, nil
}

// SortByHue sorts colors by HSV hue ascending, keeping the original order
// for equal hues.
func SortByHue(colors []color.Color) {
	sort.SliceStable(colors, func(i, j int) bool {
		hi, _, _ := color.RGBToHSV(colors[i])
		hj, _, _ := color.RGBToHSV(colors[j])
		return hi < hj
	})
}
