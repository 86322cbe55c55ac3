package app

import "flag"

// Options represents the command-line parameters for the viewer.
type Options struct {
	Width   int
	Height  int
	Seed    int64
	Scale   int
	Workers int
}

// NewOptions returns Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{Width: 100, Height: 100, Seed: 0, Scale: 6}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.IntVar(&o.Width, "width", o.Width, "map width in cells")
	fs.IntVar(&o.Height, "height", o.Height, "map height in cells")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "generation seed (0 = random)")
	fs.IntVar(&o.Scale, "scale", o.Scale, "pixel scale multiplier")
	fs.IntVar(&o.Workers, "workers", o.Workers, "noise fill workers (0 = NumCPU)")
}
