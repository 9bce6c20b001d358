// Usage examples:
//
// # Preview a PNG scaled to 40x20 cells
// ./sprite-view -w 40 -h 20 target.png
//
// # Preview a built-in sprite as the library resolves it
// ./sprite-view -assets assets fullWall
//
// # Write ANSI to a file
// ./sprite-view -o wall.ans fullWall

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/console-caster/asset"
	"github.com/lixenwraith/console-caster/render"
)

func main() {
	var (
		width  int
		height int
		output string
		assets string
	)

	flag.IntVar(&width, "w", 32, "Output width in columns")
	flag.IntVar(&height, "h", 16, "Output height in rows")
	flag.StringVar(&output, "o", "-", "Output ANSI to file ('-' for stdout)")
	flag.StringVar(&assets, "assets", "", "Asset directory used to resolve sprite names")
	flag.Parse()

	if flag.NArg() < 1 || width <= 0 || height <= 0 {
		fmt.Fprintln(os.Stderr, "Usage: sprite-view [options] <image file | sprite name>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	sprite, err := resolve(flag.Arg(0), assets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sprite: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Sprite: %s (%dx%d) -> %dx%d cells\n", flag.Arg(0), sprite.Width, sprite.Height, width, height)

	fb := render.NewFrameBuffer(width, height)
	render.DrawImage(fb, 0, 0, sprite, float64(width), float64(height), 0)

	out := os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	writeANSI(w, fb)
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

// resolve treats arguments with an image extension as files and everything else as a library name
func resolve(arg, dir string) (*render.Sprite, error) {
	switch filepath.Ext(arg) {
	case ".png", ".bmp":
		return asset.Load(arg)
	}
	return asset.NewLibrary(dir).Sprite(arg), nil
}
