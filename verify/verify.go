package verify

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"seticon/density"
	"seticon/output"
)

// Run checks every density directory under root and returns an exit code
// (0=all pass, 1=any fail).
func Run(w io.Writer, root string) int {
	fmt.Fprintf(w, "seticon verify - %s\n", root)
	fmt.Fprintln(w, "==============")

	failed := 0
	for i, t := range density.Targets {
		fmt.Fprintf(w, "\n[%d/%d] %s (%dx%d)\n", i+1, len(density.Targets), t.Dir(), t.Size, t.Size)
		if err := Target(root, t); err != nil {
			fmt.Fprintf(w, "  FAIL: %v\n", err)
			failed++
			continue
		}
		fmt.Fprintln(w, "  PASS")
	}

	fmt.Fprintln(w)
	if failed == 0 {
		fmt.Fprintln(w, "All checks passed!")
		return 0
	}
	fmt.Fprintf(w, "%d of %d densities failed. Re-run seticon with the source image.\n", failed, len(density.Targets))
	return 1
}

// Target checks that both icons for t exist, are PNGs of the nominal size,
// and that the round icon is transparent outside the circle.
func Target(root string, t density.Target) error {
	squarePath, roundPath := output.Paths(root, t)

	square, err := readPNG(squarePath, t.Size)
	if err != nil {
		return err
	}
	round, err := readPNG(roundPath, t.Size)
	if err != nil {
		return err
	}

	n := t.Size
	for _, p := range []image.Point{{0, 0}, {n - 1, 0}, {0, n - 1}, {n - 1, n - 1}} {
		if _, _, _, a := round.At(p.X, p.Y).RGBA(); a != 0 {
			return fmt.Errorf("%s: corner (%d,%d) is not transparent", output.RoundName, p.X, p.Y)
		}
	}

	// The round icon keeps the square icon's pixels inside the circle.
	_, _, _, sa := square.At(n/2, n/2).RGBA()
	_, _, _, ra := round.At(n/2, n/2).RGBA()
	if sa != ra {
		return fmt.Errorf("%s: center alpha %d, square has %d", output.RoundName, ra>>8, sa>>8)
	}
	return nil
}

func readPNG(path string, size int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("missing %s", path)
		}
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		return nil, fmt.Errorf("%s: %dx%d, want %dx%d", path, b.Dx(), b.Dy(), size, size)
	}
	return img, nil
}
