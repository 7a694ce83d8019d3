package output

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seticon/density"
)

func fill(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func decode(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func TestPaths(t *testing.T) {
	sq, rd := Paths("res", density.Targets[0])
	if sq != filepath.Join("res", "mipmap-mdpi", "ic_launcher.png") {
		t.Errorf("square = %q", sq)
	}
	if rd != filepath.Join("res", "mipmap-mdpi", "ic_launcher_round.png") {
		t.Errorf("round = %q", rd)
	}
}

func TestEmit(t *testing.T) {
	root := filepath.Join(t.TempDir(), "app", "src", "main", "res")
	w := NewWriter(root)
	tg := density.Targets[1]

	written, err := w.Emit(tg, fill(tg.Size, color.NRGBA{R: 10, A: 255}), fill(tg.Size, color.NRGBA{}))
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if len(written) != density.FilesPerTarget {
		t.Fatalf("wrote %d files, want %d", len(written), density.FilesPerTarget)
	}
	for _, p := range written {
		if !strings.HasPrefix(p, filepath.Join(root, "mipmap-hdpi")) {
			t.Errorf("%s not under mipmap-hdpi", p)
		}
		b := decode(t, p).Bounds()
		if b.Dx() != tg.Size || b.Dy() != tg.Size {
			t.Errorf("%s: %dx%d, want %dx%d", p, b.Dx(), b.Dy(), tg.Size, tg.Size)
		}
	}
}

func TestEmitOverwrites(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)
	tg := density.Targets[0]

	if _, err := w.Emit(tg, fill(tg.Size, color.NRGBA{R: 255, A: 255}), fill(tg.Size, color.NRGBA{})); err != nil {
		t.Fatal(err)
	}
	// Second run into an existing directory must not fail.
	if _, err := w.Emit(tg, fill(tg.Size, color.NRGBA{G: 255, A: 255}), fill(tg.Size, color.NRGBA{})); err != nil {
		t.Fatalf("second Emit: %v", err)
	}

	sq, _ := Paths(root, tg)
	r, g, _, _ := decode(t, sq).At(0, 0).RGBA()
	if r != 0 || g != 0xffff {
		t.Errorf("square not overwritten: r=%#x g=%#x", r, g)
	}

	entries, err := os.ReadDir(filepath.Join(root, tg.Dir()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory holds %v, want only the two icons", names)
	}
}

func TestWritePNGPreservesAlpha(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.png")
	w := NewWriter("")
	if err := w.WritePNG(p, fill(4, color.NRGBA{B: 200, A: 0})); err != nil {
		t.Fatal(err)
	}
	if _, _, _, a := decode(t, p).At(1, 1).RGBA(); a != 0 {
		t.Errorf("alpha = %d, want 0", a)
	}
	info, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0444 == 0 {
		t.Errorf("mode = %v, want readable", info.Mode())
	}
}

func TestWritePNGMissingDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nope", "a.png")
	if err := NewWriter("").WritePNG(p, fill(2, color.NRGBA{})); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestDefaultRoot(t *testing.T) {
	got, err := DefaultRoot()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(got, ResPath) {
		t.Errorf("DefaultRoot() = %q, want suffix %q", got, ResPath)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("DefaultRoot() = %q, want absolute path", got)
	}
}
