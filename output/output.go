package output

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"seticon/density"
)

const (
	SquareName = "ic_launcher.png"
	RoundName  = "ic_launcher_round.png"
	DirPerm    = 0755
	FilePerm   = 0644
)

// ResPath is the resource root relative to the directory holding the binary.
var ResPath = filepath.Join("app", "src", "main", "res")

// DefaultRoot returns ResPath resolved against the running executable's
// directory, following symlinks to the real binary.
func DefaultRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("find executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve symlinks: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), ResPath), nil
}

// Paths returns the square and round icon paths for t under root.
func Paths(root string, t density.Target) (square, round string) {
	dir := filepath.Join(root, t.Dir())
	return filepath.Join(dir, SquareName), filepath.Join(dir, RoundName)
}

type Writer struct {
	Root string
	enc  png.Encoder
}

func NewWriter(root string) *Writer {
	return &Writer{
		Root: root,
		enc:  png.Encoder{CompressionLevel: png.BestCompression},
	}
}

// Emit writes both icons for t, creating the density directory if needed.
// It returns the paths written so far, even on error.
func (w *Writer) Emit(t density.Target, square, round image.Image) ([]string, error) {
	if err := os.MkdirAll(filepath.Join(w.Root, t.Dir()), DirPerm); err != nil {
		return nil, fmt.Errorf("create %s: %w", t.Dir(), err)
	}

	squarePath, roundPath := Paths(w.Root, t)
	var written []string
	if err := w.WritePNG(squarePath, square); err != nil {
		return written, err
	}
	written = append(written, squarePath)
	if err := w.WritePNG(roundPath, round); err != nil {
		return written, err
	}
	return append(written, roundPath), nil
}

// WritePNG encodes img into a temp file next to path and renames it over
// path, so readers never observe a partially written icon.
func (w *Writer) WritePNG(path string, img image.Image) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".seticon-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	if err := w.enc.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, FilePerm); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
