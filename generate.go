package main

import (
	"time"

	"seticon/density"
	"seticon/icon"
	"seticon/log"
	"seticon/output"
)

type generator struct {
	con    *console
	writer *output.Writer
	filter icon.Filter
	edge   icon.Edge
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

// run loads source, crops it once and emits both icons for every density
// target in table order. It returns the number of files written.
func (g *generator) run(source string) (int, error) {
	start := time.Now()
	log.RunStart(source, g.writer.Root, string(g.filter), g.edge.String())

	g.con.title("Loading: %s", source)
	t0 := time.Now()
	src, err := icon.Load(source)
	if err != nil {
		return 0, err
	}
	loadTime := time.Since(t0)

	t0 = time.Now()
	square := icon.Square(src)
	side := square.Bounds().Dx()
	b := src.Bounds()
	log.Source(log.SourceInfo{
		Width:   b.Dx(),
		Height:  b.Dy(),
		Side:    side,
		LoadMs:  ms(loadTime),
		CropMs:  ms(time.Since(t0)),
		Upscale: side < density.MinRecommended,
	})

	g.con.printf("Source size: %dx%d -> cropped to %dx%d", b.Dx(), b.Dy(), side, side)
	if side < density.MinRecommended {
		g.con.warnf("WARNING: at least %dx%d is recommended, got %dx%d; icons will be upscaled",
			density.MinRecommended, density.MinRecommended, side, side)
		log.Warnf("source square %dpx below recommended %dpx", side, density.MinRecommended)
	}

	count := 0
	for _, t := range density.Targets {
		t0 = time.Now()
		resized := icon.Resize(square, t.Size, g.filter)
		resizeTime := time.Since(t0)

		t0 = time.Now()
		round := icon.Round(resized, t.Size, g.edge)
		maskTime := time.Since(t0)

		t0 = time.Now()
		files, err := g.writer.Emit(t, resized, round)
		count += len(files)
		if err != nil {
			return count, err
		}
		log.Generated(log.TargetMetrics{
			Density:  t.Name,
			Size:     t.Size,
			ResizeMs: ms(resizeTime),
			MaskMs:   ms(maskTime),
			WriteMs:  ms(time.Since(t0)),
			Files:    files,
		})
		g.con.target(t.Dir(), t.Size)
	}

	g.con.printf("")
	g.con.title("Done! Wrote %d files to %s", count, g.writer.Root)
	g.con.hint("You can now build the APK.")
	log.RunEnd(count, time.Since(start))
	return count, nil
}
