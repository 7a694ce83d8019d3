package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const FileName = "seticon_log.txt"

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
	pid      int
	dir      string
)

// ResolveDir picks the log directory: the -logpath flag when set (relative
// paths are taken from the working directory), else the OS default.
func ResolveDir(flagPath string) (string, error) {
	if flagPath != "" {
		if !filepath.IsAbs(flagPath) {
			wd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			return filepath.Join(wd, flagPath), nil
		}
		return flagPath, nil
	}
	return getDefaultDir()
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error
	diagFile, err = os.OpenFile(filepath.Join(dir, FileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func RunStart(source, root, filter, edge string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("source", source).
		Str("res", root).
		Str("filter", filter).
		Str("edge", edge).
		Msg("run_start")
}

type SourceInfo struct {
	Width   int
	Height  int
	Side    int
	LoadMs  float64
	CropMs  float64
	Upscale bool
}

func Source(s SourceInfo) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("width", s.Width).
		Int("height", s.Height).
		Int("side", s.Side).
		Bool("upscale", s.Upscale).
		Float64("load_ms", s.LoadMs).
		Float64("crop_ms", s.CropMs).
		Msg("source")
}

type TargetMetrics struct {
	Density  string
	Size     int
	ResizeMs float64
	MaskMs   float64
	WriteMs  float64
	Files    []string
}

func Generated(m TargetMetrics) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("density", m.Density).
		Int("size", m.Size).
		Float64("resize_ms", m.ResizeMs).
		Float64("mask_ms", m.MaskMs).
		Float64("write_ms", m.WriteMs).
		Strs("files", m.Files).
		Msg("generated")
}

func RunEnd(count int, elapsed time.Duration) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("count", count).
		Float64("total_ms", float64(elapsed.Microseconds())/1000).
		Msg("run_end")
}
