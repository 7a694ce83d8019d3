package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"seticon/icon"
	"seticon/log"
	"seticon/output"
	"seticon/verify"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, performs one generation (or verification) and returns
// the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("seticon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	resFlag := fs.String("res", "", "resource root (default: <binary dir>/app/src/main/res)")
	filterFlag := fs.String("filter", string(icon.Lanczos), "resampling filter: lanczos or catmullrom")
	smoothFlag := fs.Bool("smooth", false, "anti-alias the edge of the round icon")
	verifyFlag := fs.Bool("verify", false, "check an existing resource tree instead of generating")
	logFlag := fs.Bool("log", false, "write a diagnostics log")
	logPathFlag := fs.String("logpath", "", "diagnostics log directory (implies -log; default: OS-specific location)")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	fs.Usage = func() { printUsage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	con := newConsole(stdout, stderr)

	if *versionFlag {
		fmt.Fprintf(stdout, "seticon %s\n", version)
		return 0
	}

	filter, err := icon.ParseFilter(*filterFlag)
	if err != nil {
		con.errorf("Error: %v", err)
		return 1
	}

	root := *resFlag
	if root == "" {
		root, err = output.DefaultRoot()
		if err != nil {
			con.errorf("Error: %v", err)
			return 1
		}
	}

	if *logFlag || *logPathFlag != "" {
		if err := startLog(*logPathFlag); err != nil {
			con.warnf("Warning: could not init logging: %v", err)
		}
		defer log.Close()
	}

	if *verifyFlag {
		return verify.Run(stdout, root)
	}

	if fs.NArg() < 1 {
		printUsage(stderr, fs)
		return 1
	}
	source := fs.Arg(0)
	if info, err := os.Stat(source); os.IsNotExist(err) || (err == nil && info.IsDir()) {
		con.errorf("File not found: %s", source)
		return 1
	}

	edge := icon.MaskHard
	if *smoothFlag {
		edge = icon.MaskSmooth
	}
	g := &generator{
		con:    con,
		writer: output.NewWriter(root),
		filter: filter,
		edge:   edge,
	}
	if _, err := g.run(source); err != nil {
		log.Errorf("generation failed: %v", err)
		con.errorf("Error: %v", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: seticon [flags] <path-to-image>")
	fmt.Fprintln(w, "Example: seticon my_icon.png")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}

func startLog(flagPath string) error {
	dir, err := log.ResolveDir(flagPath)
	if err != nil {
		return fmt.Errorf("failed to resolve log directory: %w", err)
	}
	log.SetDir(dir)
	if err := log.Init(); err != nil {
		return err
	}

	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
		debug.SetCrashOutput(crashFile, debug.CrashOptions{})
		crashFile.Close()
	}
	return nil
}
