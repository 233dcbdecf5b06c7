// Command tagreader prints the tag fields and audio properties of every file
// named on the command line.
//
// Usage:
//
//	tagreader [flags] FILE...
//
// A file that cannot be read produces an error line and processing carries
// on with the next one; the exit status only reflects usage and
// configuration errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ebassi/taglib-go/internal/config"
	"github.com/ebassi/taglib-go/pkg/taglib"
	"github.com/ebassi/taglib-go/pkg/taglib/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tagreader", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: tagreader [flags] FILE...")
		fs.PrintDefaults()
	}

	var (
		typeName    = fs.String("type", "", "open every file as this type (MPEG, FLAC, MP4, ...) instead of detecting it")
		configPath  = fs.String("config", "", "path to a JSON configuration file")
		asJSON      = fs.Bool("json", false, "print results as JSON")
		unicode     = fs.Bool("unicode", true, "decode tag strings as UTF-8 rather than Latin-1")
		concurrency = fs.Int("j", 0, "number of files read in parallel (0: one per CPU)")
		verbose     = fs.Bool("v", false, "log debug records to stderr")
		version     = fs.Bool("version", false, "print version and exit")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *version {
		fmt.Fprintf(stdout, "tagreader %s (native taglib linked: %t)\n", taglib.WrapperVersion(), taglib.NativeAvailable())
		return 0
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "tagreader: config %s: %v\n", *configPath, err)
			return 1
		}
		cfg = loaded
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "tagreader: %v\n", err)
		return 1
	}
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewText(stderr, level)

	switch {
	case set["unicode"]:
		taglib.SetStringsUnicode(*unicode)
	case cfg.Unicode != nil:
		taglib.SetStringsUnicode(*cfg.Unicode)
	}

	opts := []taglib.Option{taglib.WithLogger(logger)}
	switch {
	case set["j"]:
		opts = append(opts, taglib.WithConcurrency(*concurrency))
	case cfg.Concurrency > 0:
		opts = append(opts, taglib.WithConcurrency(cfg.Concurrency))
	}
	if *typeName != "" {
		ft, err := taglib.ParseFileType(*typeName)
		if err != nil {
			fmt.Fprintf(stderr, "tagreader: -type: %v\n", err)
			return 2
		}
		opts = append(opts, taglib.WithFileType(ft))
	} else if len(cfg.FileTypes) > 0 {
		opts = append(opts, taglib.WithFileTypeResolver(cfg.Resolver()))
	}

	logger.Debug(ctx, "reading files", "count", fs.NArg(), "unicode", taglib.StringsUnicode())
	results := taglib.ReadAll(ctx, fs.Args(), opts...)

	if *asJSON || (!set["json"] && cfg.Output == config.OutputJSON) {
		err = writeJSON(stdout, results)
	} else {
		err = writeText(stdout, results)
	}
	if err != nil {
		fmt.Fprintf(stderr, "tagreader: %v\n", err)
		return 1
	}
	if ctx.Err() != nil {
		return 1
	}
	return 0
}
