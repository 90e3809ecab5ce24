// Command pkmeans reads a clustering instance from standard input (or -input),
// clusters it and prints the per-cluster report.
//
// The timing summary is also appended to a log file (-timing-log). A log file
// that cannot be opened is reported on stderr but does not fail the run.
//
// Usage:
//
//	pkmeans [flags] < dataset.txt
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
	"syscall"

	"github.com/hupe1980/pkmeans"
	"github.com/hupe1980/pkmeans/codec"
	"github.com/hupe1980/pkmeans/dataset"
	"github.com/hupe1980/pkmeans/internal/timinglog"
	"github.com/hupe1980/pkmeans/report"
)

type config struct {
	input       string
	seed        int64
	workers     int
	searchBlock int
	timingLog   string
	export      string
	compression string
	codec       string
	logLevel    string
	logFormat   string
	check       bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("pkmeans", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := &config{}
	fs.StringVar(&cfg.input, "input", "", "read the instance from this file instead of stdin")
	fs.Int64Var(&cfg.seed, "seed", pkmeans.DefaultSeed, "seed for initial-center selection")
	fs.IntVar(&cfg.workers, "workers", 0, "maximum goroutines per phase (0 = GOMAXPROCS)")
	fs.IntVar(&cfg.searchBlock, "search-block", pkmeans.DefaultSearchBlockSize, "clusters scanned per nearest-center worker")
	fs.StringVar(&cfg.timingLog, "timing-log", timinglog.DefaultPath, "file the timing summary is appended to (empty disables)")
	fs.StringVar(&cfg.export, "export", "", "also write the result as a document to this file")
	fs.StringVar(&cfg.compression, "compression", "", "export compression: none, lz4 or zstd (default: from file extension)")
	fs.StringVar(&cfg.codec, "codec", codec.Default.Name(), "export codec: "+codec.Names())
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format: text or json")
	fs.BoolVar(&cfg.check, "check", false, "verify the cluster partition after every phase")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config) (*pkmeans.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid -log-level: %w", err)
	}

	switch cfg.logFormat {
	case "text":
		return pkmeans.NewTextLogger(level), nil
	case "json":
		return pkmeans.NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("invalid -log-format %q", cfg.logFormat)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "pkmeans:", err)
		}
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	in := stdin
	if cfg.input != "" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	inst, err := dataset.Read(in)
	if err != nil {
		return err
	}

	metrics := &pkmeans.BasicMetricsCollector{}
	engine, err := pkmeans.New(inst.K,
		pkmeans.WithMaxIterations(inst.MaxIterations),
		pkmeans.WithSeed(cfg.seed),
		pkmeans.WithWorkers(cfg.workers),
		pkmeans.WithSearchBlockSize(cfg.searchBlock),
		pkmeans.WithLogger(logger),
		pkmeans.WithMetricsCollector(metrics),
		pkmeans.WithPartitionCheck(cfg.check),
	)
	if err != nil {
		return err
	}

	res, err := engine.Run(ctx, inst.Points)
	if err != nil {
		return err
	}

	if err := report.Write(stdout, res, inst.Points); err != nil {
		return err
	}

	if cfg.timingLog != "" {
		err := timinglog.Append(cfg.timingLog, func(w io.Writer) error {
			return report.WriteTimings(w, res)
		})
		if err != nil {
			// The report is already out; a missing timing log is not fatal.
			fmt.Fprintln(stderr, "Unable to open file:", err)
			logger.WarnContext(ctx, "timing log not written", "path", cfg.timingLog, "error", err)
		}
	}

	if cfg.export != "" {
		if err := export(cfg, res, inst.Points); err != nil {
			return err
		}
	}

	stats := metrics.GetStats()
	logger.DebugContext(ctx, "run metrics",
		"iterations", stats.Iterations,
		"points_moved", stats.PointsMoved,
		"avg_assign_ns", stats.AvgAssignNanos,
		"avg_recompute_ns", stats.AvgRecomputeNanos,
	)
	return nil
}

func export(cfg *config, res *pkmeans.Result, points []*pkmeans.Point) error {
	c, ok := codec.ByName(cfg.codec)
	if !ok {
		return fmt.Errorf("invalid -codec %q (want one of %s)", cfg.codec, codec.Names())
	}

	compression := report.CompressionForPath(cfg.export)
	if cfg.compression != "" {
		var err error
		if compression, err = report.ParseCompression(cfg.compression); err != nil {
			return err
		}
	}

	f, err := os.Create(cfg.export)
	if err != nil {
		return err
	}
	if err := report.Export(f, res, points, report.WithCodec(c), report.WithCompression(compression)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
