package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Fingel/rideprofile/config"
	"github.com/Fingel/rideprofile/metrics"
	"github.com/Fingel/rideprofile/report"
	"github.com/Fingel/rideprofile/source"
)

type options struct {
	workers  int
	progress bool
	stderr   io.Writer
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Ошибка конфигурации: %v", err)
	}

	// значения по умолчанию берутся из .env / RIDEPROFILE_*
	timeout := flag.Duration("timeout", cfg.Timeout, "жёсткий таймаут всего процесса (0 = без таймаута)")
	workers := flag.Int("workers", cfg.Workers, "сколько записей архива разбирать параллельно")
	progress := flag.Bool("progress", cfg.Progress, "показывать прогресс по записям архива (в stderr)")
	pprofAddr := flag.String("pprof", cfg.PprofAddr, "включить pprof на адресе (например 127.0.0.1:6060), пусто = выключено")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <file.gpx|archive.zip>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Must provide a path to gpx file!")
		flag.Usage()
		os.Exit(1)
	}

	if *pprofAddr != "" {
		enablePPROF(*pprofAddr)
	}

	ctx, cancel := withTimeout(context.Background(), *timeout)
	defer cancel()

	opts := options{workers: *workers, progress: *progress, stderr: os.Stderr}
	if err := run(ctx, flag.Arg(0), opts, os.Stdout); err != nil {
		log.Fatalf("❌ Ошибка: %v", err)
	}
}

func run(ctx context.Context, path string, opts options, out io.Writer) error {
	started := time.Now()

	in, err := source.Open(path)
	if err != nil { return err }

	var bars *Bars
	if in.Archive && opts.progress && len(in.Entries) > 0 {
		bars = NewBars(len(in.Entries), opts.stderr)
	}
	results, err := summarizeAll(ctx, in.Entries, opts.workers, bars.IncGPX)
	bars.Done()
	if err != nil { return err }

	// печать и агрегат строго в порядке записей архива
	var agg metrics.Aggregate
	for i, r := range results {
		if r.err != nil {
			return fmt.Errorf("%s: %w", in.Entries[i].Name, r.err)
		}
		if err := report.WriteSummary(out, r.summary); err != nil { return err }
		if in.Archive {
			agg.Add(r.summary)
		}
	}
	if in.Archive {
		if err := report.WriteAggregate(out, agg); err != nil { return err }
		log.Printf("✅ Готово: %d записей за %s", agg.Rides, time.Since(started).Round(time.Millisecond))
	}
	return nil
}
