package main

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/lzend"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"
)

// lzend parses a file into its LZ-End factorization and reports the phrase
// count, timing and compressibility.
//
//	lzend [flags] <file>
func main() {
	block := flag.Int("block", 0, "block size of the range-minimum structure (0 = default)")
	capacity := flag.Int("capacity", 0, "node capacity of the B-tree backend (0 = default)")
	backend := flag.String("backend", "btree", "marked-set backend: btree or marking")
	verify := flag.Bool("verify", false, "expand the parsing and compare with the input")
	progress := flag.Bool("progress", false, "report parse progress on stderr")
	quiet := flag.Bool("quiet", false, "suppress the summary")
	cpuprofile := flag.String("cpuprofile", "", "write a CPU profile to file")
	memprofile := flag.String("memprofile", "", "write a heap profile to file")
	trace := flag.String("trace", "info", "trace level: info or debug")
	flag.Parse()

	gtrace.CoreTracer = gologadapter.New()
	switch *trace {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	default:
		fmt.Fprintf(os.Stderr, "unknown trace level %q\n", *trace)
		os.Exit(1)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: lzend [flags] <file>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := lzend.Config{BlockSize: *block, NodeCapacity: *capacity}
	switch *backend {
	case "btree":
		cfg.Backend = lzend.BackendBTree
	case "marking":
		cfg.Backend = lzend.BackendRangeMarking
	default:
		fmt.Fprintf(os.Stderr, "unknown backend %q\n", *backend)
		os.Exit(1)
	}

	text, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read input: %v\n", err)
		os.Exit(1)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	parser, err := lzend.NewParser(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	var wg sync.WaitGroup
	if *progress {
		if ch, ok := parser.Subscribe(context.Background(), 16); ok {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reportProgress(ch)
			}()
		}
	}

	parsing, err := parser.Parse(text)
	parser.Close()
	wg.Wait()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse failed: %v\n", err)
		os.Exit(1)
	}

	if *verify {
		round, err := lzend.Expand(parsing)
		if err != nil {
			fmt.Fprintf(os.Stderr, "verification failed: %v\n", err)
			os.Exit(1)
		}
		if !bytes.Equal(round, text) {
			fmt.Fprintln(os.Stderr, "verification failed: expansion differs from input")
			os.Exit(1)
		}
	}

	if !*quiet {
		printSummary(parser.Stats(), *verify)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create heap profile: %v\n", err)
			os.Exit(1)
		}
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not write heap profile: %v\n", err)
			os.Exit(1)
		}
		f.Close()
	}
}

// reportProgress consumes the parser's progress events until the channel
// closes. On an interactive terminal it draws an in-place bar sized to the
// terminal width, otherwise it logs one line per phase.
func reportProgress(ch chan interface{}) {
	width := 65
	tty := term.IsTerminal(0)
	if tty {
		if w, _, err := term.GetSize(0); err == nil {
			width = w
		}
	}
	for msg := range ch {
		ev, ok := msg.(lzend.Progress)
		if !ok {
			continue
		}
		if !tty {
			if ev.Pos == 0 || ev.Phase == lzend.PhaseDone {
				fmt.Fprintf(os.Stderr, "lzend: %s\n", ev.Phase)
			}
			continue
		}
		drawBar(ev, width)
	}
	if tty {
		fmt.Fprintln(os.Stderr)
	}
}

func drawBar(ev lzend.Progress, width int) {
	cells := width - 12 // room for the phase label
	if cells < 10 {
		cells = 10
	}
	filled := 0
	if ev.Total > 0 {
		filled = cells * ev.Pos / ev.Total
	}
	bar := strings.Repeat("=", filled) + strings.Repeat(" ", cells-filled)
	fmt.Fprintf(os.Stderr, "\r%-8s[%s]", ev.Phase, bar)
}

func printSummary(st lzend.Stats, verified bool) {
	num := color.New(color.FgBlue)
	fmt.Printf("%s bytes -> %s phrases, %s bytes/phrase, %v\n",
		num.Sprintf("%d", st.TextLen),
		num.Sprintf("%d", st.Phrases),
		num.Sprintf("%.2f", st.BytesPerPhrase()),
		st.Elapsed)
	if verified {
		okc := color.New(color.FgGreen)
		fmt.Printf("expansion %s\n", okc.Sprint("verified"))
	}
}
