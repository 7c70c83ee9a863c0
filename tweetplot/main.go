// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tweetplot plots tweets as a band scatter plot.
//
// tweetplot reads a JSON array of tweet records (see package dataset)
// from the named files or standard input. It places each tweet in a
// horizontal band for its month, positions it within the band by its
// "Dimension 1" value, spreads overlapping tweets apart, and colors
// each tweet by its sentiment or subjectivity.
//
// By default tweetplot writes an SVG to standard output. With -http,
// it instead serves the plot over HTTP, where clicking a tweet toggles
// its selection and /selected lists the selected tweets.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/aclements/tweetviz/colormap"
	"github.com/aclements/tweetviz/dataset"
	"github.com/aclements/tweetviz/render"
	"github.com/aclements/tweetviz/viz"
	"golang.org/x/crypto/ssh/terminal"
)

func main() {
	log.SetPrefix("tweetplot: ")
	log.SetFlags(0)

	cfg := viz.DefaultConfig()
	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagFormat     = flag.String("format", "svg", "output `format`: svg or png")
		flagMode       = flag.String("mode", colormap.Sentiment.Name, "color by `attribute`: Sentiment or Subjectivity")
		flagMax        = flag.Int("n", cfg.MaxPoints, "plot at most `n` tweets")
		flagSeed       = flag.Int64("seed", cfg.Relax.Seed, "layout random `seed`")
		flagIter       = flag.Int("iter", cfg.Relax.Iterations, "layout `iterations`")
		flagHTTP       = flag.String("http", "", "serve an interactive plot on `addr`")
		flagView       = flag.String("view", "", "run `command` on the output file")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	mode, err := colormap.ParseMode(*flagMode)
	if err != nil {
		log.Fatal(err)
	}
	if *flagFormat != "svg" && *flagFormat != "png" {
		log.Fatalf("unknown format %q", *flagFormat)
	}
	if *flagView != "" && *flagOut == "" {
		log.Fatal("-view requires -o")
	}
	cfg.MaxPoints = *flagMax
	cfg.Relax.Seed = *flagSeed
	cfg.Relax.Iterations = *flagIter

	// Parse inputs.
	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var sets [][]*dataset.Record
	for _, path := range paths {
		sets = append(sets, readRecords(path))
	}
	records, err := dataset.Merge(sets...)
	if err != nil {
		log.Fatalf("%s: %v", strings.Join(paths, ", "), err)
	}

	e := viz.NewEngine(cfg, mode)
	e.SetData(dataset.Points(records))
	for _, d := range e.Layout().Dropped {
		log.Printf("dropping tweet %d: %v", d.ID, d.Err)
	}
	if len(e.Layout().Points) == 0 {
		log.Printf("no tweets to plot")
	}

	if *flagHTTP != "" {
		serve(*flagHTTP, e, records)
		return
	}

	// Prepare for output.
	var w io.Writer = os.Stdout
	if *flagOut != "" {
		f, err := os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	} else if *flagFormat == "png" && terminal.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("refusing to write PNG to a terminal; use -o")
	}

	switch *flagFormat {
	case "svg":
		err = render.SVG(w, e.Frame(), render.Options{})
	case "png":
		err = render.PNG(w, e.Frame())
	}
	if err != nil {
		log.Fatal(err)
	}

	if *flagView != "" {
		if err := view(*flagView, *flagOut); err != nil {
			log.Fatal(err)
		}
	}
}

func readRecords(path string) []*dataset.Record {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	records, err := dataset.Parse(f)
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	return records
}
