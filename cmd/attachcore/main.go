/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Command attachcore is a thin wrapper around extractcore.Run: it takes a
// PDF path and an output directory, runs the extraction core, and prints
// the resulting RunStats. Flag parsing here is intentionally minimal --
// everything else (validity preflight, figure-context JSON, Markdown
// summaries, OCR) is an external collaborator's job, not this binary's.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/figtable/attachcore/common"
	"github.com/figtable/attachcore/extractcore"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-v] <pdf-path> <output-dir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	level := common.LogLevelNotice
	if *verbose {
		level = common.LogLevelDebug
	}
	common.SetLogger(common.NewConsoleLogger(level))

	result, err := extractcore.Run(extractcore.Request{
		PDFPath:   flag.Arg(0),
		OutputDir: flag.Arg(1),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "attachcore: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result.Stats)
}
