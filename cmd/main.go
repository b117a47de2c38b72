package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/khushaljethava/graphviz2drawio/internal/logger"
	"github.com/khushaljethava/graphviz2drawio/pkg/converter"
	"github.com/khushaljethava/graphviz2drawio/pkg/server"
)

func main() {
	// Configure logging
	logger.SetShowDateTime(true)
	logger.SetLogOutput('c')

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		runServe(os.Args[2:])
		return
	}
	runConvert(os.Args[1:])
}

// runConvert converts one SVG file into a draw.io file
func runConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	out := fs.String("o", "", "output file (defaults to the input name with a .drawio extension)")
	compressed := fs.Bool("compressed", false, "emit the compressed draw.io encoding")
	debug := fs.Bool("debug", false, "enable debug logging")
	logToFile := fs.Bool("logfile", false, "log to "+logger.LogFilePath+" instead of the console")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: graphviz2drawio [flags] input.svg")
		fmt.Fprintln(os.Stderr, "       graphviz2drawio serve [flags]")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if *debug {
		logger.SetLevel(logger.DEBUG)
	}
	if *logToFile {
		logger.SetLogOutput('f')
	}
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	input := fs.Arg(0)

	in, err := os.Open(input)
	if err != nil {
		logger.Fatal("Cannot open input file:", err)
	}
	defer in.Close()

	content, err := converter.Convert(in, converter.Options{Compressed: *compressed})
	if err != nil {
		logger.Fatal("Conversion failed:", err)
	}

	output := *out
	if output == "" {
		output = strings.TrimSuffix(input, ".svg") + ".drawio"
	}
	if err := os.WriteFile(output, content, 0644); err != nil {
		logger.Fatal("Cannot write output file:", err)
	}
	logger.Info("Wrote", output)
}

// runServe starts the HTTP conversion server
func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "address to listen on")
	dbPath := fs.String("db", "", "sqlite file for conversion history (empty disables history)")
	debug := fs.Bool("debug", false, "enable debug logging")
	logToFile := fs.Bool("logfile", false, "log to "+logger.LogFilePath+" instead of the console")
	fs.Parse(args)

	if *debug {
		logger.SetLevel(logger.DEBUG)
	}
	if *logToFile {
		logger.SetLogOutput('f')
	}
	if err := server.Start(*addr, *dbPath); err != nil {
		logger.Fatal("Server error:", err)
	}
}
