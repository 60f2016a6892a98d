package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/woozymasta/cprs"
)

// Process exit codes.
const (
	exitOK     = 0
	exitUsage  = 1
	exitInput  = 2
	exitDecode = 4
	exitOutput = 8
)

var (
	version = "(dev)"
	date    = "(unknown)"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("uncprs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		verbose = fs.Bool("v", false, "Print container header and output digest to stderr")
		tokens  = fs.Bool("tokens", false, "Print every decoded token to stderr")
		strict  = fs.Bool("strict", false, "Fail if the stream ends before the declared size")
		maxSize = fs.Int("max", 0, "Refuse containers declaring more output bytes than this. 0 = no limit")
	)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "uncprs v%v, built at %v.\n\n", version, date)
		_, _ = fmt.Fprintln(stderr, `Usage: uncprs [options] INPUTFILE OUTPUTFILE

Decompresses a CPRS container. Use - to read stdin or write stdout.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}
	inName, outName := fs.Arg(0), fs.Arg(1)

	src, err := readInput(inName, stdin)
	if err != nil {
		printErr(stderr, fmt.Errorf("unable to read %s: %w", inName, err))
		return exitInput
	}

	opts := &cprs.Options{Strict: *strict, MaxDecodedSize: *maxSize}
	if *tokens {
		opts.OnToken = func(t cprs.Token) {
			_, _ = fmt.Fprintln(stderr, t)
		}
	}

	h, err := cprs.ParseHeader(src)
	if err != nil {
		printErr(stderr, err)
		return exitDecode
	}

	out, err := cprs.Decompress(src, opts)
	if err != nil {
		printErr(stderr, err)
		return exitDecode
	}

	if *verbose {
		_, _ = fmt.Fprintf(stderr, "%s: compressed=%d (header %d) decompressed=%d xxhash64=%016x\n",
			inName, len(src), h.CompressedSize, len(out), xxhash.Sum64(out))
	}

	if err := writeOutput(outName, out, stdout); err != nil {
		printErr(stderr, fmt.Errorf("unable to write %s: %w", outName, err))
		return exitOutput
	}

	return exitOK
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func writeOutput(name string, data []byte, stdout io.Writer) error {
	if name != "-" {
		return os.WriteFile(name, data, 0o644)
	}
	n, err := stdout.Write(data)
	if err == nil && n != len(data) {
		err = io.ErrShortWrite
	}
	return err
}

func printErr(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, "Error:", err)
}
