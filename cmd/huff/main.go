// Command huff compresses and decompresses files.
//
//     huff compress [-o outfile] [-v level] filename
//     huff decompress [-o outfile] [-v level] filename.huff
//
// Invoked as "huff" or "puff", the subcommand is implied.  Without -o,
// compress writes filename.huff and decompress strips the .huff suffix.
//
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	huffman "github.com/chronos-tachyon/hufftree"
	"github.com/chronos-tachyon/hufftree/internal/logger"
)

const suffix = ".huff"

const usage = "Usage: huff [compress|decompress] [-o outfile] [-v level] infile"

func main() {
	if err := run(filepath.Base(os.Args[0]), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(progname string, args []string) error {
	var isCompress bool
	switch {
	case progname == "huff" && (len(args) == 0 || (args[0] != "compress" && args[0] != "decompress")):
		isCompress = true
	case progname == "puff":
		isCompress = false
	case len(args) != 0 && args[0] == "compress":
		isCompress = true
		args = args[1:]
	case len(args) != 0 && args[0] == "decompress":
		isCompress = false
		args = args[1:]
	default:
		return errors.New(usage)
	}

	fs := flag.NewFlagSet(progname, flag.ContinueOnError)
	outFilename := fs.String("o", "", "output file")
	debugLevel := fs.Int("v", huffman.DebugNone, "debug level (0, 1 or 4)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New(usage)
	}
	inFilename := fs.Arg(0)

	if *outFilename == "" {
		if isCompress {
			*outFilename = inFilename + suffix
		} else if strings.HasSuffix(inFilename, suffix) {
			*outFilename = strings.TrimSuffix(inFilename, suffix)
		} else {
			return errors.Errorf("file to decompress must be named something%s", suffix)
		}
	}

	opts := &huffman.Options{
		Logger:     logger.New(log.New(os.Stderr, progname+": ", 0)),
		DebugLevel: *debugLevel,
	}
	if isCompress {
		return compressFile(inFilename, *outFilename, opts)
	}
	return decompressFile(inFilename, *outFilename, opts)
}

func compressFile(inFilename, outFilename string, opts *huffman.Options) error {
	inputFile, err := os.Open(inFilename)
	if err != nil {
		return errors.Wrapf(err, "opening %s for reading", inFilename)
	}
	defer inputFile.Close()

	outputFile, err := os.Create(outFilename)
	if err != nil {
		return errors.Wrapf(err, "opening %s for writing", outFilename)
	}

	if _, err := huffman.Compress(outputFile, inputFile, opts); err != nil {
		outputFile.Close()
		return errors.Wrapf(err, "compressing %s", inFilename)
	}
	return errors.Wrapf(outputFile.Close(), "closing %s", outFilename)
}

func decompressFile(inFilename, outFilename string, opts *huffman.Options) error {
	inputFile, err := os.Open(inFilename)
	if err != nil {
		return errors.Wrapf(err, "opening %s for reading", inFilename)
	}
	defer inputFile.Close()

	outputFile, err := os.Create(outFilename)
	if err != nil {
		return errors.Wrapf(err, "opening %s for writing", outFilename)
	}

	if _, err := huffman.Decompress(outputFile, inputFile, opts); err != nil {
		// The partial output can't be trusted.
		outputFile.Close()
		os.Remove(outFilename)
		return errors.Wrapf(err, "decompressing %s", inFilename)
	}
	return errors.Wrapf(outputFile.Close(), "closing %s", outFilename)
}
