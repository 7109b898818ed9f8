// Copyright (c) 2025 Quantsweep Corp
// Reader/Writer compression helpers for tick-data and report files.
//
// Adapted from Neomantra's Gist:
// https://gist.github.com/neomantra/691a6028cdf2ac3fc6ec97d00e8ea802

package sweepbt

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

///////////////////////////////////////////////////////////////////////////////

// MakeCompressedWriter returns an io.Writer for filename, or os.Stdout if
// filename is "-". It also returns a closing function to defer and any
// error encountered opening the file. If filename ends in ".zst" or
// ".zstd", or useZstd is true, the writer zstd-compresses its output.
func MakeCompressedWriter(filename string, useZstd bool) (io.Writer, func(), error) {
	var writer io.Writer
	var closer io.Closer
	fileCloser := func() {
		if closer != nil {
			closer.Close()
		}
	}
	if filename != "-" {
		if file, err := os.Create(filename); err == nil {
			writer, closer = file, file
		} else {
			return nil, nil, err
		}
	} else {
		writer, closer = os.Stdout, nil
	}

	if useZstd || strings.HasSuffix(filename, ".zst") || strings.HasSuffix(filename, ".zstd") {
		zstdWriter, err := zstd.NewWriter(writer)
		if err != nil {
			fileCloser()
			return nil, nil, err
		}
		zstdCloser := func() {
			zstdWriter.Close()
			fileCloser()
		}
		return zstdWriter, zstdCloser, nil
	}
	return writer, fileCloser, nil
}

///////////////////////////////////////////////////////////////////////////////

// MakeCompressedReader returns an io.Reader for filename, or os.Stdin if
// filename is "-", along with a closer. Filenames ending in ".zst" or
// ".zstd" are zstd-decompressed; ".gz" is gzip-decompressed; useZstd forces
// zstd regardless of extension.
func MakeCompressedReader(filename string, useZstd bool) (io.Reader, io.Closer, error) {
	var reader io.Reader
	var closer io.Closer

	if filename != "-" {
		if file, err := os.Open(filename); err == nil {
			reader, closer = file, file
		} else {
			return nil, nil, err
		}
	} else {
		reader, closer = os.Stdin, nil
	}

	var err error
	switch {
	case useZstd || strings.HasSuffix(filename, ".zst") || strings.HasSuffix(filename, ".zstd"):
		reader, err = zstd.NewReader(reader)
	case strings.HasSuffix(filename, ".gz"):
		reader, err = gzip.NewReader(reader)
	}

	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, nil, err
	}
	return reader, closer, nil
}
