// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package delimited splits delimited text lines into fields and scans
// delimited files row by row.
//
// The quoting rules are line-local: a quoted span never continues onto the
// next line, and malformed quoting never produces an error.
package delimited

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Comma is the delimiter used by the instructor data files.
const Comma = ','

const quote = '"'

// maxLineSize bounds a single line read by ScanFile. Comment content can be
// long, so the bufio default of 64 KiB is not enough.
const maxLineSize = 16 << 20

// Split breaks line into fields separated by delim. A quote character toggles
// the in-quotes state; inside quotes the delimiter is literal and a doubled
// quote yields one quote character. The last field is always emitted, so
// Split never returns an empty slice. An unterminated quote makes the rest of
// the line part of the current field.
func Split(line string, delim rune) []string {
	fields := make([]string, 0, strings.Count(line, string(delim))+1)
	var (
		field    strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		switch {
		case r == quote:
			if inQuotes && i+size < len(line) && line[i+size] == quote {
				field.WriteRune(quote)
				size++
			} else {
				inQuotes = !inQuotes
			}
		case r == delim && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteString(line[i : i+size])
		}
		i += size
	}

	return append(fields, field.String())
}

// Fields splits line on commas.
func Fields(line string) []string {
	return Split(line, Comma)
}

// RowFunc receives one data row from ScanFile. lineNo is 1-based and counts
// the header line.
type RowFunc func(lineNo int, line string, fields []string)

// ScanFile reads the comma-delimited file at path, skips the header line and
// whitespace-only lines, and calls fn for every remaining line. Only I/O
// errors are returned; row validation is left to fn.
func ScanFile(path string, fn RowFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fn(lineNo, line, Fields(line))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
