// SPDX-License-Identifier: MIT
// Source: github.com/dgnorth/c5

/*
Command c5 compresses and decompresses files with the c5/uc5 codec.

Usage:

	c5 [-t] file...

For each positional argument:

  - if -t was passed, the file is encoded then decoded and the result is
    compared against the original (a round-trip self-test); a mismatch or
    error aborts with a nonzero exit code.
  - else if the path ends in ".c5", it is decoded to a file with the suffix
    stripped.
  - else it is encoded to a file with ".c5" appended.

Non-regular files (directories, devices, ...) are skipped with a message.
Exit code is 0 if every argument succeeded, nonzero otherwise.
*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dgnorth/c5"
)

const suffix = ".c5"

func main() {
	selftest := flag.Bool("t", false, "round-trip self-test instead of encode/decode")
	flag.Parse()

	ok := true
	for _, path := range flag.Args() {
		if err := processFile(path, *selftest); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			if *selftest {
				os.Exit(1)
			}
			ok = false
		}
	}

	if !ok {
		os.Exit(1)
	}
}

func processFile(path string, selftest bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.Mode().IsRegular() {
		fmt.Printf("skipping %s: not a regular file\n", path)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if selftest {
		return selfTest(path, data)
	}

	if strings.HasSuffix(path, suffix) {
		return decodeFile(path, data)
	}

	return encodeFile(path, data)
}

func selfTest(path string, data []byte) error {
	encoded, err := c5.Encode(data)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	decoded, err := c5.Decode(encoded)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if !bytes.Equal(decoded, data) {
		fmt.Printf("%s [%d ==> %d] FAIL\n", path, len(data), len(encoded))
		return fmt.Errorf("round-trip mismatch: got %d bytes, want %d", len(decoded), len(data))
	}

	fmt.Printf("%s [%d ==> %d] OKAY\n", path, len(data), len(encoded))
	return nil
}

func encodeFile(path string, data []byte) error {
	encoded, err := c5.Encode(data)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	outPath := path + suffix
	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return err
	}

	fmt.Printf("compressed %s [%d] => %s [%d]\n", path, len(data), outPath, len(encoded))
	return nil
}

func decodeFile(path string, data []byte) error {
	decoded, err := c5.Decode(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	outPath := strings.TrimSuffix(path, suffix)
	if err := os.WriteFile(outPath, decoded, 0o644); err != nil {
		return err
	}

	fmt.Printf("uncompressed %s [%d] => %s [%d]\n", path, len(data), outPath, len(decoded))
	return nil
}
