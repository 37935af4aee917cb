// Copyright 2024 The arrow-seq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rrbdemo is a small exerciser for the rrb package: it reads
// lines of text into a Vector[string], optionally forks and joins in a
// second file, optionally reverses or slices the result, and prints
// whatever is left, one line per element.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arrow-seq/rrb/rrb"
)

var (
	join    = flag.String("join", "", "path to a second file to join onto the end of the first (- for stdin)")
	joinAt  = flag.Int("join-at", -1, "splice -join in at this index instead of the end (-1 means append)")
	slice   = flag.String("slice", "", "print only the range from:to instead of the whole result")
	reverse = flag.Bool("reverse", false, "print the result in reverse order")
	fork    = flag.Bool("fork", false, "fork the vector before printing, to exercise the fork path")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	name := "-"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}
	lines, err := readLines(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rrbdemo: %s\n", err)
		os.Exit(1)
	}
	v := rrb.FromSlice(lines)

	if *join != "" {
		other, err := readLines(*join)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rrbdemo: %s\n", err)
			os.Exit(1)
		}
		joinee := rrb.FromSlice(other)
		if *joinAt < 0 {
			v.Join(joinee)
		} else {
			v.JoinAt(*joinAt, joinee)
		}
	}

	if *fork {
		v = v.Fork()
	}

	from, to := 0, v.Len()
	if *slice != "" {
		var err error
		from, to, err = parseRange(*slice, v.Len())
		if err != nil {
			fmt.Fprintf(os.Stderr, "rrbdemo: %s\n", err)
			os.Exit(2)
		}
	}
	view := v.SubList(from, to)
	out := view.ToSlice()
	if *reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	printAll(rrb.FromSlice(out))
}

func printAll(src rrb.Sequence[string]) {
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for i := 0; i < src.Len(); i++ {
		fmt.Fprintln(w, src.Get(i))
	}
}

func readLines(name string) ([]string, error) {
	var r io.Reader
	if name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func parseRange(s string, size int) (from, to int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("-slice wants from:to, got %q", s)
	}
	from, to = 0, size
	if parts[0] != "" {
		if _, err := fmt.Sscanf(parts[0], "%d", &from); err != nil {
			return 0, 0, fmt.Errorf("-slice: bad start %q", parts[0])
		}
	}
	if parts[1] != "" {
		if _, err := fmt.Sscanf(parts[1], "%d", &to); err != nil {
			return 0, 0, fmt.Errorf("-slice: bad end %q", parts[1])
		}
	}
	return from, to, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: rrbdemo [options] [file]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
