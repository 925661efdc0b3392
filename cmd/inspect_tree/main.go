// Build a B+ tree from a list of integer keys and print its structure.
// Usage: go run ./cmd/inspect_tree [-order n] [-file keys.txt] [key...]
// Example: go run ./cmd/inspect_tree -order 3 1 2 3 4 5 6 7
//
// Keys in the file are whitespace separated. A negative key deletes its
// absolute value, e.g. "-- 1 2 3 -2" inserts 1, 2, 3 then deletes 2, so keys
// themselves are non-negative here.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	bplus "BPlusViz/bplustree"
	"BPlusViz/logger"
)

func main() {
	order := flag.Int("order", 4, "order of the tree")
	file := flag.String("file", "", "read keys from this file")
	debug := flag.Bool("debug", false, "log every split and merge")
	flag.Parse()

	level := "warn"
	if *debug {
		level = "debug"
	}
	if err := logger.InitLogger(logger.LogConfig{Level: level}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	tokens := flag.Args()
	if *file != "" {
		fromFile, err := readTokens(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		tokens = append(fromFile, tokens...)
	}
	if len(tokens) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-order n] [-file keys.txt] [key...]\n", os.Args[0])
		os.Exit(1)
	}

	tree, err := bplus.NewIntTree(*order,
		bplus.WithLogger(logger.Component("bplus")),
		bplus.WithInvariantChecks(true))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, tok := range tokens {
		k, err := strconv.Atoi(tok)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: key %q is not an integer\n", tok)
			os.Exit(1)
		}
		if k < 0 {
			if !tree.Delete(-k) {
				fmt.Fprintf(os.Stderr, "skipped missing key %d\n", -k)
			}
			continue
		}
		if !tree.Insert(k) {
			fmt.Fprintf(os.Stderr, "skipped duplicate key %d\n", k)
		}
	}

	if err := tree.Dump(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	out, err := json.Marshal(tree.Export())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nExport: %s\n", out)
}

func readTokens(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tokens []string
	s := bufio.NewScanner(f)
	s.Split(bufio.ScanWords)
	for s.Scan() {
		tokens = append(tokens, s.Text())
	}
	return tokens, s.Err()
}
