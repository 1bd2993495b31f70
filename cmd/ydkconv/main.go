package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/CodeFatherG/YugiohProbabilitySim/internal/catalog"
	"github.com/CodeFatherG/YugiohProbabilitySim/internal/sim"
)

func main() {
	in := flag.String("in", "", "path to the .ydk file")
	out := flag.String("out", "", "output path for the yaml document (default stdout)")
	cards := flag.String("cards", "", "card list CSV (default: ygoprodeck API)")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*in, *out, *cards); err != nil {
		fmt.Fprintln(os.Stderr, "convert failed:", err)
		os.Exit(1)
	}
}

func run(inPath, outPath, cardsPath string) error {
	var cat catalog.Catalog
	if cardsPath != "" {
		m, err := catalog.LoadCSV(cardsPath)
		if err != nil {
			return err
		}
		cat = m
	} else {
		cat = catalog.NewClient()
	}

	b, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	text, err := sim.New().ConvertYDK(context.Background(), string(b), cat)
	if err != nil {
		return err
	}

	if outPath == "" {
		fmt.Print(text)
		return nil
	}
	return os.WriteFile(outPath, []byte(text), 0o644)
}
