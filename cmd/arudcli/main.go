// Command arudcli is a thin shell over the arud package: it reads a
// verse or poem from stdin (or the -text flag) and prints its scansion
// as plain text. It has no logic of its own beyond argument handling
// and formatting — every analysis decision lives in arud and its leaf
// packages.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/az-ai-labs/al-khalil/arud"
)

func main() {
	mode := flag.String("mode", "classical", "analysis mode: classical, freeverse, or rhyme")
	text := flag.String("text", "", "verse or poem text (reads stdin if omitted)")
	ajuz := flag.Bool("ajuz", false, "treat the input as a hemistich-closing verse (classical mode only)")
	flag.Parse()

	input, err := readInput(*text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arudcli: %v\n", err)
		os.Exit(1)
	}

	switch *mode {
	case "classical":
		runClassical(input, *ajuz)
	case "freeverse":
		runFreeVerse(input)
	case "rhyme":
		runRhyme(input)
	default:
		fmt.Fprintf(os.Stderr, "arudcli: unknown -mode %q (want classical, freeverse, or rhyme)\n", *mode)
		os.Exit(1)
	}
}

func readInput(fromFlag string) (string, error) {
	if fromFlag != "" {
		return fromFlag, nil
	}
	b, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func runClassical(text string, isAjuz bool) {
	result := arud.AnalyseClassical(text, isAjuz)
	fmt.Printf("الكتابة العروضية: %s\n", result.Arrodi)
	fmt.Printf("المقاطع: %s\n", result.Chars)
	fmt.Printf("الحركات: %s\n", result.Harakat)
	fmt.Printf("التفعيلات: %s\n", result.Rokaz)
	fmt.Printf("البحر: %s\n", result.Meter)
	for _, f := range result.Feet {
		fmt.Printf("  %s\t%s\n", f.Name, f.Text)
	}
}

func runFreeVerse(text string) {
	result, err := arud.AnalyseFreeVerse(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arudcli: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("البحر: %s\n", result.Meter)
	for i := range result.Patterns {
		fmt.Printf("  %s\t%s\t%s\n", result.Patterns[i], result.Names[i], result.Words[i])
	}
}

func runRhyme(text string) {
	verses := strings.Split(text, "\n")
	results, err := arud.AnalyseRhymes(verses)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arudcli: %v\n", err)
		os.Exit(1)
	}
	for i, r := range results {
		if r.Text == "" {
			fmt.Printf("%d: (لا يوجد)\n", i+1)
			continue
		}
		fmt.Printf("%d: %s — %s\n", i+1, r.Text, r.Type)
		for _, e := range r.Errors {
			fmt.Printf("   ! %s\n", e)
		}
	}
}
