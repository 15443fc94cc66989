package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"

	"github.com/kerem-kaynak/tagged-tokenizer/pkg/tokenizer"
)

func main() {
	flag.Usage = printUsage
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() < 1 {
		printUsage()
		exit(1)
	}

	table := tokenizer.DefaultContractions()
	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "lookup":
		if len(args) == 0 {
			fmt.Println("Error: lookup requires at least one word")
			exit(1)
		}
		missing := 0
		for _, word := range args {
			pieces, ok := table.Lookup(word)
			if !ok {
				pieces = tokenizer.SplitContraction(word, table)
				if len(pieces) == 1 {
					fmt.Printf("'%s' is not a contraction or possessive\n", word)
					missing++
					continue
				}
			}
			values := make([]string, len(pieces))
			for i, p := range pieces {
				values[i] = p.Value
			}
			fmt.Printf("%s -> %s\n", word, strings.Join(values, " | "))
		}
		if missing > 0 {
			exit(1)
		}

	case "contains":
		if len(args) != 1 {
			fmt.Println("Error: contains requires a word")
			exit(1)
		}
		word := args[0]
		if table.Contains(word) {
			fmt.Printf("'%s' exists in contraction table\n", word)
		} else {
			fmt.Printf("'%s' NOT in contraction table\n", word)
			exit(1)
		}

	case "list":
		for _, key := range table.Keys() {
			fmt.Println(key)
		}

	case "stats":
		pieces := map[int]int{}
		for _, key := range table.Keys() {
			p, _ := table.Lookup(key)
			pieces[len(p)]++
		}
		fmt.Printf("Contractions: %d\n", table.Len())
		fmt.Printf("Two-piece:    %d\n", pieces[2])
		fmt.Printf("Three-piece:  %d\n", pieces[3])

	default:
		glog.Errorf("unknown command: %s", command)
		printUsage()
		exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: contractions <command> [args...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  lookup <word> [word...] Show how words are split")
	fmt.Println("  contains <word>         Check if word is in the table")
	fmt.Println("  list                    List every contraction")
	fmt.Println("  stats                   Show table statistics")
}

func exit(code int) {
	glog.Flush()
	os.Exit(code)
}
