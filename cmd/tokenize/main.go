package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"

	"github.com/kerem-kaynak/tagged-tokenizer/pkg/tokenizer"
)

const usage = `tokenize - split text into tagged tokens and print its fingerprint

Usage:
  tokenize [options] [text]
  tokenize [options]            (interactive mode)

Options:
  --rules <file>   YAML rules file with categories, tags and custom patterns
  --make-rules     Print the default rules YAML to stdout
  --normalize      Apply NFC, control character and quote normalization first
  --no-cache       Disable the segmentation cache

Examples:
  tokenize "@superman: hit me up at 3pm :)"
  tokenize --rules custom.yaml "hello there #fun"
  tokenize --make-rules > rules.yaml
`

type result struct {
	Tokens      []tokenizer.Token `json:"tokens"`
	Fingerprint string            `json:"fingerprint"`
}

func main() {
	var makeRules, normalize, noCache bool
	var rulesFile string

	flag.BoolVar(&makeRules, "make-rules", false, "Print the default rules YAML")
	flag.BoolVar(&normalize, "normalize", false, "Normalize input before tokenizing")
	flag.BoolVar(&noCache, "no-cache", false, "Disable the segmentation cache")
	flag.StringVar(&rulesFile, "rules", "", "YAML rules file (optional)")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}

	flag.Parse()
	defer glog.Flush()

	if makeRules {
		out, err := tokenizer.DefaultRulesFile().Marshal()
		if err != nil {
			glog.Errorf("generating default rules: %v", err)
			exit(1)
		}
		fmt.Print(string(out))
		return
	}

	cfg := tokenizer.DefaultConfig()
	if noCache {
		cfg.CacheSize = 0
	}
	if normalize {
		cfg.Normalizer = tokenizer.NewNormalizer()
	}
	tok := tokenizer.NewTokenizerWithConfig(cfg)

	if rulesFile != "" {
		rules, err := tokenizer.LoadRulesFile(rulesFile)
		if err != nil {
			glog.Errorf("loading rules: %v", err)
			exit(1)
		}
		if err := rules.Apply(tok); err != nil {
			glog.Errorf("applying rules from %s: %v", rulesFile, err)
			exit(1)
		}
	}

	// If text provided as argument, tokenize and exit
	if flag.NArg() > 0 {
		text := strings.Join(flag.Args(), " ")
		output, err := encode(tok, text)
		if err != nil {
			glog.Errorf("encoding tokens: %v", err)
			exit(1)
		}
		fmt.Println(string(output))
		return
	}

	// Interactive mode
	fmt.Println("Tagged Tokenizer (interactive mode)")
	fmt.Printf("Active categories: %s\n", strings.Join(tok.ActiveCategories(), ", "))
	fmt.Println("Type a sentence, press Enter to tokenize. Ctrl+D to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		output, err := encode(tok, text)
		if err != nil {
			glog.Errorf("encoding tokens: %v", err)
			continue
		}
		fmt.Printf("  %s\n\n", output)
	}
	if err := scanner.Err(); err != nil {
		glog.Errorf("reading stdin: %v", err)
		exit(1)
	}
}

func encode(tok *tokenizer.Tokenizer, text string) ([]byte, error) {
	tokens := tok.Tokenize(text)
	return json.Marshal(result{Tokens: tokens, Fingerprint: tok.Fingerprint()})
}

// exit flushes pending log records before leaving, since os.Exit skips defers.
func exit(code int) {
	glog.Flush()
	os.Exit(code)
}
