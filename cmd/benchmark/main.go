package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/kerem-kaynak/tagged-tokenizer/pkg/tokenizer"
)

const (
	nameWidth = 24
	rowWidth  = 66

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

// workload is one measured call. When tokens is set the row also reports
// token throughput.
type workload struct {
	name   string
	tokens int
	fn     func()
}

// group is a titled table of workloads sharing one unit of work.
type group struct {
	title     string
	unit      string
	workloads []workload
}

type runner struct {
	iterations int
	warmup     int
	color      bool
}

func main() {
	var r runner
	var noColor bool
	flag.IntVar(&r.iterations, "iterations", 100000, "Measured calls per workload")
	flag.IntVar(&r.warmup, "warmup", 1000, "Unmeasured calls before each workload")
	flag.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	flag.Parse()
	defer glog.Flush()
	r.color = !noColor

	start := time.Now()
	tok := tokenizer.NewTokenizer()
	table := tokenizer.DefaultContractions()
	fmt.Printf("Tokenizer ready: %d rules, %d categories, %d contractions (%v)\n",
		len(tok.Rules()), len(tok.ActiveCategories()), table.Len(), time.Since(start).Round(time.Microsecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n\n", r.iterations, r.warmup)

	sentences := []struct{ name, text string }{
		{"Single word", "Wärmedämmung"},
		{"Contractions", "We'll help you if you won't create trouble, Jamie O'Hara"},
		{"Social post", "@superman: hit me up on my email r2d2@gmail.com; & we will plan party🎉 tom at 3pm:)"},
		{"Emoji sequences", "I ❤️ India 🇮🇳 and my 👨‍👩‍👧 👍🏽 1️⃣"},
		{"Multi-script", "दिग्गज शायर मिर्ज़ा #Ghalib की पुण्यतिथि (27 December १७९७) पर उनका किरदार"},
	}

	uncached := tokenizer.NewTokenizerNoCache()
	pipeline := group{title: "TOKENIZE (no cache)", unit: "sentences"}
	for _, s := range sentences {
		text := s.text
		pipeline.workloads = append(pipeline.workloads, workload{
			name:   s.name,
			tokens: len(uncached.Tokenize(text)),
			fn:     func() { uncached.Tokenize(text) },
		})
	}
	r.run(pipeline)

	post := sentences[2].text
	rules := tokenizer.MasterRules()
	r.run(group{title: "TOKENIZER INTERNALS", unit: "calls", workloads: []workload{
		{name: "Tokenize (cache hit)", fn: func() { tok.Tokenize(post) }},
		{name: "Tokenize (cache miss)", fn: func() { tok.ClearCache(); tok.Tokenize(post) }},
		{name: "Segment", fn: func() { tokenizer.Segment(post, rules, table) }},
		{name: "Fingerprint", fn: func() { tok.Fingerprint() }},
		{name: "DefineConfig", fn: func() { tok.DefineConfig(tokenizer.DefaultSelection()) }},
	}})

	r.run(group{title: "CONTRACTIONS", unit: "words", workloads: []workload{
		{name: "FST lookup (hit)", fn: func() { table.Lookup("shouldn't've") }},
		{name: "FST lookup (miss)", fn: func() { table.Lookup("O'Hara") }},
		{name: "Possessive split", fn: func() { tokenizer.SplitContraction("Jamie's", table) }},
	}})

	norm := tokenizer.NewNormalizer()
	r.run(group{title: "NORMALIZER", unit: "strings", workloads: []workload{
		{name: "Default pipeline", fn: func() { norm.Normalize("He said “I won’t go”") }},
		{name: "NFC compose", fn: func() { tokenizer.NFCCompose("Wärmedämmung") }},
		{name: "NFKC compose", fn: func() { tokenizer.NFKCCompose("ﬁne １２") }},
		{name: "Remove control chars", fn: func() { tokenizer.RemoveControlChars("bell\u0007 rings") }},
		{name: "Normalize quotes", fn: func() { tokenizer.NormalizeQuotes("„Wärme“") }},
	}})
}

// run measures every workload of g and prints one table.
func (r runner) run(g group) {
	fmt.Println(r.paint(colorDim, "╭"+strings.Repeat("─", rowWidth)+"╮"))
	title := fmt.Sprintf(" %-*s %14s %10s %12s", nameWidth, g.title, g.unit+"/sec", "ns/op", "tokens/sec")
	fmt.Println(r.paint(colorDim, "│") + r.paint(colorCyan, fit(title)) + r.paint(colorDim, "│"))
	fmt.Println(r.paint(colorDim, "├"+strings.Repeat("─", rowWidth)+"┤"))

	for _, w := range g.workloads {
		elapsed := r.measure(w.fn)
		perSec := float64(r.iterations) / elapsed.Seconds()
		nsPerOp := float64(elapsed.Nanoseconds()) / float64(r.iterations)

		throughput := "-"
		if w.tokens > 0 {
			throughput = fmt.Sprintf("%.0f", perSec*float64(w.tokens))
		}

		name := w.name
		if len(name) > nameWidth {
			name = name[:nameWidth]
		}
		plain := fmt.Sprintf(" %-*s %14.0f %10.0f %12s", nameWidth, name, perSec, nsPerOp, throughput)
		pad := strings.Repeat(" ", max(0, rowWidth-len(plain)))
		row := fmt.Sprintf(" %-*s %s %s %s", nameWidth, name,
			r.paint(colorGreen, fmt.Sprintf("%14.0f", perSec)),
			r.paint(colorYellow, fmt.Sprintf("%10.0f", nsPerOp)),
			fmt.Sprintf("%12s", throughput))
		fmt.Println(r.paint(colorDim, "│") + row + pad + r.paint(colorDim, "│"))
	}

	fmt.Println(r.paint(colorDim, "╰"+strings.Repeat("─", rowWidth)+"╯"))
	fmt.Println()
}

func (r runner) measure(fn func()) time.Duration {
	for i := 0; i < r.warmup; i++ {
		fn()
	}
	start := time.Now()
	for i := 0; i < r.iterations; i++ {
		fn()
	}
	return time.Since(start)
}

func (r runner) paint(color, s string) string {
	if !r.color {
		return s
	}
	return color + s + colorReset
}

// fit pads or cuts s to the inner width of a table row.
func fit(s string) string {
	if len(s) >= rowWidth {
		return s[:rowWidth]
	}
	return s + strings.Repeat(" ", rowWidth-len(s))
}
