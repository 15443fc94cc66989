//go:build ignore

// gen_emoji writes emoji_table.go from a Unicode emoji-test.txt file.
//
// Every code point that occurs in a listed emoji sequence becomes part of the
// class, except ASCII (keycap bases), joiners, variation selectors, the keycap
// mark, tag characters and regional indicators, which rxEmoji handles itself.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/golang/glog"
)

const perLine = 8

func main() {
	dataPath := flag.String("data", "data/emoji-test.txt", "emoji-test.txt from the Unicode emoji data")
	outputPath := flag.String("out", "emoji_table.go", "output file")
	flag.Parse()
	defer glog.Flush()

	codepoints, version, err := load(*dataPath)
	if err != nil {
		glog.Exitf("reading %s: %v", *dataPath, err)
	}

	src, err := format.Source(render(ranges(codepoints), version))
	if err != nil {
		glog.Exitf("formatting output: %v", err)
	}
	if err := os.WriteFile(*outputPath, src, 0o644); err != nil {
		glog.Exitf("writing %s: %v", *outputPath, err)
	}
	glog.Infof("wrote %d code points to %s", len(codepoints), *outputPath)
}

func load(path string) ([]rune, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	seen := make(map[rune]struct{})
	version := "unknown"
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if v, ok := strings.CutPrefix(line, "# Version: "); ok {
			version = strings.TrimSpace(v)
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields, _, ok := strings.Cut(line, ";")
		if !ok {
			continue
		}
		for _, hex := range strings.Fields(fields) {
			cp, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return nil, "", fmt.Errorf("bad code point %q: %w", hex, err)
			}
			if !skip(rune(cp)) {
				seen[rune(cp)] = struct{}{}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, "", err
	}

	codepoints := make([]rune, 0, len(seen))
	for cp := range seen {
		codepoints = append(codepoints, cp)
	}
	sort.Slice(codepoints, func(i, j int) bool { return codepoints[i] < codepoints[j] })
	return codepoints, version, nil
}

func skip(cp rune) bool {
	switch {
	case cp < 0x80:
		return true
	case cp == 0x200D, cp == 0x20E3, cp == 0xFE0E, cp == 0xFE0F:
		return true
	case cp >= 0xE0020 && cp <= 0xE007F:
		return true
	case cp >= 0x1F1E6 && cp <= 0x1F1FF:
		return true
	}
	return false
}

func ranges(codepoints []rune) [][2]rune {
	var out [][2]rune
	for _, cp := range codepoints {
		if n := len(out); n > 0 && out[n-1][1] == cp-1 {
			out[n-1][1] = cp
			continue
		}
		out = append(out, [2]rune{cp, cp})
	}
	return out
}

func render(rs [][2]rune, version string) []byte {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by gen_emoji.go; DO NOT EDIT.\n\n")
	buf.WriteString("package tokenizer\n\n")
	fmt.Fprintf(&buf, "// emojiClass matches a single emoji code point (Unicode emoji %s).\n", version)
	buf.WriteString("const emojiClass = `[` +\n")
	for i := 0; i < len(rs); i += perLine {
		end := min(i+perLine, len(rs))
		buf.WriteString("\t`")
		for _, r := range rs[i:end] {
			if r[0] == r[1] {
				fmt.Fprintf(&buf, `\x{%04X}`, r[0])
			} else {
				fmt.Fprintf(&buf, `\x{%04X}-\x{%04X}`, r[0], r[1])
			}
		}
		buf.WriteString("` +\n")
	}
	buf.WriteString("\t`]`\n")
	return buf.Bytes()
}
