// Command wordsort reads a text or HTML file and prints its vocabulary in
// sorted order, together with word frequencies.
//
// Usage:
//
//	wordsort [flags] file
//
// Words are kept in an intrusive red-black tree. With -tree the shape of that
// tree is printed instead of the word list, and -dot writes it in Graphviz
// format.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/rbset"
	"github.com/npillmayer/rbset/console"
	"github.com/npillmayer/rbset/textfile"
	"github.com/npillmayer/rbset/vocab"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	fragSize := flag.Int64("frag", 0, "fragment size for reading the file (0 = automatic)")
	level := flag.String("trace", "Error", "trace level (Debug, Info, Error)")
	desc := flag.Bool("desc", false, "print words in descending order")
	tree := flag.Bool("tree", false, "print the tree instead of the word list")
	top := flag.Int("top", 0, "print the n most frequent words only")
	dot := flag.String("dot", "", "write the tree in Graphviz DOT format to this file")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: wordsort [flags] file")
		flag.PrintDefaults()
		os.Exit(2)
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*level))
	//
	p := console.PrinterFromTerminal()
	if err := run(p, flag.Arg(0), *fragSize, *desc, *tree, *top, *dot); err != nil {
		tracer().Errorf("wordsort: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func tracer() tracing.Trace {
	return tracing.Select("rbset")
}

// run builds the vocabulary of the file at path and prints it with p.
func run(p *console.Printer, path string, fragSize int64, desc, tree bool, top int, dot string) error {
	v := vocab.New()
	defer v.Close()
	err := textfile.Stream(path, fragSize, func(frag string) {
		v.AddText(strings.NewReader(frag))
	})
	if err != nil {
		return err
	}
	tracer().Infof("%s: %d words, %d distinct", path, v.Total(), v.Len())
	if dot != "" {
		if err := writeDot(v, dot); err != nil {
			return err
		}
	}
	label := func(e *vocab.Entry) string {
		return fmt.Sprintf("%s (%d)", e.Word, e.Count)
	}
	switch {
	case top > 0:
		for i, wc := range v.Top(top) {
			fmt.Fprintf(p.Out, "%4d. %s (%d)\n", i+1, wc.Word, wc.Count)
		}
	case tree:
		v.View(func(words *rbset.Set[vocab.Entry]) {
			err = console.Tree(p, words, label)
		})
	case desc:
		v.Reverse(func(word string, count int) bool {
			_, err = fmt.Fprintf(p.Out, "%s (%d)\n", word, count)
			return err == nil
		})
	default:
		v.View(func(words *rbset.Set[vocab.Entry]) {
			err = console.List(p, words, label)
		})
	}
	return err
}

func writeDot(v *vocab.Vocabulary, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	v.View(func(words *rbset.Set[vocab.Entry]) {
		err = rbset.Set2Dot(words, f, func(e *vocab.Entry) string { return e.Word })
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
