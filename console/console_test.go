package console

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/rbset"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type num struct {
	v    int
	link rbset.Node[num]
}

func makeSet(vs ...int) *rbset.Set[num] {
	s := rbset.New(func(a, b *num) int {
		switch {
		case a.v < b.v:
			return -1
		case a.v > b.v:
			return 1
		}
		return 0
	}, func(n *num) *rbset.Node[num] { return &n.link })
	for _, v := range vs {
		s.Add(&num{v: v})
	}
	return s
}

func label(n *num) string {
	return strconv.Itoa(n.v)
}

func TestListColumns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.LineWidth = 12 // 3 columns of width 2+2
	s := makeSet(10, 3, 7, 25, 1)
	if err := List(p, s, label); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", buf.String())
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, have %d", len(lines))
	}
	if strings.Fields(lines[0])[0] != "1" || strings.Fields(lines[1])[1] != "25" {
		t.Errorf("expected ascending order across columns, have %q", buf.String())
	}
}

func TestListCountsDigitsNarrow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	p := NewPrinter(&bytes.Buffer{}, false)
	for _, c := range []struct {
		s string
		w int
	}{
		{"1", 1}, {"10", 2}, {"abc", 3}, {"word (12)", 9}, {"世界", 4},
	} {
		if w := p.width(c.s); w != c.w {
			t.Errorf("expected width of %q to be %d, have %d", c.s, c.w, w)
		}
	}
	var buf bytes.Buffer
	p = NewPrinter(&buf, false)
	p.LineWidth = 8 // 2 columns of width 2+2
	words := map[int]string{1: "1", 2: "22", 3: "ab", 4: "cd"}
	if err := List(p, makeSet(1, 2, 3, 4), func(n *num) string { return words[n.v] }); err != nil {
		t.Fatal(err)
	}
	expected := "1   22\nab  cd\n"
	if buf.String() != expected {
		t.Errorf("expected %q, have %q", expected, buf.String())
	}
}

func TestListEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	var buf bytes.Buffer
	if err := List(NewPrinter(&buf, false), makeSet(), label); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for empty set")
	}
}

func TestTreeSideways(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	var buf bytes.Buffer
	s := makeSet(2, 1, 3)
	if err := Tree(NewPrinter(&buf, false), s, label); err != nil {
		t.Fatal(err)
	}
	expected := "    3\n2\n    1\n"
	if buf.String() != expected {
		t.Errorf("expected\n%s\nhave\n%s", expected, buf.String())
	}
}
