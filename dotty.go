package rbset

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/rbset/rbtree"
)

type nodeids[T any] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Set2Dot outputs the internal tree structure of a set in Graphviz DOT format
// (for debugging purposes). label renders an element; if it is nil, elements
// are printed with %v.
func Set2Dot[T any](s *Set[T], w io.Writer, label func(*T) string) error {
	if label == nil {
		label = func(obj *T) string { return fmt.Sprintf("%v", *obj) }
	}
	var nodelist, edgelist strings.Builder
	ids := newtable[T]()
	var walk func(n *Node[T])
	walk = func(n *Node[T]) {
		ID := ids.alloc(n)
		l := strings.ReplaceAll(label(n.Owner()), `"`, `\"`)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, l, nodeDotStyles(n.Color()))
		for _, c := range [...]*Node[T]{n.Left(), n.Right()} {
			if c == nil {
				nilid := ids.max
				ids.max++
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(c))
			walk(c)
		}
	}
	if root := s.tree.Root(); root != nil {
		walk(root)
	}
	var err error
	write := func(str string) {
		if err == nil {
			_, err = io.WriteString(w, str)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("set DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,fillcolor=black,style=filled,shape=box,fixedsize=true,width=.2,height=.15]"
}

func nodeDotStyles(color rbtree.Color) string {
	s := ",style=filled,shape=circle"
	if color == rbtree.Red {
		s += ",color=\"#cc0000\",fillcolor=\"#ff5544\",fontcolor=white"
	} else {
		s += ",color=black,fillcolor=\"#333333\",fontcolor=white"
	}
	return s
}
