package btree

import (
	"fmt"
	"io"
)

// Dot outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes).
func (m *Map[K, V]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=record];\n")
	nodelist, edgelist := "", ""
	id := 0
	var walk func(nd *node[K, V]) int
	walk = func(nd *node[K, V]) int {
		ID := id
		id++
		label := ""
		for j, k := range nd.keys {
			if j > 0 {
				label += "|"
			}
			label += fmt.Sprintf("%v", k)
		}
		style := nodeDotStyle(nd.isLeaf())
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, style)
		for _, child := range nd.children {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, walk(child))
		}
		return ID
	}
	walk(m.root)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyle(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",fillcolor=white"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
	}
	return s
}
