package ranges

import (
	"cmp"
	"fmt"
	"io"
)

// Map2Dot outputs the internal structure of a MultiMap in Graphviz DOT
// format (for debugging purposes).
//
// The rendering shows the dual-array layout: one node per entry index,
// linking the interval sequence to the value sequence. Sub-range views are
// rendered with their window annotated on the map node.
func Map2Dot[K cmp.Ordered, V any](m MultiMap[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	label := fmt.Sprintf("range map\\n%d entries", m.Size())
	if m.clipped {
		label += fmt.Sprintf("\\nwindow %s", m.window)
	}
	fmt.Fprintf(w, "\"map\" [label=\"%s\" shape=box style=filled fillcolor=lightgrey];\n", label)
	for i := 0; i < m.Size(); i++ {
		fmt.Fprintf(w, "\"iv%d\" [label=\"%s\" shape=ellipse];\n", i, m.rangeAt(i))
		fmt.Fprintf(w, "\"val%d\" [label=\"%v\" shape=rect];\n", i, m.values.At(i))
		fmt.Fprintf(w, "\"map\" -> \"iv%d\";\n", i)
		fmt.Fprintf(w, "\"iv%d\" -> \"val%d\" [style=dotted];\n", i, i)
	}
	io.WriteString(w, "}\n")
}
