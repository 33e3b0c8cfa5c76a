package tableau

import (
	"strconv"
	"strings"
)

// DOT serializes the finished proof tree as a Graphviz digraph. Node
// labels list each fact as "[k] pretty(phi): b", 1-based for human
// readability, with "\nx" appended when the node is closed. Edge labels
// carry the 1-based fact number that triggered the extension. Node indices
// in the digraph body are the engine's own 0-based NodeIds.
func (e *Engine) DOT() string {
	var sb strings.Builder
	sb.WriteString("digraph A {\n")
	for id, n := range e.Nodes {
		sb.WriteString("  ")
		sb.WriteString(nodeName(NodeId(id)))
		sb.WriteString(" [label=\"")
		for i, fact := range n.Facts {
			if i > 0 {
				sb.WriteString("\\n")
			}
			sb.WriteString("[")
			sb.WriteString(strconv.Itoa(int(fact.ID) + 1))
			sb.WriteString("] ")
			sb.WriteString(escapeLabel(Pretty(fact.F)))
			sb.WriteString(": ")
			sb.WriteString(boolLabel(fact.Expect))
		}
		if n.Closed {
			sb.WriteString("\\nx")
		}
		sb.WriteString("\"]\n")
	}
	for _, ed := range e.Edges {
		sb.WriteString("  ")
		sb.WriteString(nodeName(ed.From))
		sb.WriteString(" -> ")
		sb.WriteString(nodeName(ed.To))
		sb.WriteString(" [label=\"")
		sb.WriteString(strconv.Itoa(int(ed.IntroducedBy) + 1))
		sb.WriteString("\"]\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

func nodeName(id NodeId) string { return strconv.Itoa(int(id)) }

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
