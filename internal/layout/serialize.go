package layout

import (
	"io"
	"strings"
)

// RemapLine renders one remap as "[source]>[target]".
func RemapLine(src string, t Target) string {
	return strings.ToLower("[" + src + "]>[" + t.Token() + "]")
}

// Lines returns the output lines in order: remaps sorted by source key, then
// macros sorted by trigger.
func (l *Layout) Lines() []string {
	lines := make([]string, 0, len(l.remaps)+len(l.macros))

	for _, src := range l.remaps.SortedKeys() {
		lines = append(lines, RemapLine(src.Token(), l.remaps[src]))
	}

	for _, trigger := range l.Triggers() {
		line := trigger.TriggerToken() + ">" + l.macros[trigger].String()
		lines = append(lines, strings.ToLower(line))
	}

	return lines
}

// String renders the layout in the importer's text format. Lines are joined
// with "\n" and there is no trailing newline.
func (l *Layout) String() string {
	return strings.Join(l.Lines(), "\n")
}

// WriteTo writes the rendered layout to w.
func (l *Layout) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, l.String())
	return int64(n), err
}
