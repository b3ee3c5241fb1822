package layout

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// JSON renders a description of the layout for inspection: the platform, each
// remap and each macro with its tokens and rendered line, in output order.
func (l *Layout) JSON() (string, error) {
	doc := `{"remaps":[],"macros":[]}`
	var err error

	if doc, err = sjson.Set(doc, "platform", l.platform.String()); err != nil {
		return "", fmt.Errorf("setting platform: %w", err)
	}

	for i, src := range l.remaps.SortedKeys() {
		t := l.remaps[src]
		entry := map[string]any{
			"from":  src.Token(),
			"layer": src.Layer.String(),
			"to":    nil,
			"line":  RemapLine(src.Token(), t),
		}
		if dst, ok := t.KeyLayer(); ok {
			entry["to"] = dst.Token()
		}
		if doc, err = sjson.Set(doc, fmt.Sprintf("remaps.%d", i), entry); err != nil {
			return "", fmt.Errorf("setting remap %s: %w", src, err)
		}
	}

	lines := l.Lines()[len(l.remaps):]
	for i, trigger := range l.Triggers() {
		m := l.macros[trigger]
		entry := map[string]any{
			"trigger":   trigger.String(),
			"layer":     trigger.Layer.String(),
			"fragments": m.Len(),
			"body":      m.String(),
			"line":      lines[i],
		}
		if doc, err = sjson.Set(doc, fmt.Sprintf("macros.%d", i), entry); err != nil {
			return "", fmt.Errorf("setting macro %s: %w", trigger, err)
		}
	}

	return doc, nil
}
