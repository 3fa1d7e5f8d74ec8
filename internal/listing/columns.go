package listing

// DefaultHidden returns the keys hidden when no preference is stored.
func DefaultHidden(cols []Column) []string {
	var out []string
	for _, c := range cols {
		if c.HiddenByDefault && !c.Locked {
			out = append(out, c.Key)
		}
	}
	return out
}

// SanitizeHidden keeps only keys of known, hideable columns, without duplicates.
func SanitizeHidden(cols []Column, hidden []string) []string {
	known := make(map[string]bool, len(cols))
	for _, c := range cols {
		known[c.Key] = !c.Locked
	}
	seen := make(map[string]bool, len(hidden))
	out := make([]string, 0, len(hidden))
	for _, k := range hidden {
		if known[k] && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// VisibleColumns applies a stored preference. A nil preference means "never
// saved" and falls back to the column defaults.
func VisibleColumns(cols []Column, hidden []string) []Column {
	if hidden == nil {
		hidden = DefaultHidden(cols)
	}
	off := make(map[string]bool, len(hidden))
	for _, k := range hidden {
		off[k] = true
	}
	out := make([]Column, 0, len(cols))
	for _, c := range cols {
		if c.Locked || !off[c.Key] {
			out = append(out, c)
		}
	}
	return out
}
