package domain

// Filter returns a copy of the list keeping only cards that carry a label
// whose name matches pattern (case-insensitive)
func (l List) Filter(pattern string) List {
	m := NewNameMatcher(pattern, true)

	out := l
	out.Cards = nil
	for _, c := range l.Cards {
		for _, label := range c.Labels {
			if m.Match(label.Name) {
				out.Cards = append(out.Cards, c)
				break
			}
		}
	}
	return out
}

// Filter returns a copy of the board with every list filtered by label
func (b Board) Filter(pattern string) Board {
	out := b
	out.Lists = make([]List, len(b.Lists))
	for i, l := range b.Lists {
		out.Lists[i] = l.Filter(pattern)
	}
	return out
}
