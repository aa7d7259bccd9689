package domain

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Heading renders text as a setext heading underlined with ch
func Heading(text string, ch string) string {
	width := max(runewidth.StringWidth(text), 1)
	return text + "\n" + strings.Repeat(ch, width)
}

// RenderLabels renders labels as "[name] [name]"
func RenderLabels(labels []Label) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		name := l.Name
		if name == "" {
			name = l.Color
		}
		parts = append(parts, "["+name+"]")
	}
	return strings.Join(parts, " ")
}

// RenderList renders a list and its cards as markdown-ish text
func RenderList(l List) string {
	var b strings.Builder
	b.WriteString(Heading(l.Name, "-"))
	b.WriteString("\n")
	for _, c := range l.Cards {
		b.WriteString("* ")
		b.WriteString(c.Name)
		if labels := RenderLabels(c.Labels); labels != "" {
			b.WriteString(" ")
			b.WriteString(labels)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderBoard renders a board with its nested lists
func RenderBoard(bd Board) string {
	var b strings.Builder
	b.WriteString(Heading(bd.Name, "="))
	b.WriteString("\n")
	for _, l := range bd.Lists {
		b.WriteString("\n")
		b.WriteString(RenderList(l))
	}
	return b.String()
}

// RenderAttachment renders an attachment as its name followed by its URL
func RenderAttachment(a Attachment) string {
	return a.Name + "\n" + a.URL
}
