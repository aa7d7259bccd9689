package domain

import (
	"fmt"
	"strings"
)

// CardContents holds the user editable fields of a card as parsed from its
// textual form
type CardContents struct {
	Name string
	Desc string
}

// ParseError describes why a card document could not be parsed
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// RenderCard renders a card into its editable textual form: the name as a
// setext heading followed by a blank line and the description.
//
//	Fix login bug
//	=============
//
//	Steps to reproduce...
func RenderCard(c Card) string {
	return Heading(c.Name, "=") + "\n\n" + c.Desc
}

// ParseCardContents parses text produced by RenderCard (and possibly edited
// by a user) back into its fields
func ParseCardContents(text string) (CardContents, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return CardContents{}, &ParseError{Line: 1, Reason: "document is empty"}
	}

	lines := strings.Split(text, "\n")

	name := strings.TrimSpace(lines[0])
	if name == "" {
		return CardContents{}, &ParseError{Line: 1, Reason: "card name is missing"}
	}

	if len(lines) < 2 {
		return CardContents{}, &ParseError{Line: 2, Reason: "heading underline is missing"}
	}
	underline := strings.TrimSpace(lines[1])
	if underline == "" || strings.Trim(underline, "=") != "" {
		return CardContents{}, &ParseError{Line: 2, Reason: "heading underline must consist of '=' characters"}
	}

	if len(lines) == 2 {
		return CardContents{Name: name}, nil
	}
	if strings.TrimSpace(lines[2]) != "" {
		return CardContents{}, &ParseError{Line: 3, Reason: "expected a blank line after the heading"}
	}

	return CardContents{
		Name: name,
		Desc: strings.Join(lines[3:], "\n"),
	}, nil
}

// CardCodec converts cards to and from their editable textual form
type CardCodec struct{}

// Render implements the codec render step
func (CardCodec) Render(c Card) string {
	return RenderCard(c)
}

// Parse implements the codec parse step
func (CardCodec) Parse(text string) (CardContents, error) {
	return ParseCardContents(text)
}
