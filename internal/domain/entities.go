package domain

// Board represents a Trello board. Lists is only populated when the board
// was fetched with its nested lists and cards.
type Board struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Closed bool   `json:"closed"`
	URL    string `json:"url"`
	Lists  []List `json:"lists,omitempty"`
}

// List represents a list (column) on a board
type List struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Closed  bool   `json:"closed"`
	BoardID string `json:"idBoard"`
	Cards   []Card `json:"cards,omitempty"`
}

// Card represents a card within a list
type Card struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Desc   string  `json:"desc"`
	Closed bool    `json:"closed"`
	URL    string  `json:"url"`
	ListID string  `json:"idList"`
	Labels []Label `json:"labels,omitempty"`
}

// Label represents a board label that can be applied to cards
type Label struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	BoardID string `json:"idBoard"`
}

// Attachment represents a file or link attached to a card
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SearchResult holds the boards and cards matched by a search query
type SearchResult struct {
	Boards []Board `json:"boards"`
	Cards  []Card  `json:"cards"`
}

// Named is implemented by every entity that can be looked up by name
type Named interface {
	GetName() string
}

func (b Board) GetName() string { return b.Name }
func (l List) GetName() string  { return l.Name }
func (c Card) GetName() string  { return c.Name }
func (l Label) GetName() string { return l.Name }

// HasLabel reports whether the card carries the label with the given ID
func (c Card) HasLabel(labelID string) bool {
	for _, l := range c.Labels {
		if l.ID == labelID {
			return true
		}
	}
	return false
}
