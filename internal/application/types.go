package application

import "tro/internal/domain"

// Re-export object types for use by adapters
type ObjectType = domain.ObjectType

const (
	ObjectTypeUnknown = domain.ObjectTypeUnknown
	ObjectTypeBoard   = domain.ObjectTypeBoard
	ObjectTypeList    = domain.ObjectTypeList
	ObjectTypeCard    = domain.ObjectTypeCard
)

// Re-export domain types for use by adapters
type (
	Board        = domain.Board
	List         = domain.List
	Card         = domain.Card
	Label        = domain.Label
	Attachment   = domain.Attachment
	SearchResult = domain.SearchResult
	MatchError   = domain.MatchError
)

// ParseObjectType converts a type name such as "board" or "c" into an
// ObjectType
func ParseObjectType(s string) (ObjectType, error) {
	t, err := domain.ParseObjectType(s)
	if err != nil {
		return t, &TypeError{Value: s}
	}
	return t, nil
}
