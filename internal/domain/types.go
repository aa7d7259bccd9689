package domain

import (
	"fmt"
	"strings"
)

// ObjectType identifies which kind of Trello object an ID refers to
type ObjectType int

const (
	ObjectTypeUnknown ObjectType = iota
	ObjectTypeBoard
	ObjectTypeList
	ObjectTypeCard
)

func (t ObjectType) String() string {
	switch t {
	case ObjectTypeBoard:
		return "board"
	case ObjectTypeList:
		return "list"
	case ObjectTypeCard:
		return "card"
	default:
		return "unknown"
	}
}

// ParseObjectType converts a user supplied type name into an ObjectType
func ParseObjectType(s string) (ObjectType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "board", "b":
		return ObjectTypeBoard, nil
	case "list", "l":
		return ObjectTypeList, nil
	case "card", "c":
		return ObjectTypeCard, nil
	default:
		return ObjectTypeUnknown, fmt.Errorf("unknown object type %q (expected board, list or card)", s)
	}
}
