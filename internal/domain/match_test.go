package domain

import (
	"errors"
	"testing"
)

func TestMatchOne(t *testing.T) {
	boards := []Board{
		{ID: "1", Name: "Work"},
		{ID: "2", Name: "Work Archive"},
		{ID: "3", Name: "Home"},
		{ID: "4", Name: "C++ notes"},
	}

	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		wantID     string
		wantErr    error
	}{
		{name: "unique partial", pattern: "Hom", wantID: "3"},
		{name: "exact wins over partial", pattern: "Work", wantID: "1"},
		{name: "regex", pattern: "^Work A", wantID: "2"},
		{name: "case sensitive miss", pattern: "home", wantErr: ErrNoMatch},
		{name: "ignore case", pattern: "home", ignoreCase: true, wantID: "3"},
		{name: "ambiguous", pattern: "o", wantErr: ErrMultipleMatches},
		{name: "invalid regex matched literally", pattern: "C++", wantID: "4"},
		{name: "no match", pattern: "Garden", wantErr: ErrNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchOne(boards, "board", tt.pattern, tt.ignoreCase)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}

func TestMatchError_ListsCandidates(t *testing.T) {
	_, err := MatchOne([]Card{{Name: "alpha"}, {Name: "alphabet"}}, "card", "alp", false)

	var me *MatchError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MatchError, got %T", err)
	}
	if len(me.Candidates) != 2 {
		t.Errorf("Candidates = %v, want 2 entries", me.Candidates)
	}
	want := `card pattern "alp" matches multiple objects: alpha, alphabet`
	if me.Error() != want {
		t.Errorf("Error() = %q, want %q", me.Error(), want)
	}
}

func TestParseObjectType(t *testing.T) {
	tests := []struct {
		in      string
		want    ObjectType
		wantErr bool
	}{
		{"board", ObjectTypeBoard, false},
		{"LIST", ObjectTypeList, false},
		{"c", ObjectTypeCard, false},
		{"label", ObjectTypeUnknown, true},
	}
	for _, tt := range tests {
		got, err := ParseObjectType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseObjectType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseObjectType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
