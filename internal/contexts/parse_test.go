package contexts

import (
	"errors"
	"testing"

	cerrors "github.com/streamlens/streamlens/internal/core/errors"
)

func TestParse(t *testing.T) {
	valid := []byte(`[
		{"reaction_to": "funny", "triggers": [{"phrase": "lol", "is_exact": false}]},
		{"reaction_to": "scary", "triggers": [{"phrase": "omg", "is_exact": true}]}
	]`)
	malformed := []byte(`[{"triggers": [{"phrase": "hm", "is_exact": false}]}]`)
	duplicate := []byte(`[{"reaction_to": "funny", "triggers": [{"phrase": "haha", "is_exact": false}]}]`)

	tests := []struct {
		name      string
		docs      [][]byte
		autofix   bool
		wantErr   error
		wantNames []string
	}{
		{
			name:      "two documents concatenated in order",
			docs:      [][]byte{valid, []byte(`[{"reaction_to": "hype", "triggers": []}]`)},
			wantNames: []string{"funny", "scary", "hype"},
		},
		{
			name:    "missing reaction_to fails",
			docs:    [][]byte{valid, malformed},
			wantErr: cerrors.ErrMalformedContext,
		},
		{
			name:      "missing reaction_to skipped with autofix",
			docs:      [][]byte{valid, malformed},
			autofix:   true,
			wantNames: []string{"funny", "scary"},
		},
		{
			name:    "duplicate reaction_to fails",
			docs:    [][]byte{valid, duplicate},
			wantErr: cerrors.ErrDuplicateContext,
		},
		{
			name:      "duplicate triggers concatenated with autofix",
			docs:      [][]byte{valid, duplicate},
			autofix:   true,
			wantNames: []string{"funny", "scary"},
		},
		{
			name:    "all records corrupt under autofix",
			docs:    [][]byte{malformed},
			autofix: true,
			wantErr: cerrors.ErrAllContextsCorrupt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.docs, tt.autofix)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			if len(got) != len(tt.wantNames) {
				t.Fatalf("Parse() returned %d contexts, want %d", len(got), len(tt.wantNames))
			}

			for i, ctx := range got {
				if ctx.ReactionTo != tt.wantNames[i] {
					t.Errorf("context %d = %q, want %q", i, ctx.ReactionTo, tt.wantNames[i])
				}
			}
		})
	}
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	if _, err := Parse([][]byte{[]byte(`{not json`)}, false); err == nil {
		t.Fatal("Parse() succeeded on invalid json")
	}
}

func TestParseConcatenatesDuplicateTriggers(t *testing.T) {
	docs := [][]byte{
		[]byte(`[{"reaction_to": "funny", "triggers": [{"phrase": "lol", "is_exact": false}]}]`),
		[]byte(`[{"reaction_to": "funny", "triggers": [{"phrase": "haha", "is_exact": false}]}]`),
	}

	got, err := Parse(docs, true)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("Parse() returned %d contexts, want 1", len(got))
	}

	if len(got[0].Triggers) != 2 {
		t.Fatalf("merged context has %d triggers, want 2", len(got[0].Triggers))
	}

	if got[0].Triggers[0].Phrase != "lol" || got[0].Triggers[1].Phrase != "haha" {
		t.Errorf("merged triggers = %+v", got[0].Triggers)
	}
}
