package core

import (
	"errors"
	"testing"
)

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   *Entry
		wantErr error
	}{
		{
			name: "valid entry",
			entry: &Entry{
				Word:        "akwa",
				WordClass:   WordClassNoun,
				Definitions: []string{"cloth"},
			},
			wantErr: nil,
		},
		{
			name: "valid entry without definitions",
			entry: &Entry{
				Word:      "bia",
				WordClass: WordClassActiveVerb,
			},
			wantErr: nil,
		},
		{
			name: "valid entry with english only example",
			entry: &Entry{
				Word:      "bia",
				WordClass: WordClassActiveVerb,
				Examples:  []Example{{English: "come here"}},
			},
			wantErr: nil,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantErr: ErrInvalidEntry,
		},
		{
			name: "empty word",
			entry: &Entry{
				Word:      "  ",
				WordClass: WordClassNoun,
			},
			wantErr: ErrEmptyWord,
		},
		{
			name: "unknown word class",
			entry: &Entry{
				Word:      "akwa",
				WordClass: WordClass("noun"),
			},
			wantErr: ErrInvalidWordClass,
		},
		{
			name: "missing word class",
			entry: &Entry{
				Word: "akwa",
			},
			wantErr: ErrInvalidWordClass,
		},
		{
			name: "empty example",
			entry: &Entry{
				Word:      "akwa",
				WordClass: WordClassNoun,
				Examples:  []Example{{Igbo: "Akwa m", English: "My cloth"}, {}},
			},
			wantErr: ErrEmptyExample,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntry(tt.entry)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateEntry() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateEntry() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEntry() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidEntry) {
				t.Errorf("ValidateEntry() error = %v, want wrapped %v", err, ErrInvalidEntry)
			}
		})
	}
}

func TestValidateWordClass(t *testing.T) {
	for _, wc := range WordClasses {
		if err := ValidateWordClass(wc); err != nil {
			t.Errorf("ValidateWordClass(%q) error = %v, want nil", wc, err)
		}
	}

	if err := ValidateWordClass("adj"); !errors.Is(err, ErrInvalidWordClass) {
		t.Errorf("ValidateWordClass(\"adj\") error = %v, want %v", err, ErrInvalidWordClass)
	}
}
