package errors

import "testing"

func TestValidateDocumentName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "report", false},
		{"valid with dash", "annual-report", false},
		{"valid with dots", "report.v2", false},
		{"valid with spaces", "annual report 2026", false},
		{"empty", "", true},
		{"path traversal", "../etc/passwd", true},
		{"slash", "a/b", true},
		{"backslash", "a\\b", true},
		{"null byte", "a\x00b", true},
		{"control char", "a\nb", true},
		{"too long", string(make([]byte, 300)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocumentName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDocumentName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty inherits", "", false},
		{"short form", "#abc", false},
		{"long form", "#00ff00", false},
		{"with alpha", "#00ff00cc", false},
		{"uppercase hex", "#AABBCC", false},
		{"missing hash", "00ff00", true},
		{"bad length", "#abcd", true},
		{"non-hex", "#gghhii", true},
		{"named color", "red", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
