package errors

import (
	"strings"
	"testing"
)

func TestValidateElementID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "chart", false},
		{"valid with dash", "main-chart", false},
		{"valid with underscore", "main_chart", false},
		{"valid with digits", "chart2", false},
		{"valid with colon and dot", "ns:chart.v1", false},

		{"empty", "", true},
		{"too long", "c" + strings.Repeat("x", 200), true},
		{"leading digit", "1chart", true},
		{"whitespace", "my chart", true},
		{"quote", `chart"`, true},
		{"angle bracket", "<chart>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateElementID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateElementID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidElementID) {
				t.Errorf("ValidateElementID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidElementID)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "charts/sales.toml", false},
		{"absolute", "/tmp/sales.json", false},
		{"dotted", "../shared/chart.yaml", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 600), true},
		{"null byte", "chart\x00.toml", true},
		{"newline", "chart\n.toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateListenAddr(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"loopback", "127.0.0.1:8808", false},
		{"all interfaces", ":8080", false},
		{"ephemeral", "localhost:0", false},

		{"empty", "", true},
		{"missing port", "localhost", true},
		{"bad port", "localhost:http", true},
		{"port out of range", "localhost:70000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateListenAddr(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateListenAddr(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
