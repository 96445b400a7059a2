package identify

import (
	"reflect"
	"testing"
)

func TestTags(t *testing.T) {
	tests := []struct {
		path     string
		expected []string
	}{
		{"main.py", []string{"file", "python", "text"}},
		{"src/pkg/main.go", []string{"file", "go", "text"}},
		{"config.YAML", []string{"file", "yaml", "text"}},
		{"web/app.ts", []string{"file", "typescript", "ts", "text"}},
		{"notes.md", []string{"file", "markdown", "text"}},
		{"deploy/Dockerfile", []string{"file", "dockerfile", "text"}},
		{"go.mod", []string{"file", "go-mod", "text"}},
		{"logo.png", []string{"file", "image", "png", "binary"}},
		{"LICENSE", []string{"file"}},
		{"archive.tar.gz", []string{"file", "gzip", "binary"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := Tags(tt.path)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tags(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		want     []string
		expected bool
	}{
		{"empty want matches anything", "main.py", nil, true},
		{"single tag", "main.py", []string{"python"}, true},
		{"universal tag", "LICENSE", []string{"file"}, true},
		{"all tags required", "main.py", []string{"python", "text"}, true},
		{"one tag missing", "main.py", []string{"python", "binary"}, false},
		{"wrong type", "main.go", []string{"python"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Matches(tt.path, tt.want)
			if got != tt.expected {
				t.Errorf("Matches(%q, %v) = %v, want %v", tt.path, tt.want, got, tt.expected)
			}
		})
	}
}
