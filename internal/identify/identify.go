// Package identify derives type tags from filenames so hooks can restrict
// themselves to the kinds of files they understand.
package identify

import (
	"path/filepath"
	"strings"
)

// TagFile is carried by every path.
const TagFile = "file"

var extensionTags = map[string][]string{
	".py":       {"python", "text"},
	".pyi":      {"python", "text"},
	".go":       {"go", "text"},
	".rs":       {"rust", "text"},
	".rb":       {"ruby", "text"},
	".js":       {"javascript", "text"},
	".ts":       {"typescript", "ts", "text"},
	".tsx":      {"typescript", "tsx", "text"},
	".yaml":     {"yaml", "text"},
	".yml":      {"yaml", "text"},
	".json":     {"json", "text"},
	".toml":     {"toml", "text"},
	".ini":      {"ini", "text"},
	".md":       {"markdown", "text"},
	".markdown": {"markdown", "text"},
	".rst":      {"rst", "text"},
	".sh":       {"shell", "text"},
	".bash":     {"shell", "text"},
	".zsh":      {"shell", "text"},
	".txt":      {"plain-text", "text"},
	".csv":      {"csv", "text"},
	".xml":      {"xml", "text"},
	".html":     {"html", "text"},
	".css":      {"css", "text"},
	".sql":      {"sql", "text"},
	".proto":    {"proto", "text"},
	".tf":       {"terraform", "text"},

	".png":  {"image", "png", "binary"},
	".jpg":  {"image", "jpeg", "binary"},
	".jpeg": {"image", "jpeg", "binary"},
	".gif":  {"image", "gif", "binary"},
	".pdf":  {"pdf", "binary"},
	".zip":  {"zip", "binary"},
	".gz":   {"gzip", "binary"},
}

var nameTags = map[string][]string{
	"Dockerfile": {"dockerfile", "text"},
	"Makefile":   {"makefile", "text"},
	"go.mod":     {"go-mod", "text"},
	"go.sum":     {"go-sum", "text"},
}

var knownTags = func() map[string]bool {
	m := map[string]bool{TagFile: true}
	for _, tags := range extensionTags {
		for _, t := range tags {
			m[t] = true
		}
	}
	for _, tags := range nameTags {
		for _, t := range tags {
			m[t] = true
		}
	}
	return m
}()

// IsKnownTag reports whether the classifier can produce the tag.
func IsKnownTag(tag string) bool {
	return knownTags[tag]
}

// Tags returns the type tags for a path. Every path carries TagFile; the
// rest come from the base name or the extension, lowercased.
func Tags(path string) []string {
	tags := []string{TagFile}
	base := filepath.Base(path)
	if extra, ok := nameTags[base]; ok {
		return append(tags, extra...)
	}
	ext := strings.ToLower(filepath.Ext(base))
	if extra, ok := extensionTags[ext]; ok {
		return append(tags, extra...)
	}
	return tags
}

// Matches reports whether the path carries every wanted tag. An empty want
// list matches everything.
func Matches(path string, want []string) bool {
	if len(want) == 0 {
		return true
	}
	tags := Tags(path)
	for _, w := range want {
		if !contains(tags, w) {
			return false
		}
	}
	return true
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
