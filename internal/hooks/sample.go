package hooks

import _ "embed"

//go:embed sample.yaml
var sampleConfig []byte

// SampleConfig returns a starter hook document: two remote sources at
// pinned revisions plus one local hook.
func SampleConfig() []byte {
	return sampleConfig
}
