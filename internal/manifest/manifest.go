package manifest

import (
	"encoding/json"
)

// Manifest is the subset of package.json this tool cares about. Every other
// field real manifests carry (dependencies, engines, exports, ...) is
// ignored by design, not an error.
type Manifest struct {
	// Name is the declared package name. Optional; pathological manifests
	// omit it.
	Name string `json:"name"`

	// Version is the declared package version. Optional.
	Version string `json:"version"`

	// Scripts maps script names to command strings. nil when the manifest
	// has no scripts field (or declares it as null).
	Scripts map[string]string `json:"scripts"`
}

// HasScripts reports whether the manifest declares any scripts at all.
func (m *Manifest) HasScripts() bool {
	return len(m.Scripts) > 0
}

// Parse decodes package.json content. path is carried into any error so the
// caller can log which manifest was unreadable.
//
// Parsing is strict about the manifest shape (scripts must map names to
// strings) but loose about everything else: unknown fields are ignored and
// name, version, and scripts are all optional. A manifest that fails to
// decode is a per-file recoverable condition for the scanner, never a fatal
// one.
func Parse(data []byte, path string) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return &m, nil
}
