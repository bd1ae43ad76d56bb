package scanner

import (
	"fmt"
	"path/filepath"

	"github.com/Garbee/script-detection/internal/files/filesystem"
	"github.com/Garbee/script-detection/internal/manifest"
	"github.com/Garbee/script-detection/pkg/scriptdetect"
)

// Scanner discovers package.json manifests beneath a root directory and
// reports the ones that declare lifecycle scripts.
//
// Files are processed one at a time in discovery order; the only shared
// state is the accumulating result slice, which a single Scan call owns.
type Scanner struct {
	fsProvider filesystem.Provider
	logger     scriptdetect.Logger
}

// NewScanner creates a scanner backed by the OS filesystem.
// Panics if logger is nil.
func NewScanner(logger scriptdetect.Logger) *Scanner {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		fsProvider: filesystem.NewOSFileSystem(),
		logger:     logger,
	}
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if logger or fsProvider is nil.
func NewScannerWithFS(logger scriptdetect.Logger, fsProvider filesystem.Provider) *Scanner {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// Scan walks rootPath, parses every package.json beneath it, and returns a
// finding for each package that declares at least one lifecycle script.
// Results are in lexicographic path order.
//
// Two failure classes exist. If the root itself cannot be enumerated, Scan
// returns an error wrapping scriptdetect.ErrRootInaccessible and no partial
// result. Unreadable or malformed individual manifests are logged with
// their path and skipped; they never abort the scan.
func (s *Scanner) Scan(rootPath string) ([]scriptdetect.Finding, error) {
	dir, err := s.fsProvider.Open(rootPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", scriptdetect.ErrRootInaccessible, rootPath, err)
	}

	var findings []scriptdetect.Finding

	walkErr := dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			// An entry below the root could not be reached. Best-effort
			// audit: surface it on the error stream and keep walking.
			s.logger.Error("skipping unreadable path: %v", err)
			return nil
		}

		if file.Info().IsDir() {
			return nil
		}
		if filepath.Base(file.Path()) != scriptdetect.ManifestFileName {
			return nil
		}

		if finding, ok := s.processManifest(file); ok {
			findings = append(findings, finding)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("%w: %s: %w", scriptdetect.ErrRootInaccessible, rootPath, walkErr)
	}

	return findings, nil
}

// processManifest reads and parses one manifest file. The boolean result is
// false when the file produced no finding, whether because it was skipped
// (no lifecycle scripts) or because it could not be read or parsed.
func (s *Scanner) processManifest(file filesystem.File) (scriptdetect.Finding, bool) {
	content, err := file.ReadContent()
	if err != nil {
		s.logger.Error("failed to read %s: %v", file.Path(), err)
		return scriptdetect.Finding{}, false
	}

	m, err := manifest.Parse(content, file.Path())
	if err != nil {
		s.logger.Error("%v", err)
		return scriptdetect.Finding{}, false
	}

	if !m.HasScripts() {
		s.logger.Verbose("no scripts in %s", file.Path())
		return scriptdetect.Finding{}, false
	}

	scripts := scriptdetect.FilterLifecycleScripts(m.Scripts)
	if scripts.IsEmpty() {
		s.logger.Verbose("no lifecycle scripts in %s", file.Path())
		return scriptdetect.Finding{}, false
	}

	return scriptdetect.Finding{
		Name:    m.Name,
		Version: m.Version,
		Scripts: scripts,
		Path:    file.Path(),
	}, true
}

// Verify Scanner implements the interface at compile time
var _ scriptdetect.ManifestScanner = (*Scanner)(nil)
