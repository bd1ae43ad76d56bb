package scriptdetect

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	findings, err := scanner.Scan(root)
//	if errors.Is(err, scriptdetect.ErrRootInaccessible) {
//	    // The root enumeration itself failed; no partial result exists.
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRootInaccessible indicates the scan root could not be enumerated at
	// all. This is distinct from per-file parse failures, which are logged
	// and skipped without aborting the scan.
	ErrRootInaccessible = errors.New("scan root inaccessible")

	// ErrFindingsPresent indicates the scan surfaced lifecycle scripts and
	// the caller asked for a failing exit in that case.
	ErrFindingsPresent = errors.New("lifecycle scripts found")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrRootInaccessible):
		return ExitRootInaccessible
	case errors.Is(err, ErrFindingsPresent):
		return ExitFindingsPresent
	}

	// Check for cobra usage error patterns
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "accepts at most") ||
		strings.Contains(errStr, "requires at least") {
		return ExitUsageError
	}

	return ExitGeneralError
}
