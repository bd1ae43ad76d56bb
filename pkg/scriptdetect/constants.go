package scriptdetect

// ManifestFileName is the exact base name of npm package manifests.
// Matching is case-sensitive; npm itself only reads "package.json".
const ManifestFileName = "package.json"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Scan completed, no policy violation
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or flag values
	ExitRootInaccessible = 11 // Scan root could not be traversed at all
	ExitFindingsPresent  = 12 // Findings exist and --fail-on-findings is set
)
