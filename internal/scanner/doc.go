// Package scanner implements lifecycle-script discovery over a dependency
// tree.
//
// A scan walks the root, parses every package.json it finds, and filters
// each manifest's scripts against the audited hook set. Per-file failures
// are logged and skipped so one corrupt manifest can never blank out an
// entire audit; only failure to enumerate the root at all is fatal.
package scanner
