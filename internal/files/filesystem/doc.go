// Package filesystem provides the filesystem abstraction used by the
// manifest scanner.
//
// The scanner only ever reads; the interfaces here expose exactly the
// operations it needs (open a directory, walk it, read file content) so
// tests can run against an in-memory tree instead of the OS.
//
// Implementations:
//   - OSFileSystem: production implementation backed by the OS filesystem
//   - MemoryFileSystem: in-memory implementation for testing
//
// Both providers walk in lexicographic path order, which is what makes scan
// output deterministic across runs.
package filesystem
