// Package manifest parses npm package.json files defensively.
//
// Real-world manifests vary wildly: extra fields, missing name or version,
// scripts declared as null. The Manifest type tolerates all of that; only
// content that cannot be decoded into the manifest shape at all (malformed
// JSON, a scripts object with non-string values) is an error, and that
// error carries the file path so the scanner can log it and move on.
package manifest
