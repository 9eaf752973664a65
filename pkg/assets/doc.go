// Package assets publishes content-addressed build artifacts.
//
// Every first-party file is written as <base>-<hash>.<ext>, where hash is
// the first [HashWidth] hex characters of the SHA-256 digest of its
// content. The name is a pure function of the bytes: identical content
// always yields the same name, and any change yields a new one, so the
// files can be cached indefinitely.
//
// # Outputs
//
// A [Pipeline] run produces three lookup tables:
//
//   - [Manifest]: logical name to hashed file ("style.css" ->
//     "assets/style-0a1b2c3d.css").
//   - [ModuleManifest]: vendored module to hashed directory ("d3-array" ->
//     "d3/d3-array-0a1b2c3d"). A module's hash covers all files of its
//     tree, concatenated in sorted path order.
//   - [ImportMap]: bare specifier to URL, for ES-module resolution in the
//     browser.
//
// The local modules in the import map come from an explicit list in
// [Inputs]; the output directory is never scanned for them.
//
// # Cleanup
//
// Before writing, [Clean] removes hashed files and directories left by
// earlier runs, so repeated builds do not accumulate orphaned artifacts.
//
// # Failures
//
// A missing first-party source is skipped with a MISSING_SOURCE_ASSET
// warning. A missing module tree is skipped with a MISSING_VENDORED_MODULE
// warning, and a tree without an entry point is copied but left out of the
// import map with a MISSING_ENTRY_POINT warning. Failing to write the
// output is an OUTPUT_WRITE error and ends the run.
package assets
