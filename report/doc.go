// Package report renders clustering results.
//
// Write produces the human-readable console report, WriteTimings the timing
// summary that is also appended to the timing log, and Export a
// machine-readable document that can optionally be compressed with LZ4 or
// Zstandard.
package report
