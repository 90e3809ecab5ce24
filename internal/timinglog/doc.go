// Package timinglog appends run summaries to a shared log file.
//
// Several processes may append to the same file; each append holds an
// exclusive advisory lock on the file so summaries never interleave.
package timinglog
