// Package parallel provides the fork-join loops the clustering phases run on.
//
// Every loop returns only after all of its work has finished, which gives the
// caller a barrier between phases.
package parallel
