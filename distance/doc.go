// Package distance provides the distance kernel used for nearest-center search.
//
// Only squared Euclidean distance is offered: it orders candidates the same
// way as the true Euclidean distance without the square root.
package distance
