// Package pkmeans provides a parallel K-means clustering engine.
//
// Points in an n-dimensional real space are partitioned into k clusters by
// repeating two data-parallel phases until no point moves or an iteration cap
// is reached:
//
//  1. Assignment: every point moves to the cluster with the nearest centroid
//     (squared Euclidean distance, ties go to the lowest cluster id).
//  2. Recompute: every non-empty cluster's centroid becomes the mean of its
//     members. Empty clusters keep their centroid.
//
// Each phase finishes completely before the next one starts, so centroids are
// stable while points are assigned and memberships are stable while centroids
// are recomputed.
//
// # Quick Start
//
//	points := []*pkmeans.Point{
//	    pkmeans.NewPoint(0, []float64{1}, ""),
//	    pkmeans.NewPoint(1, []float64{2}, ""),
//	    pkmeans.NewPoint(2, []float64{9}, ""),
//	    pkmeans.NewPoint(3, []float64{10}, ""),
//	}
//
//	engine, _ := pkmeans.New(2, pkmeans.WithSeed(42), pkmeans.WithMaxIterations(10))
//	res, err := engine.Run(ctx, points)
//	if err != nil {
//	    // errors.Is(err, pkmeans.ErrPreconditionViolation) when k > len(points)
//	}
//	for _, c := range res.Clusters {
//	    fmt.Println(c.ID, c.Centroid, c.Members)
//	}
//
// # Reproducibility
//
// Initial centers are drawn by rejection sampling from an explicit random
// source. WithSeed gives every run a fresh generator with the same seed, so
// two runs over the same input produce the same clusters and centroids.
//
// # Observability
//
// Use WithLogger for structured logs (log/slog) and WithMetricsCollector for
// per-phase timings.
package pkmeans
