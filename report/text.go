package report

import (
	"bufio"
	"io"
	"strconv"

	"github.com/hupe1980/pkmeans"
)

// Write renders every cluster with its member points and centroid, followed
// by the timing summary. Clusters and points are numbered from 1.
func Write(w io.Writer, res *pkmeans.Result, points []*pkmeans.Point) error {
	bw := bufio.NewWriter(w)
	byID := indexPoints(points)

	writeBreak(bw, res)
	bw.WriteString("\n")

	for _, c := range res.Clusters {
		bw.WriteString("Cluster ")
		bw.WriteString(strconv.Itoa(c.ID + 1))
		bw.WriteString("\n")

		for _, id := range c.Members {
			p, ok := byID[id]
			if !ok {
				continue
			}
			bw.WriteString("Point ")
			bw.WriteString(strconv.Itoa(id + 1))
			bw.WriteString(":")
			for _, v := range p.Coords() {
				bw.WriteString(" ")
				bw.WriteString(formatFloat(v))
			}
			if name := p.Label(); name != "" {
				bw.WriteString(" - ")
				bw.WriteString(name)
			}
			bw.WriteString("\n")
		}

		bw.WriteString("Cluster values:")
		for _, v := range c.Centroid {
			bw.WriteString(" ")
			bw.WriteString(formatFloat(v))
		}
		bw.WriteString("\n\n")
	}

	writeDurations(bw, res)
	return bw.Flush()
}

// WriteTimings renders the stop iteration and the elapsed times in
// microseconds.
func WriteTimings(w io.Writer, res *pkmeans.Result) error {
	bw := bufio.NewWriter(w)
	writeBreak(bw, res)
	writeDurations(bw, res)
	return bw.Flush()
}

func writeBreak(bw *bufio.Writer, res *pkmeans.Result) {
	bw.WriteString("Break in iteration ")
	bw.WriteString(strconv.Itoa(res.Iterations))
	bw.WriteString("\n")
}

func writeDurations(bw *bufio.Writer, res *pkmeans.Result) {
	bw.WriteString("TOTAL EXECUTION TIME = ")
	bw.WriteString(strconv.FormatInt(res.TotalDuration().Microseconds(), 10))
	bw.WriteString("\nTIME PHASE 1 = ")
	bw.WriteString(strconv.FormatInt(res.InitDuration.Microseconds(), 10))
	bw.WriteString("\nTIME PHASE 2 = ")
	bw.WriteString(strconv.FormatInt(res.LoopDuration.Microseconds(), 10))
	bw.WriteString("\n")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func indexPoints(points []*pkmeans.Point) map[int]*pkmeans.Point {
	byID := make(map[int]*pkmeans.Point, len(points))
	for _, p := range points {
		byID[p.ID()] = p
	}
	return byID
}
