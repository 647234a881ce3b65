package numt

import (
	"fmt"
	"strings"
)

// Summary aggregates the run's overlapping records. Bases covered is the
// raw sum of overlap lengths, so records that overlap each other can push
// PercentQueryCovered past 100.
type Summary struct {
	TotalOverlaps       int
	TotalBasesCovered   int
	PercentQueryCovered float64
	MaxOverlapLength    int
	MinOverlapLength    int
	MeanOverlapLength   float64
}

// Summarize computes run statistics over the overlapping records only.
func Summarize(q QueryRegion, overlaps []Overlap) Summary {
	var s Summary
	for _, o := range overlaps {
		if o.Type == OverlapNone {
			continue
		}
		s.TotalOverlaps++
		s.TotalBasesCovered += o.Length
		if o.Length > s.MaxOverlapLength {
			s.MaxOverlapLength = o.Length
		}
		if s.MinOverlapLength == 0 || o.Length < s.MinOverlapLength {
			s.MinOverlapLength = o.Length
		}
	}
	if s.TotalOverlaps > 0 {
		s.PercentQueryCovered = 100.0 * float64(s.TotalBasesCovered) / float64(q.Length())
		s.MeanOverlapLength = float64(s.TotalBasesCovered) / float64(s.TotalOverlaps)
	}
	return s
}

// FormatSummary renders the console report: the query, its summary
// statistics, and one line per overlapping record. records and overlaps
// are parallel slices in catalog order, as returned by ReadCatalog and
// ClassifyAll.
func FormatSummary(q QueryRegion, records []Record, overlaps []Overlap, s Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Overlap Analysis Results:\n")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 50))
	fmt.Fprintf(&b, "Query Region: %s\n", q)
	fmt.Fprintf(&b, "Total length of query region: %d bp\n", q.Length())

	fmt.Fprintf(&b, "\nSummary Statistics:\n")
	fmt.Fprintf(&b, "Total Overlaps: %d\n", s.TotalOverlaps)
	fmt.Fprintf(&b, "Total Bases Covered: %d\n", s.TotalBasesCovered)
	fmt.Fprintf(&b, "Percent Query Covered: %.2f%%\n", s.PercentQueryCovered)
	fmt.Fprintf(&b, "Max Overlap Length: %d\n", s.MaxOverlapLength)
	fmt.Fprintf(&b, "Min Overlap Length: %d\n", s.MinOverlapLength)
	fmt.Fprintf(&b, "Mean Overlap Length: %.2f\n", s.MeanOverlapLength)

	if s.TotalOverlaps == 0 {
		return b.String()
	}

	fmt.Fprintf(&b, "\nDetailed Overlapping NUMTs:\n")
	for i, o := range overlaps {
		if o.Type == OverlapNone {
			continue
		}
		r := records[i]
		fmt.Fprintf(&b, "%s  %s  mt %d-%d  overlap %d-%d  %d bp  %.2f%%  %s\n",
			o.Code, r.Chrom, r.MtStart, r.MtEnd, o.Start, o.End, o.Length, o.Percentage, o.Type)
	}
	return b.String()
}
