package numt

// OverlapType is the topology of a record's overlap with the query region.
type OverlapType int

const (
	// OverlapNone means the record and query share no positions
	OverlapNone OverlapType = iota

	// OverlapComplete means the record fully spans the query
	OverlapComplete

	// OverlapPartialLeft means the record's trailing edge overlaps the
	// query's leading edge
	OverlapPartialLeft

	// OverlapPartialRight means the record's leading edge overlaps the
	// query's trailing edge
	OverlapPartialRight

	// OverlapInternal means the record sits fully inside the query
	OverlapInternal
)

// String returns the label written to reports and figure legends.
func (t OverlapType) String() string {
	switch t {
	case OverlapComplete:
		return "Complete"
	case OverlapPartialLeft:
		return "Partial (Left)"
	case OverlapPartialRight:
		return "Partial (Right)"
	case OverlapInternal:
		return "Internal"
	}
	return "None"
}

// ParseOverlapType maps a report label back to its OverlapType.
func ParseOverlapType(label string) (OverlapType, bool) {
	for _, t := range []OverlapType{
		OverlapNone,
		OverlapComplete,
		OverlapPartialLeft,
		OverlapPartialRight,
		OverlapInternal,
	} {
		if t.String() == label {
			return t, true
		}
	}
	return OverlapNone, false
}

// Overlap is the classified intersection of one Record with the query.
type Overlap struct {
	// Code of the originating Record
	Code string

	// Start of the shared span. Zero when Type is OverlapNone
	Start int

	// End of the shared span. Zero when Type is OverlapNone
	End int

	// Length of the shared span in base pairs, inclusive of both ends
	Length int

	// Percentage of the query's length covered by the shared span, 0-100
	Percentage float64

	// Type is the overlap's topology
	Type OverlapType
}

// Classify computes the overlap between the query region and a single
// catalog record. Pure: same inputs always give the same Overlap.
//
// Coordinates are inclusive, so a shared boundary position counts as a
// one base-pair overlap. A record coincident with the query on both ends
// satisfies the Complete and Internal conditions at once; Complete is
// checked first and wins.
func Classify(q QueryRegion, r Record) Overlap {
	start := r.MtStart
	if q.Start > start {
		start = q.Start
	}
	end := r.MtEnd
	if q.End < end {
		end = q.End
	}

	if start > end {
		return Overlap{Code: r.Code, Type: OverlapNone}
	}

	length := end - start + 1
	o := Overlap{
		Code:       r.Code,
		Start:      start,
		End:        end,
		Length:     length,
		Percentage: 100.0 * float64(length) / float64(q.Length()),
	}

	switch {
	case r.MtStart <= q.Start && r.MtEnd >= q.End:
		o.Type = OverlapComplete
	case r.MtStart >= q.Start && r.MtEnd <= q.End:
		o.Type = OverlapInternal
	case r.MtStart < q.Start && r.MtEnd < q.End && r.MtEnd >= q.Start:
		o.Type = OverlapPartialLeft
	case r.MtStart > q.Start && r.MtStart <= q.End && r.MtEnd > q.End:
		o.Type = OverlapPartialRight
	}
	return o
}

// ClassifyAll classifies every record against the query, preserving
// catalog order. Records without overlap are kept in the output with
// OverlapNone; filtering them is the reporter's choice, not the
// classifier's.
//
// The four overlapping categories are exhaustive, so an overlapping
// record left at OverlapNone means the conditions themselves are broken.
// That case returns a *ClassifyError rather than a silently wrong row.
func ClassifyAll(q QueryRegion, records []Record) ([]Overlap, error) {
	overlaps := make([]Overlap, 0, len(records))
	for _, r := range records {
		o := Classify(q, r)
		if o.Length > 0 && o.Type == OverlapNone {
			return nil, &ClassifyError{Code: r.Code, Query: q, Record: r}
		}
		overlaps = append(overlaps, o)
	}
	return overlaps, nil
}
