// Package numt holds the NUMT catalog model and the overlap analysis
// against a mitochondrial query region.
package numt

import "fmt"

// QueryRegion is the fixed genomic interval overlaps are measured against.
// Coordinates are 1-based and inclusive on both ends.
type QueryRegion struct {
	// Chrom is the reference chromosome name, ex: "chrMT"
	Chrom string

	// Start position of the region of interest. Must be <= End
	Start int

	// End position of the region of interest
	End int
}

// Length is the region's span in base pairs, inclusive of both ends.
func (q QueryRegion) Length() int {
	return q.End - q.Start + 1
}

func (q QueryRegion) String() string {
	return fmt.Sprintf("%s:%d-%d", q.Chrom, q.Start, q.End)
}

// Record is one row of the NUMT catalog: a nuclear insertion of
// mitochondrial-derived sequence. Read-only after load.
type Record struct {
	// Code is the record's unique identifier, ex: "HSA_NumtS_001"
	Code string

	// Chrom is the nuclear chromosome holding the insertion
	Chrom string

	// MtStart is the fragment's start on the mitochondrial reference
	MtStart int

	// MtEnd is the fragment's end on the mitochondrial reference
	MtEnd int

	// MtFragmentLength is the catalog's stated mitochondrial span.
	// Carried as provided, not recomputed
	MtFragmentLength int

	// NucStart is the insertion's start on the nuclear chromosome
	NucStart int

	// NucEnd is the insertion's end on the nuclear chromosome
	NucEnd int

	// NucFragmentLength is the catalog's stated nuclear span
	NucFragmentLength int
}
