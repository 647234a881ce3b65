package numt

import (
	"reflect"
	"testing"
)

// the interval the tool defaults to, length 1377
var testQuery = QueryRegion{Chrom: "chrMT", Start: 10761, End: 12137}

func Test_Classify(t *testing.T) {
	q := testQuery

	pct := func(length int) float64 {
		return 100.0 * float64(length) / float64(q.Length())
	}

	tests := []struct {
		name   string
		record Record
		want   Overlap
	}{
		{
			"record spans the whole query",
			Record{Code: "N1", MtStart: 10000, MtEnd: 13000},
			Overlap{Code: "N1", Start: 10761, End: 12137, Length: 1377, Percentage: 100.0, Type: OverlapComplete},
		},
		{
			"record overlaps the query's leading edge",
			Record{Code: "N2", MtStart: 10500, MtEnd: 10800},
			Overlap{Code: "N2", Start: 10761, End: 10800, Length: 40, Percentage: pct(40), Type: OverlapPartialLeft},
		},
		{
			"record overlaps the query's trailing edge",
			Record{Code: "N3", MtStart: 12000, MtEnd: 12500},
			Overlap{Code: "N3", Start: 12000, End: 12137, Length: 138, Percentage: pct(138), Type: OverlapPartialRight},
		},
		{
			"record inside the query",
			Record{Code: "N4", MtStart: 11000, MtEnd: 11200},
			Overlap{Code: "N4", Start: 11000, End: 11200, Length: 201, Percentage: pct(201), Type: OverlapInternal},
		},
		{
			"record before the query",
			Record{Code: "N5", MtStart: 1, MtEnd: 500},
			Overlap{Code: "N5", Type: OverlapNone},
		},
		{
			"record after the query",
			Record{Code: "N6", MtStart: 13000, MtEnd: 14000},
			Overlap{Code: "N6", Type: OverlapNone},
		},
		{
			"record adjacent on the left",
			Record{Code: "N7", MtStart: 10000, MtEnd: 10760},
			Overlap{Code: "N7", Type: OverlapNone},
		},
		{
			"single base touch on the left",
			Record{Code: "N8", MtStart: 10500, MtEnd: 10761},
			Overlap{Code: "N8", Start: 10761, End: 10761, Length: 1, Percentage: pct(1), Type: OverlapPartialLeft},
		},
		{
			"single base touch on the right",
			Record{Code: "N9", MtStart: 12137, MtEnd: 12500},
			Overlap{Code: "N9", Start: 12137, End: 12137, Length: 1, Percentage: pct(1), Type: OverlapPartialRight},
		},
		{
			"record coincident with the query is Complete, not Internal",
			Record{Code: "N10", MtStart: 10761, MtEnd: 12137},
			Overlap{Code: "N10", Start: 10761, End: 12137, Length: 1377, Percentage: 100.0, Type: OverlapComplete},
		},
		{
			"record sharing the query's start but ending inside",
			Record{Code: "N11", MtStart: 10761, MtEnd: 11000},
			Overlap{Code: "N11", Start: 10761, End: 11000, Length: 240, Percentage: pct(240), Type: OverlapInternal},
		},
		{
			"record sharing the query's end but starting inside",
			Record{Code: "N12", MtStart: 12000, MtEnd: 12137},
			Overlap{Code: "N12", Start: 12000, End: 12137, Length: 138, Percentage: pct(138), Type: OverlapInternal},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(q, tt.record); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func Test_Classify_singleBaseQuery(t *testing.T) {
	q := QueryRegion{Chrom: "chrMT", Start: 100, End: 100}

	got := Classify(q, Record{Code: "N1", MtStart: 100, MtEnd: 100})
	want := Overlap{Code: "N1", Start: 100, End: 100, Length: 1, Percentage: 100.0, Type: OverlapComplete}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify() = %+v, want %+v", got, want)
	}
}

func Test_ClassifyAll(t *testing.T) {
	records := []Record{
		{Code: "N1", MtStart: 10000, MtEnd: 13000},
		{Code: "N5", MtStart: 1, MtEnd: 500},
		{Code: "N4", MtStart: 11000, MtEnd: 11200},
	}

	overlaps, err := ClassifyAll(testQuery, records)
	if err != nil {
		t.Fatalf("ClassifyAll() error = %v", err)
	}

	if len(overlaps) != len(records) {
		t.Fatalf("ClassifyAll() returned %d overlaps, want %d", len(overlaps), len(records))
	}

	// catalog order is preserved and None rows are kept
	wantTypes := []OverlapType{OverlapComplete, OverlapNone, OverlapInternal}
	for i, o := range overlaps {
		if o.Code != records[i].Code {
			t.Errorf("overlap %d: code = %s, want %s", i, o.Code, records[i].Code)
		}
		if o.Type != wantTypes[i] {
			t.Errorf("overlap %d: type = %s, want %s", i, o.Type, wantTypes[i])
		}
	}

	// same inputs give bit-identical results
	again, err := ClassifyAll(testQuery, records)
	if err != nil {
		t.Fatalf("ClassifyAll() error = %v", err)
	}
	if !reflect.DeepEqual(overlaps, again) {
		t.Errorf("ClassifyAll() is not deterministic:\n%+v\n%+v", overlaps, again)
	}
}

func Test_OverlapType_labels(t *testing.T) {
	for _, typ := range []OverlapType{
		OverlapNone,
		OverlapComplete,
		OverlapPartialLeft,
		OverlapPartialRight,
		OverlapInternal,
	} {
		parsed, ok := ParseOverlapType(typ.String())
		if !ok || parsed != typ {
			t.Errorf("ParseOverlapType(%q) = %v, %v", typ.String(), parsed, ok)
		}
	}

	if _, ok := ParseOverlapType("Sideways"); ok {
		t.Error("ParseOverlapType accepted an unknown label")
	}
}
