package variants

import (
	"testing"

	"freebarcodes/seqs"
)

func expectSet(t *testing.T, got Set, want ...string) {
	t.Helper()

	ws := NewSet(want...)
	if got.Len() != ws.Len() {
		t.Fatalf("expected %d members, got %d: %v", ws.Len(), got.Len(), got.Sorted())
	}

	for _, s := range want {
		if !got.Contains(s) {
			t.Fatalf("missing member %s: %v", s, got.Sorted())
		}
	}
}

func TestDeletions(t *testing.T) {
	out, err := Deletions("ACGT", 1)
	if err != nil {
		t.Fatal(err)
	}
	expectSet(t, out, "CGT", "AGT", "ACT", "ACG")

	// different deletion choices collapsing to the same string
	out, err = Deletions("AAC", 2)
	if err != nil {
		t.Fatal(err)
	}
	expectSet(t, out, "C", "A")

	out, err = Deletions("ACGT", 0)
	if err != nil {
		t.Fatal(err)
	}
	expectSet(t, out, "ACGT")

	out, err = Deletions("ACGTACGT", 3)
	if err != nil {
		t.Fatal(err)
	}
	for s := range out {
		if len(s) != 5 {
			t.Fatalf("deletion result has wrong length: %s", s)
		}
	}

	if _, err = Deletions("ACGT", 5); err == nil {
		t.Fatalf("expected an error for too many deletions")
	}

	if _, err = Deletions("ACGT", -1); err == nil {
		t.Fatalf("expected an error for a negative count")
	}
}

func TestInsertions(t *testing.T) {
	// slots are 1..len, so nothing is inserted before index 0
	out, err := Insertions("AC", 1)
	if err != nil {
		t.Fatal(err)
	}
	expectSet(t, out, "AAC", "ACC", "AGC", "ATC", "ACA", "ACG", "ACT")

	out, err = Insertions("AC", 0)
	if err != nil {
		t.Fatal(err)
	}
	expectSet(t, out, "AC")

	out, err = Insertions("ACGTAC", 2)
	if err != nil {
		t.Fatal(err)
	}
	for s := range out {
		if len(s) != 8 {
			t.Fatalf("insertion result has wrong length: %s", s)
		}
	}

	if _, err = Insertions("AC", 3); err == nil {
		t.Fatalf("expected an error for too many insertions")
	}
}

func TestContiguousInsertions(t *testing.T) {
	// all three splice points, including before index 0
	out, err := ContiguousInsertions("AC", 1)
	if err != nil {
		t.Fatal(err)
	}
	expectSet(t, out,
		"AAC", "CAC", "GAC", "TAC",
		"ACC", "AGC", "ATC",
		"ACA", "ACG", "ACT")

	out, err = ContiguousInsertions("ACGT", 2)
	if err != nil {
		t.Fatal(err)
	}
	for s := range out {
		if len(s) != 6 {
			t.Fatalf("insertion result has wrong length: %s", s)
		}
	}

	out, err = ContiguousInsertions("ACGT", 0)
	if err != nil {
		t.Fatal(err)
	}
	expectSet(t, out, "ACGT")
}

func TestMismatches(t *testing.T) {
	out, err := Mismatches("ACGT", 1)
	if err != nil {
		t.Fatal(err)
	}

	if out.Len() != 12 {
		t.Fatalf("expected 12 members, got %d", out.Len())
	}

	for s := range out {
		if len(s) != 4 {
			t.Fatalf("mismatch result has wrong length: %s", s)
		}

		if d := seqs.HammingDistance("ACGT", s); d != 1 {
			t.Fatalf("expected 1 mismatch, got %d: %s", d, s)
		}
	}

	out, err = Mismatches("AC", 2)
	if err != nil {
		t.Fatal(err)
	}

	if out.Len() != 9 {
		t.Fatalf("expected 9 members, got %d", out.Len())
	}

	out, err = Mismatches("ACGT", 0)
	if err != nil {
		t.Fatal(err)
	}
	expectSet(t, out, "ACGT")

	if _, err = Mismatches("ACGT", 5); err == nil {
		t.Fatalf("expected an error for too many mismatches")
	}
}

func TestMismatchesInRegion(t *testing.T) {
	out, err := MismatchesInRegion("ACGTACGT", 2, 5, 1)
	if err != nil {
		t.Fatal(err)
	}

	// 3 positions x 3 substitutions, all distinct
	if out.Len() != 9 {
		t.Fatalf("expected 9 members, got %d", out.Len())
	}

	for s := range out {
		if s[:2] != "AC" || s[5:] != "CGT" {
			t.Fatalf("flanks modified: %s", s)
		}

		if d := seqs.HammingDistance("ACGTACGT", s); d != 1 {
			t.Fatalf("expected 1 mismatch, got %d: %s", d, s)
		}
	}

	if _, err = MismatchesInRegion("ACGTACGT", 5, 2, 1); err == nil {
		t.Fatalf("expected an error for an inverted region")
	}
}

func TestStretchComplements(t *testing.T) {
	out, err := StretchComplements("ACGT", 2)
	if err != nil {
		t.Fatal(err)
	}
	expectSet(t, out, "TGGT", "AGCT", "ACCA")

	// complementing the same window again restores the original
	for s := range out {
		back, err := StretchComplements(s, 2)
		if err != nil {
			t.Fatal(err)
		}

		if !back.Contains("ACGT") {
			t.Fatalf("complement is not an involution: %v", back.Sorted())
		}
	}

	// window wider than the sequence
	out, err = StretchComplements("ACG", 5)
	if err != nil {
		t.Fatal(err)
	}

	if out.Len() != 0 {
		t.Fatalf("expected an empty set, got %v", out.Sorted())
	}

	if _, err = StretchComplements("ACGT", 0); err == nil {
		t.Fatalf("expected an error for a zero width")
	}
}

func TestRandomizedStretches(t *testing.T) {
	out, err := RandomizedStretches("ACG", 2)
	if err != nil {
		t.Fatal(err)
	}

	// 2 windows x 16 fills, 4 overlapping
	if out.Len() != 28 {
		t.Fatalf("expected 28 members, got %d", out.Len())
	}

	if !out.Contains("ACG") {
		t.Fatalf("original sequence not reachable")
	}

	sc, err := StretchComplements("ACG", 2)
	if err != nil {
		t.Fatal(err)
	}

	// superset of the complement stretches
	for s := range sc {
		if !out.Contains(s) {
			t.Fatalf("missing complement stretch %s", s)
		}
	}
}

func TestRandomizedPAM(t *testing.T) {
	out, err := RandomizedPAM("AACCGGTT", 2, 3, End5p)
	if err != nil {
		t.Fatal(err)
	}

	if out.Len() != 64 {
		t.Fatalf("expected 64 members, got %d", out.Len())
	}

	for s := range out {
		if len(s) != 8 || s[3:] != "CGGTT" {
			t.Fatalf("tail modified: %s", s)
		}
	}

	if !out.Contains("AACCGGTT") {
		t.Fatalf("original sequence not reachable")
	}

	out, err = RandomizedPAM("AACCGGTT", 2, 3, End3p)
	if err != nil {
		t.Fatal(err)
	}

	if out.Len() != 64 {
		t.Fatalf("expected 64 members, got %d", out.Len())
	}

	for s := range out {
		if len(s) != 8 || s[:5] != "AACCG" {
			t.Fatalf("head modified: %s", s)
		}
	}

	if _, err = RandomizedPAM("AACCGGTT", 3, 2, End5p); err == nil {
		t.Fatalf("expected an error for randomized length below PAM length")
	}

	if _, err = RandomizedPAM("ACGT", 2, 5, End5p); err == nil {
		t.Fatalf("expected an error for randomized length beyond the sequence")
	}
}

func TestRandomizedRegion(t *testing.T) {
	out, err := RandomizedRegion("ACGT", 1, 3)
	if err != nil {
		t.Fatal(err)
	}

	if out.Len() != 16 {
		t.Fatalf("expected 16 members, got %d", out.Len())
	}

	for s := range out {
		if len(s) != 4 || s[0] != 'A' || s[3] != 'T' {
			t.Fatalf("flanks modified: %s", s)
		}
	}

	if !out.Contains("ACGT") {
		t.Fatalf("original sequence not reachable")
	}

	if _, err = RandomizedRegion("ACGT", 3, 3); err == nil {
		t.Fatalf("expected an error for an empty region")
	}

	if _, err = RandomizedRegion("ACGT", 2, 7); err == nil {
		t.Fatalf("expected an error for a region beyond the sequence")
	}
}

func TestSet(t *testing.T) {
	s := NewSet("TT", "AA")
	s.Add("CC")
	s.Add("AA")

	if s.Len() != 3 || !s.Contains("CC") || s.Contains("GG") {
		t.Fatalf("unexpected set contents: %v", s.Sorted())
	}

	sorted := s.Sorted()
	if len(sorted) != 3 || sorted[0] != "AA" || sorted[1] != "CC" || sorted[2] != "TT" {
		t.Fatalf("unexpected order: %v", sorted)
	}

	s.Merge(NewSet("GG", "TT"))
	if s.Len() != 4 || !s.Contains("GG") {
		t.Fatalf("merge failed: %v", s.Sorted())
	}
}
