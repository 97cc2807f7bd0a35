package distance

import "testing"

// naiveOSA is an unbanded, unbounded reference implementation used only to
// cross-check the banded kernel on small strings.
func naiveOSA(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	m, n := len(ra), len(rb)
	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			best := d[i-1][j] + 1
			if v := d[i][j-1] + 1; v < best {
				best = v
			}
			if v := d[i-1][j-1] + cost; v < best {
				best = v
			}
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if v := d[i-2][j-2] + cost; v < best {
					best = v
				}
			}
			d[i][j] = best
		}
	}
	return d[m][n]
}

func TestDistanceIdentical(t *testing.T) {
	k := NewKernel()
	for _, s := range []string{"", "a", "hello", "café"} {
		if got := k.Distance(s, s, 5); got != 0 {
			t.Errorf("Distance(%q,%q,5) = %d, want 0", s, s, got)
		}
	}
}

func TestDistanceZeroMaxDistance(t *testing.T) {
	k := NewKernel()
	if got := k.Distance("cat", "cat", 0); got != 0 {
		t.Errorf("got %d want 0", got)
	}
	if got := k.Distance("cat", "cot", 0); got != -1 {
		t.Errorf("got %d want -1", got)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	k := NewKernel()
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"flaw", "lawn"},
		{"", "abc"},
		{"abc", ""},
		{"ca", "abc"},
		{"pipe", "pips"},
		{"steam", "steems"},
	}
	for _, p := range pairs {
		d1 := k.Distance(p[0], p[1], 10)
		d2 := k.Distance(p[1], p[0], 10)
		if d1 != d2 {
			t.Errorf("Distance(%q,%q)=%d but Distance(%q,%q)=%d, want symmetric", p[0], p[1], d1, p[1], p[0], d2)
		}
	}
}

func TestDistanceOSANotDamerau(t *testing.T) {
	// "CA" -> "ABC" is 3 under OSA (no substring may be edited twice),
	// not 2 as under true Damerau-Levenshtein. This must be preserved.
	k := NewKernel()
	got := k.Distance("CA", "ABC", 5)
	if got != 3 {
		t.Errorf("Distance(CA,ABC,5) = %d, want 3 (OSA, not true Damerau)", got)
	}
}

func TestDistanceAgreesWithNaiveReference(t *testing.T) {
	k := NewKernel()
	words := []string{"", "a", "ab", "abc", "abcd", "cat", "cot", "coat", "cast", "act", "tac", "kitten", "sitting", "flaw", "lawn"}
	for _, a := range words {
		for _, b := range words {
			want := naiveOSA(a, b)
			maxDist := want + 2
			if maxDist < 0 {
				maxDist = 0
			}
			got := k.Distance(a, b, maxDist)
			if want > maxDist {
				if got != -1 {
					t.Errorf("Distance(%q,%q,%d): got %d, want -1 (naive=%d)", a, b, maxDist, got, want)
				}
				continue
			}
			if got != want {
				t.Errorf("Distance(%q,%q,%d): got %d, want %d", a, b, maxDist, got, want)
			}
		}
	}
}

func TestDistanceBoundReturnsMinusOne(t *testing.T) {
	k := NewKernel()
	if got := k.Distance("hello", "goodbye", 1); got != -1 {
		t.Errorf("got %d want -1", got)
	}
}

func TestDistanceWithinBound(t *testing.T) {
	k := NewKernel()
	if got := k.Distance("hello", "hallo", 2); got != 1 {
		t.Errorf("got %d want 1", got)
	}
}

func TestDistanceRange(t *testing.T) {
	k := NewKernel()
	words := []string{"apple", "aple", "appel", "orange", "ornage", "banana", "bananna"}
	for _, a := range words {
		for _, b := range words {
			for maxDist := 0; maxDist <= 4; maxDist++ {
				got := k.Distance(a, b, maxDist)
				if got != -1 && (got < 0 || got > maxDist) {
					t.Errorf("Distance(%q,%q,%d) = %d, out of range [-1]∪[0,%d]", a, b, maxDist, got, maxDist)
				}
			}
		}
	}
}
