package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t testing.TB, guess, text string) Pattern {
	t.Helper()
	p, err := ParsePattern(guess, text)
	if err != nil {
		t.Fatalf("ParsePattern(%q, %q) error = %v", guess, text, err)
	}
	return p
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		pool   []string
		guess  string
		result string
		want   []string
	}{
		{
			name:   "aphid leaves words with a and none of p h i d",
			pool:   []string{"BARES", "DARES", "FARES"},
			guess:  "APHID",
			result: "a....",
			want:   []string{"BARES", "FARES"},
		},
		{
			name:   "cares keeps order",
			pool:   []string{"WARES", "SLANT", "BARES", "CARES", "MARES"},
			guess:  "CARES",
			result: ".ARES",
			want:   []string{"WARES", "BARES", "MARES"},
		},
		{
			name:   "nothing matches",
			pool:   []string{"BARES", "MARES"},
			guess:  "TRYST",
			result: "TRYST",
			want:   []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.pool, tt.guess, mustParse(t, tt.guess, tt.result))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
			if n := Count(tt.pool, tt.guess, mustParse(t, tt.guess, tt.result)); n != len(tt.want) {
				t.Errorf("Count() = %d, want %d", n, len(tt.want))
			}
		})
	}
}

func TestFilter_RejectsMalformedWords(t *testing.T) {
	p := mustParse(t, "APHID", "a....")
	pool := []string{"bares", "BARES", "FARESS", "FAR", "F4RES", "FARES"}
	want := []string{"BARES", "FARES"}
	if diff := cmp.Diff(want, Filter(pool, "APHID", p)); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
	if got := Filter([]string{"BARES"}, "aphid", p); len(got) != 0 {
		t.Errorf("Filter(lowercase guess) = %v, want none", got)
	}
	if got := Count([]string{"BARES"}, "APHIDS", p); got != 0 {
		t.Errorf("Count(longer guess) = %d, want 0", got)
	}
}

func TestFilter_DoesNotModifyPool(t *testing.T) {
	pool := []string{"BARES", "DARES", "FARES"}
	_ = Filter(pool, "APHID", mustParse(t, "APHID", "a...."))
	if diff := cmp.Diff([]string{"BARES", "DARES", "FARES"}, pool); diff != "" {
		t.Errorf("pool modified (-want +got):\n%s", diff)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	for _, guess := range propertyWords {
		for _, answer := range propertyWords {
			p := score(guess, answer)
			once := Filter(propertyWords, guess, p)
			twice := Filter(once, guess, p)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("Filter not idempotent for %s/%s (-once +twice):\n%s", guess, answer, diff)
			}
			if len(once) > len(propertyWords) {
				t.Errorf("Filter grew the pool for %s/%s", guess, answer)
			}
		}
	}
}

func TestPrune(t *testing.T) {
	tests := []struct {
		name   string
		pool   []string
		guess  string
		result string
		want   []string
	}{
		{
			name:   "drops absent letters",
			pool:   []string{"SLANT", "BARES", "CARES", "WOMBS", "TRYST"},
			guess:  "SLANT",
			result: "s.a..",
			want:   []string{"BARES", "CARES", "WOMBS"},
		},
		{
			name:   "no absent letters keeps everything",
			pool:   []string{"BARES", "MARES"},
			guess:  "MARES",
			result: "MARES",
			want:   []string{"BARES", "MARES"},
		},
		{
			// S is present at position 1 but absent at 3 and 4, so every
			// word with an S goes, including the real answers.
			name:   "repeated guess letter",
			pool:   []string{"BARES", "FARES", "ROUGE"},
			guess:  "SASSY",
			result: "sA...",
			want:   []string{"ROUGE"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prune(tt.pool, tt.guess, mustParse(t, tt.guess, tt.result))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Prune() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
