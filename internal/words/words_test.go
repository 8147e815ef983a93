package words

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	in := strings.Join([]string{
		"# comment",
		"slant",
		"",
		"  cares  ",
		"Paris",  // proper noun
		"slants", // too long
		"don't",
		"slant", // duplicate
		"wombs",
	}, "\n")

	got, err := Parse(strings.NewReader(in), 5)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []string{"SLANT", "CARES", "WOMBS"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_OtherLength(t *testing.T) {
	got, err := Parse(strings.NewReader("cat\ndog\nhorse\n"), 3)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff([]string{"CAT", "DOG"}, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse(strings.NewReader("Paris\n# nothing\n"), 5); !errors.Is(err, ErrEmpty) {
		t.Errorf("Parse() error = %v, want ErrEmpty", err)
	}
	if _, err := Parse(strings.NewReader("slant\n"), 0); err == nil {
		t.Error("Parse() with length 0 should fail")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("aphid\nwombs\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path, 5)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff([]string{"APHID", "WOMBS"}, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt"), 5); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestEmbedded(t *testing.T) {
	list, err := LoadOrEmbedded("", DefaultLength)
	if err != nil {
		t.Fatalf("Embedded() error = %v", err)
	}
	if len(list) < 100 {
		t.Errorf("Embedded() returned %d words, want a real dictionary", len(list))
	}
	seen := map[string]bool{}
	for _, w := range list {
		if len(w) != DefaultLength || strings.ToUpper(w) != w {
			t.Errorf("bad word %q", w)
		}
		if seen[w] {
			t.Errorf("duplicate word %q", w)
		}
		seen[w] = true
	}
	for _, w := range []string{"SLANT", "CARES", "APHID", "WOMBS", "MARES"} {
		if !seen[w] {
			t.Errorf("Embedded() missing %s", w)
		}
	}
	if seen["PARIS"] {
		t.Error("Embedded() kept proper noun Paris")
	}
}
