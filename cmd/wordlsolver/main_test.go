package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

var aresDict = []string{
	"SLANT", "CARES", "BARES", "DARES", "FARES", "HARES",
	"MARES", "PARES", "WARES", "APHID", "WOMBS",
}

func TestSolveLoop(t *testing.T) {
	sess, err := solver.NewSession(aresDict, "SLANT", solver.WithSearch(solver.Search{Workers: 2}))
	if err != nil {
		t.Fatal(err)
	}
	in := strings.NewReader(strings.Join([]string{
		"s.a..",
		"bogus",
		"CARES .ARES",
		"APHID a....",
		"words",
		"WOMBS ..m.S",
		"MARES MARES",
	}, "\n"))
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	a := &app{dict: aresDict}
	if err := a.solveLoop(cmd, sess, in, &out); err != nil {
		t.Fatalf("solveLoop() error = %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"error:",
		"BARES FARES MARES WARES",
		"the answer is MARES",
		"solved!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestSolveLoopContradiction(t *testing.T) {
	sess, _ := solver.NewSession(aresDict, "SLANT")
	in := strings.NewReader("TRYST TRYST\nreset\nquit\n")
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	if err := (&app{}).solveLoop(cmd, sess, in, &out); err != nil {
		t.Fatalf("solveLoop() error = %v", err)
	}
	if !strings.Contains(out.String(), "no word matches") {
		t.Errorf("output = %q", out.String())
	}
	if !strings.Contains(out.String(), "(11 feasible)") {
		t.Errorf("reset prompt missing: %q", out.String())
	}
}

func TestScoreCommand(t *testing.T) {
	tests := []struct {
		guess, answer, want string
	}{
		{"drink", "dandy", "D..n."},
		{" slant", "bares ", "s.a.."},
	}
	for _, tt := range tests {
		t.Run(tt.guess, func(t *testing.T) {
			root := rootCmd()
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs([]string{"score", tt.guess, tt.answer})
			if err := root.Execute(); err != nil {
				t.Fatal(err)
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Errorf("score %q %q = %q, want %q", tt.guess, tt.answer, got, tt.want)
			}
		})
	}
}
