package game

import (
	"context"
	"errors"
	"testing"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

func TestAutoplay(t *testing.T) {
	for _, answer := range aresDict {
		t.Run(answer, func(t *testing.T) {
			sess, err := solver.NewSession(aresDict, "SLANT", solver.WithSearch(solver.Search{Workers: 2}))
			if err != nil {
				t.Fatal(err)
			}
			g, err := New(answer)
			if err != nil {
				t.Fatal(err)
			}
			res, err := Autoplay(context.Background(), sess, g, 0)
			if err != nil {
				t.Fatalf("Autoplay() error = %v (guesses %v)", err, res.Guesses)
			}
			if !res.Solved || res.Guesses[len(res.Guesses)-1] != answer {
				t.Errorf("Autoplay() = %+v, want solved with %s", res, answer)
			}
			if res.Guesses[0] != "SLANT" || res.Seed != "SLANT" {
				t.Errorf("first guess = %s, want seed SLANT", res.Guesses[0])
			}
			if res.Turns() > 6 {
				t.Errorf("Autoplay() took %d turns", res.Turns())
			}
			if len(res.Results) != res.Turns() {
				t.Errorf("%d results for %d guesses", len(res.Results), res.Turns())
			}
		})
	}
}

func TestAutoplay_TurnLimit(t *testing.T) {
	sess, err := solver.NewSession(aresDict, "SLANT")
	if err != nil {
		t.Fatal(err)
	}
	g, _ := New("MARES")
	res, err := Autoplay(context.Background(), sess, g, 1)
	if !errors.Is(err, ErrTurnLimit) {
		t.Fatalf("Autoplay() error = %v, want ErrTurnLimit", err)
	}
	if res.Solved || res.Turns() != 1 {
		t.Errorf("Autoplay() = %+v, want one unsolved turn", res)
	}
}

func TestAutoplay_AnswerOutsideDictionary(t *testing.T) {
	sess, err := solver.NewSession(aresDict, "SLANT")
	if err != nil {
		t.Fatal(err)
	}
	g, _ := New("TRYST")
	_, err = Autoplay(context.Background(), sess, g, 0)
	if !errors.Is(err, solver.ErrFeedbackInconsistency) {
		t.Errorf("Autoplay() error = %v, want ErrFeedbackInconsistency", err)
	}
}

func TestAutoplay_Cancelled(t *testing.T) {
	sess, _ := solver.NewSession(aresDict, "SLANT")
	g, _ := New("MARES")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Autoplay(ctx, sess, g, 0)
	if !errors.Is(err, context.Canceled) || res.Turns() != 0 {
		t.Errorf("Autoplay() = %d turns, %v; want 0 turns, context.Canceled", res.Turns(), err)
	}
}
