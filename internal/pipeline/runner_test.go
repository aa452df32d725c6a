package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/jobsift/jobsift/internal/model"
)

// stubSource returns canned jobs and records the order it was called in.
type stubSource struct {
	name  string
	jobs  []model.Job
	err   error
	calls *[]string
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context, opts model.FetchOptions) ([]model.Job, error) {
	*s.calls = append(*s.calls, s.name)
	return s.jobs, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunner_FetchesSequentiallyAndMerges(t *testing.T) {
	var calls []string
	a := &stubSource{name: "alpha", jobs: []model.Job{job("a1"), job("a2")}, calls: &calls}
	b := &stubSource{name: "beta", jobs: []model.Job{job("b1")}, calls: &calls}

	r := NewRunner([]model.Source{a, b}, testLogger())
	jobs, err := r.Run(context.Background(), model.FetchOptions{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(calls) != 2 || calls[0] != "alpha" || calls[1] != "beta" {
		t.Errorf("expected sources fetched in order, got %v", calls)
	}
	want := []string{"a1", "b1", "a2"}
	if got := ids(jobs); !reflect.DeepEqual(got, want) {
		t.Errorf("Run = %v, want %v", got, want)
	}
}

func TestRunner_ConnectorErrorAbortsRun(t *testing.T) {
	var calls []string
	fail := errors.New("upstream down")
	a := &stubSource{name: "alpha", err: fail, calls: &calls}
	b := &stubSource{name: "beta", jobs: []model.Job{job("b1")}, calls: &calls}

	r := NewRunner([]model.Source{a, b}, testLogger())
	jobs, err := r.Run(context.Background(), model.FetchOptions{Limit: 10})
	if err == nil {
		t.Fatal("expected error to propagate")
	}
	if !errors.Is(err, fail) {
		t.Errorf("expected wrapped source error, got %v", err)
	}
	if jobs != nil {
		t.Errorf("expected no partial results, got %v", jobs)
	}
	// The failing source aborts the run before later sources fetch.
	if len(calls) != 1 {
		t.Errorf("expected only the first source to be called, got %v", calls)
	}
}
