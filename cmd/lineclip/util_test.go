package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func bounds(w interface {
	MinX() float64
	MaxX() float64
	MinY() float64
	MaxY() float64
}) []float64 {
	return []float64{w.MinX(), w.MaxX(), w.MinY(), w.MaxY()}
}
