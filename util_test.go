package lineclip

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

// unitWindow is the window [-1, 1] × [-1, 1].
var unitWindow = MustWindow(-1, 1, -1, 1)

var cmpAllowWindow = cmp.AllowUnexported(Window{})
