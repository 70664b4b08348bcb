package internal

import (
	"runtime"
	"strings"
	"testing"
	"time"
)

// TestBanner tests that the banner names the version and platform and
// formats the start time.
func TestBanner(t *testing.T) {
	vm := NewVM()
	vm.StartTime = time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)
	cases := map[string]struct {
		format string
		want   string
	}{
		"Default": {"", "started 2006-01-02 15:04:05"},
		"Custom":  {"%d/%m/%Y", "started 02/01/2006"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			b := vm.Banner(c.format)
			if !strings.HasPrefix(b, "Velo "+Version+" ") {
				t.Errorf("banner %q doesn't start with the version", b)
			}
			if !strings.Contains(b, runtime.GOOS) {
				t.Errorf("banner %q doesn't name the platform", b)
			}
			if !strings.HasSuffix(b, c.want) {
				t.Errorf("banner %q doesn't end with %q", b, c.want)
			}
		})
	}
}
