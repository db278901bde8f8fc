package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLayoutFrame(t *testing.T) {
	tests := map[string]struct {
		opts   options
		width  int
		height int
		want   frame
	}{
		"requested size fits": {
			opts:  options{width: 80, height: 20},
			width: 120, height: 48,
			want: frame{width: 80, height: 20, innerWidth: 80, innerHeight: 20, eventHeight: 12},
		},
		"clamped to terminal": {
			opts:  options{width: 200, height: 60},
			width: 100, height: 40,
			want: frame{width: 96, height: 27, innerWidth: 96, innerHeight: 27, eventHeight: 10},
		},
		"fullscreen": {
			opts:  options{full: true},
			width: 100, height: 40,
			want: frame{width: 98, height: 27, innerWidth: 98, innerHeight: 27, eventHeight: 10},
		},
		"too short for events": {
			opts:  options{width: 60, height: 10},
			width: 80, height: 14,
			want: frame{width: 60, height: 10, innerWidth: 60, innerHeight: 10, eventHeight: 0},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := layoutFrame(tc.opts, tc.width, tc.height)
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(frame{})); diff != "" {
				t.Errorf("layoutFrame (-want +got):\n%s", diff)
			}
		})
	}
}
