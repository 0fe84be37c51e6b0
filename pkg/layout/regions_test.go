package layout

import (
	"testing"

	"github.com/ahuangsnail/quire/pkg/geom"
)

func TestRegionsNext(t *testing.T) {
	tests := []struct {
		name  string
		regs  Regions
		steps []geom.Size
	}{
		{
			name:  "BacklogThenStuck",
			regs:  Regions{First: sz(10, 10), Backlog: []geom.Size{sz(20, 20)}},
			steps: []geom.Size{sz(20, 20), sz(20, 20)},
		},
		{
			name:  "RepeatForever",
			regs:  Repeat(sz(10, 10), geom.Axes[bool]{}),
			steps: []geom.Size{sz(10, 10), sz(10, 10), sz(10, 10)},
		},
		{
			name: "BacklogThenRepeat",
			regs: func() Regions {
				r := Repeat(sz(30, 30), geom.Axes[bool]{})
				r.First = sz(10, 10)
				r.Backlog = []geom.Size{sz(20, 20)}
				return r
			}(),
			steps: []geom.Size{sz(20, 20), sz(30, 30), sz(30, 30)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.regs
			for i, want := range tt.steps {
				r.Next()
				if r.First != want {
					t.Errorf("step %d: First = %v, want %v", i, r.First, want)
				}
			}
		})
	}
}

func TestRegionsIsFull(t *testing.T) {
	r := One(sz(10, 5), geom.Axes[bool]{})
	if r.IsFull() {
		t.Error("region with space reported full")
	}

	r.First.H = 0
	if !r.IsFull() {
		t.Error("zero-height region not reported full")
	}

	r.First.H = geom.Infinite()
	if r.IsFull() {
		t.Error("infinite region reported full")
	}
}

func TestRegionsHasNext(t *testing.T) {
	if One(sz(10, 10), geom.Axes[bool]{}).HasNext() {
		t.Error("single region claims a successor")
	}
	if !Repeat(sz(10, 10), geom.Axes[bool]{}).HasNext() {
		t.Error("repeating region denies a successor")
	}
	r := Regions{First: sz(10, 10), Backlog: []geom.Size{sz(10, 10)}}
	if !r.HasNext() {
		t.Error("backlogged region denies a successor")
	}
}

func TestRegionsValueSemantics(t *testing.T) {
	orig := Regions{First: sz(10, 10), Backlog: []geom.Size{sz(20, 20), sz(30, 30)}}

	cp := orig
	cp.Next()
	cp.Next()

	if orig.First != sz(10, 10) {
		t.Errorf("original First = %v, want untouched 10x10", orig.First)
	}
	if len(orig.Backlog) != 2 {
		t.Errorf("original backlog = %d entries, want 2", len(orig.Backlog))
	}
}
