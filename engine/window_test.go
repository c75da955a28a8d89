package engine

import "testing"

func TestClampSize(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{800, 600, 800, 600},
		{0, 600, 1, 600},
		{800, 0, 800, 1},
		{-5, -5, 1, 1},
	}
	for _, tt := range tests {
		w, h := clampSize(tt.w, tt.h)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("clampSize(%d, %d) = %d, %d, want %d, %d",
				tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestWindowAspect(t *testing.T) {
	w := &Window{width: 200, height: 100}
	if got := w.Aspect(); got != 2 {
		t.Errorf("Aspect() = %v, want 2", got)
	}

	gotW, gotH := w.Size()
	if gotW != 200 || gotH != 100 {
		t.Errorf("Size() = %d, %d", gotW, gotH)
	}
}
