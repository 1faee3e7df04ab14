package types

import "testing"

func TestRotatedSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		angle, scale float64
		wantW, wantH int
	}{
		{"不旋转", 80, 30, 0, 1, 80, 30},
		{"旋转90度", 80, 30, 90, 1, 30, 80},
		{"旋转180度", 80, 30, 180, 1, 80, 30},
		{"缩放", 100, 50, 0, 0.9, 90, 45},
		{"旋转45度", 10, 10, 45, 1, 15, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := RotatedSize(tt.w, tt.h, tt.angle, tt.scale)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("RotatedSize = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPlaceholderSpriteSetComplete(t *testing.T) {
	set := PlaceholderSpriteSet(1100, 650, 10)

	for _, d := range Directions() {
		if p, ok := set.Player[d]; !ok || p.W <= 0 || p.H <= 0 {
			t.Errorf("missing player sprite for %+v", d)
		}
		if b, ok := set.Beam[d]; !ok || b.W <= 0 || b.H <= 0 {
			t.Errorf("missing beam sprite for %+v", d)
		}
	}
	if set.Bomb.W != 20 || set.Bomb.H != 20 {
		t.Errorf("expected 20x20 bomb, got %dx%d", set.Bomb.W, set.Bomb.H)
	}
	if set.Player[DirRight].W != 90 || set.Player[DirRight].H != 80 {
		t.Errorf("unexpected right-facing player size %+v", set.Player[DirRight])
	}
	if set.Background.W != 1100 || set.Background.H != 650 {
		t.Errorf("background should cover the playfield, got %+v", set.Background)
	}
}
