package systems

import (
	"testing"

	"github.com/decker502/kokaton/pkg/ecs"
	"github.com/decker502/kokaton/pkg/types"
)

func TestBeamMovesAndDraws(t *testing.T) {
	em := ecs.NewEntityManager()
	drawer := &recordingDrawer{}
	system := NewBeamSystem(em, drawer, testPlayfield)

	id := addBeam(em, types.Rect{X: 400, Y: 300, W: 80, H: 30}, 5, -5)
	system.Update()

	r := rectOf(em, id)
	if r.X != 405 || r.Y != 295 {
		t.Errorf("expected beam at (405,295), got (%d,%d)", r.X, r.Y)
	}
	if len(drawer.calls) != 1 || drawer.calls[0].dst != r {
		t.Errorf("expected one draw at the new position, got %+v", drawer.calls)
	}
}

func TestBeamPrunedAfterLeavingPlayfield(t *testing.T) {
	em := ecs.NewEntityManager()
	drawer := &recordingDrawer{}
	system := NewBeamSystem(em, drawer, testPlayfield)

	id := addBeam(em, types.Rect{X: 1015, Y: 300, W: 80, H: 30}, 5, 0)

	// 第 1 帧：右边缘到 1100，仍在界内
	system.Update()
	if n := system.MarkOutOfBounds(); n != 0 {
		t.Fatalf("beam touching the edge should survive, marked %d", n)
	}
	if rectOf(em, id).Right() != 1100 {
		t.Fatalf("expected right edge at 1100, got %d", rectOf(em, id).Right())
	}

	// 第 2 帧：移出界外，本帧仍然绘制（移动前在界内）
	system.Update()
	if rectOf(em, id).Right() != 1105 {
		t.Fatalf("expected right edge at 1105, got %d", rectOf(em, id).Right())
	}
	if n := system.MarkOutOfBounds(); n != 1 {
		t.Fatalf("expected beam to be marked, got %d", n)
	}
	em.RemoveMarkedEntities()

	if em.Exists(id) {
		t.Error("beam should be removed after leaving the playfield")
	}
	if len(system.Beams()) != 0 {
		t.Errorf("expected no beams, got %d", len(system.Beams()))
	}
}

func TestBeamOutOfBoundsNotMoved(t *testing.T) {
	em := ecs.NewEntityManager()
	drawer := &recordingDrawer{}
	system := NewBeamSystem(em, drawer, testPlayfield)

	start := types.Rect{X: -10, Y: 300, W: 80, H: 30}
	id := addBeam(em, start, -5, 0)
	system.Update()

	if rectOf(em, id) != start {
		t.Errorf("out-of-bounds beam should not move, got %+v", rectOf(em, id))
	}
	if len(drawer.calls) != 0 {
		t.Errorf("out-of-bounds beam should not draw, got %d calls", len(drawer.calls))
	}
}

func TestBeamsFireOrder(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewBeamSystem(em, &recordingDrawer{}, testPlayfield)

	first := addBeam(em, types.Rect{X: 100, Y: 100, W: 80, H: 30}, 5, 0)
	addBomb(em, types.NewRectCentered(500, 500, 20, 20))
	second := addBeam(em, types.Rect{X: 200, Y: 100, W: 80, H: 30}, 5, 0)

	beams := system.Beams()
	if len(beams) != 2 || beams[0] != first || beams[1] != second {
		t.Errorf("expected beams [%d %d], got %v", first, second, beams)
	}
}
