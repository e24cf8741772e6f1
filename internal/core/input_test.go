package core

import "testing"

func TestActionNameRoundTrip(t *testing.T) {
	for a := ActionLeft; a <= ActionQuit; a++ {
		name := a.Name()
		if name == "" {
			t.Fatalf("%v has no wire name", a)
		}
		if got := ParseAction(name); got != a {
			t.Errorf("ParseAction(%q) = %v, expected %v", name, got, a)
		}
	}

	if ActionNone.Name() != "" {
		t.Error("ActionNone should have no wire name")
	}
	if ParseAction("fly") != ActionNone {
		t.Error("unknown names should parse to ActionNone")
	}
}

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionJump, ActionLeft)

	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Fatal("FrameOf should set every given action")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}

	list := f.List()
	if len(list) != 2 || list[0] != ActionLeft || list[1] != ActionJump {
		t.Errorf("List() = %v, expected [Left Jump]", list)
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if clone.Empty() {
		t.Error("Clone should not share storage with the original")
	}

	var zero InputFrame
	if zero.Has(ActionJump) || !zero.Empty() {
		t.Error("zero-value frame should be empty")
	}
}
