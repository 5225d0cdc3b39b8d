package ecs

import "testing"

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []string
	record := func(name string) System {
		return SystemFunc(func(*World) { order = append(order, name) })
	}

	s := NewScheduler(record("input"), nil, record("spawn"))
	s.Add(record("physics"))
	s.Add(nil)

	w := NewWorld()
	s.Update(w)
	s.Update(w)

	want := []string{"input", "spawn", "physics", "input", "spawn", "physics"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(s.Systems()))
	}
}
