package ecs

import (
	"reflect"
	"testing"
)

func TestSparseSetLifecycle(t *testing.T) {
	cases := []struct {
		name   string
		ids    []int
		remove []int
		want   []int
	}{
		{"single", []int{1}, []int{1}, []int{}},
		{"three_remove_middle", []int{1, 2, 3}, []int{2}, []int{1, 3}},
		{"sparse_ids", []int{7, 100}, nil, []int{7, 100}},
		{"remove_missing", []int{4}, []int{5}, []int{4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var s SparseSet[string]
			for _, id := range c.ids {
				s.Set(id, "v")
			}
			for _, id := range c.remove {
				s.Remove(id)
			}
			got := map[int]bool{}
			for _, id := range s.IDs() {
				got[id] = true
			}
			if len(got) != len(c.want) || s.Len() != len(c.want) {
				t.Fatalf("ids = %v, want %v", s.IDs(), c.want)
			}
			for _, id := range c.want {
				if !got[id] || !s.Has(id) {
					t.Fatalf("expected id %d in set", id)
				}
			}
		})
	}
}

func TestSparseSetGetAndUpdate(t *testing.T) {
	var s SparseSet[int]
	s.Set(3, 10)
	s.Set(3, 11)
	if v, ok := s.Get(3); !ok || v != 11 {
		t.Fatalf("Get(3) = %d, %v", v, ok)
	}
	if _, ok := s.Get(4); ok {
		t.Fatalf("Get(4) should miss")
	}
	s.Set(0, 1)
	s.Set(-2, 1)
	if s.Len() != 1 {
		t.Fatalf("non-positive ids should be ignored")
	}
}

func TestSparseSetClear(t *testing.T) {
	var s SparseSet[int]
	s.Set(1, 1)
	s.Set(2, 2)
	s.Clear()
	if s.Len() != 0 || s.Has(1) || s.Has(2) {
		t.Fatalf("clear should drop every id")
	}
	s.Set(2, 5)
	if v, ok := s.Get(2); !ok || v != 5 {
		t.Fatalf("set after clear = %d, %v", v, ok)
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue[string]
	if q.Drain() != nil {
		t.Fatalf("empty drain should be nil")
	}
	q.Push("a")
	q.Push("b")
	if q.Len() != 2 {
		t.Fatalf("len = %d", q.Len())
	}
	if got := q.Drain(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("drain = %v", got)
	}
	if q.Len() != 0 {
		t.Fatalf("drain should empty the queue")
	}
	q.Push("c")
	q.Flush()
	if q.Drain() != nil {
		t.Fatalf("flush should drop events")
	}
}

func TestSchedulerOrder(t *testing.T) {
	var order []string
	stage := func(name string) System[*[]string] {
		return SystemFunc[*[]string](func(out *[]string) { *out = append(*out, name) })
	}
	s := NewScheduler(stage("capture"), stage("apply"), nil)
	s.Add(stage("refresh"))
	s.Add(nil)

	s.Update(&order)
	if want := []string{"capture", "apply", "refresh"}; !reflect.DeepEqual(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("systems = %d, want 3", len(s.Systems()))
	}
}
