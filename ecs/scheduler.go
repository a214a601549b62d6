package ecs

// System is one stage of a frame over state S.
type System[S any] interface {
	Update(state S)
}

// SystemFunc adapts a plain function to a System.
type SystemFunc[S any] func(state S)

func (f SystemFunc[S]) Update(state S) {
	f(state)
}

// Scheduler runs its systems in the order they were added.
type Scheduler[S any] struct {
	systems []System[S]
}

func NewScheduler[S any](systems ...System[S]) *Scheduler[S] {
	s := &Scheduler[S]{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler[S]) Add(system System[S]) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler[S]) Update(state S) {
	for _, system := range s.systems {
		system.Update(state)
	}
}

func (s *Scheduler[S]) Systems() []System[S] {
	systems := make([]System[S], 0, len(s.systems))
	return append(systems, s.systems...)
}
