package metrics

//go:generate counterfeiter . Emitter

type Emitter interface {
	Counter(name string) Counter
	Timer(name string) Timer
}

// NewEmitter returns an emitter whose metrics are written to the logger they
// are updated with.
func NewEmitter() Emitter {
	return &emitter{}
}

func NewNullEmitter() Emitter {
	return &nullEmitter{}
}

type emitter struct{}

func (e *emitter) Counter(name string) Counter {
	return &counter{name: name}
}

func (e *emitter) Timer(name string) Timer {
	return &timer{name: name}
}

type nullEmitter struct{}

func (e *nullEmitter) Counter(name string) Counter {
	return &nullCounter{}
}

func (e *nullEmitter) Timer(name string) Timer {
	return &nullTimer{}
}
