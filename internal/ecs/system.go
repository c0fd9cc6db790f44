package ecs

// Proc is a piece of domain logic attached to a Core.
type Proc interface {
	Process()
}

// System is a Core with an attached set of Proc-s and a command buffer; it is
// itself a Proc.
type System struct {
	Core
	Deferred
	Procs []Proc
}

// AddProc adds processor(s) to the system.
func (sys *System) AddProc(procs ...Proc) {
	sys.Procs = append(sys.Procs, procs...)
}

// AddProcFunc adds processing function(s) to the system.
func (sys *System) AddProcFunc(fns ...func()) {
	for i := range fns {
		sys.Procs = append(sys.Procs, ProcFunc(fns[i]))
	}
}

// Spawn reserves an entity whose type is applied at the next Commit.
func (sys *System) Spawn(t ComponentType) Entity { return sys.Create(&sys.Core, t) }

// Process calls each Proc, committing staged edits after each one, so that
// every Proc observes the edits of those before it.
func (sys *System) Process() {
	for i := range sys.Procs {
		sys.Procs[i].Process()
		sys.Commit()
	}
}

// ProcFunc is a convenience for implementing Proc around an arbitrary void
// function.
type ProcFunc func()

// Process calls the wrapped function.
func (f ProcFunc) Process() { f() }
