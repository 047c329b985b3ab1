package workers

// Workers aggregates background workers so the daemon can start and stop
// them as one unit.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop shuts workers down in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// funcWorker adapts a pair of functions to the Worker interface.
type funcWorker struct {
	run  func()
	stop func()
}

// NewFuncWorker wraps run and stop callbacks as a [Worker]. Nil callbacks
// are treated as no-ops.
func NewFuncWorker(run, stop func()) Worker {
	return &funcWorker{run: run, stop: stop}
}

func (f *funcWorker) Run() {
	if f.run != nil {
		f.run()
	}
}

func (f *funcWorker) Stop() {
	if f.stop != nil {
		f.stop()
	}
}
