package fftresampler

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// task pairs an input image with the output image it is resampled into.
type task struct {
	input  []float64
	output []float64
}

// taskPool is a bounded task queue drained by a fixed set of workers.
type taskPool struct {
	tasks     chan task
	group     errgroup.Group
	closeOnce sync.Once
}

func (p *taskPool) close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
	})
}

// Start launches the worker pool. New calls Start; call it again only to
// accept tasks after Finish. Start is a no-op while the pool is running.
func (r *Resampler) Start() {
	r.lifecycleMu.Lock()
	defer r.lifecycleMu.Unlock()

	r.poolMu.Lock()
	defer r.poolMu.Unlock()

	if r.pool != nil {
		return
	}

	p := &taskPool{tasks: make(chan task, r.config.QueueSize)}
	for range r.config.Threads {
		p.group.Go(func() error {
			for t := range p.tasks {
				r.runSingle(t.input, t.output, false)
			}
			return nil
		})
	}
	r.pool = p
	r.logger.Debug("started worker pool", "threads", r.config.Threads, "queue_size", r.config.QueueSize)
}

// AddTask queues input to be resampled into output by the worker pool.
// It blocks while the queue is full. Neither buffer may be accessed until
// Finish returns.
func (r *Resampler) AddTask(input, output []float64) error {
	if err := r.checkBuffers(input, output); err != nil {
		return err
	}

	r.poolMu.RLock()
	defer r.poolMu.RUnlock()

	if r.pool == nil {
		return ErrFinished
	}
	r.pool.tasks <- task{input: input, output: output}
	return nil
}

// Finish closes the task queue and blocks until every queued and running
// task has completed. It is safe to call more than once; later calls
// return immediately once the pool has drained.
func (r *Resampler) Finish() {
	r.lifecycleMu.Lock()
	defer r.lifecycleMu.Unlock()

	r.poolMu.Lock()
	p := r.pool
	r.pool = nil
	r.poolMu.Unlock()

	if p == nil {
		return
	}
	p.close()
	// Workers always return nil; tasks cannot fail.
	_ = p.group.Wait()
	r.logger.Debug("worker pool finished")
}

// Close finishes the worker pool. It implements io.Closer.
func (r *Resampler) Close() error {
	r.Finish()
	return nil
}
