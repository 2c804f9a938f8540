package ldm

import (
	"time"

	"github.com/connest/LDM/internal/pqueue"
)

// Partitioner runs the largest differencing method with a fixed configuration.
//
// A Partitioner holds no per-run state and is safe for concurrent use; every
// call to Partition owns its queue and partials.
type Partitioner[T any] struct {
	queue   QueueKind
	degree  int
	logger  Logger
	metrics MetricsCollector
}

// NewPartitioner creates a partitioner for items carrying values of type T.
//
// Parameters:
//   - opts: Optional configuration (WithQueue, WithBTreeDegree, WithLogger, WithMetrics, WithConfig)
//
// Returns:
//   - *Partitioner[T]: Ready-to-use partitioner
//
// Example:
//
//	p := ldm.NewPartitioner[*Job](ldm.WithQueue(ldm.QueueBTree))
//	res := p.Partition(ldm.NewItems(jobs, func(j *Job) uint64 { return j.Cost }))
func NewPartitioner[T any](opts ...Option) *Partitioner[T] {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.normalize()

	return &Partitioner[T]{
		queue:   o.queue,
		degree:  o.btreeDegree,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Partition splits items into two groups with the default configuration.
//
// It never fails: empty input yields two empty groups and a zero difference,
// and a single item lands in Group1 with its size as the difference.
//
// Parameters:
//   - items: Values and sizes, in any order (may be nil)
//
// Returns:
//   - Result[T]: Both groups and the size difference between them
func Partition[T any](items []Item[T]) Result[T] {
	return NewPartitioner[T]().Partition(items)
}

// Partition splits items into two groups.
//
// The algorithm:
//  1. Seed the queue with one partial per item (group A = [item], difference = size)
//  2. Pop the two partials with the largest difference and merge them:
//     A = hi.A ++ lo.B, B = hi.B ++ lo.A, difference = hi - lo
//  3. Push the merged partial back and repeat until one partial remains
//
// Parameters:
//   - items: Values and sizes, in any order (may be nil)
//
// Returns:
//   - Result[T]: Both groups and the size difference between them
func (p *Partitioner[T]) Partition(items []Item[T]) Result[T] {
	start := time.Now()

	res, merges := p.reduce(items)

	p.metrics.RecordPartition(len(items), res.Difference, time.Since(start).Seconds())
	p.logger.Debug(
		"largest differencing partition complete",
		"items", len(items),
		"difference", res.Difference,
		"merges", merges,
		"queue", p.queue.String(),
	)

	return res
}

func (p *Partitioner[T]) reduce(items []Item[T]) (Result[T], int) {
	if len(items) == 0 {
		return Result[T]{Group1: []T{}, Group2: []T{}}, 0
	}

	seeds := make([]*partial[T], len(items))
	for i, item := range items {
		seeds[i] = newPartial(item, uint64(i))
	}

	q := pqueue.New(p.queue, (*partial[T]).before, seeds, p.degree)
	seq := uint64(len(items))
	merges := 0

	for q.Len() > 1 {
		hi, _ := q.Pop()
		lo, _ := q.Pop()
		q.Push(merge(hi, lo, seq))
		seq++
		merges++
	}

	last, _ := q.Pop()

	return last.result(), merges
}
