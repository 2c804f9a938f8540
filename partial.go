package ldm

// partial is a tentative two-way split of a subset of the items.
//
// difference is sum(groupA) - sum(groupB) and is never negative. seq records
// creation order and only breaks ties between equal differences.
type partial[T any] struct {
	groupA     []T
	groupB     []T
	difference uint64
	seq        uint64
}

func newPartial[T any](item Item[T], seq uint64) *partial[T] {
	return &partial[T]{
		groupA:     []T{item.Value},
		difference: item.Size,
		seq:        seq,
	}
}

// before reports whether p is popped ahead of q: larger difference first,
// then older partial first. The groups never take part in the ordering.
func (p *partial[T]) before(q *partial[T]) bool {
	if p.difference != q.difference {
		return p.difference > q.difference
	}

	return p.seq < q.seq
}

// merge folds two partials into one and consumes both.
//
// The partial with the larger difference keeps its sides; the other one is
// attached the opposite way round, cancelling its difference. Operands are
// ordered here as well as by the queue, so the subtraction cannot wrap.
func merge[T any](a, b *partial[T], seq uint64) *partial[T] {
	hi, lo := a, b
	if hi.difference < lo.difference {
		hi, lo = lo, hi
	}

	hi.groupA = append(hi.groupA, lo.groupB...)
	hi.groupB = append(hi.groupB, lo.groupA...)
	hi.difference -= lo.difference
	hi.seq = seq

	lo.groupA, lo.groupB = nil, nil

	return hi
}

func (p *partial[T]) result() Result[T] {
	res := Result[T]{
		Group1:     p.groupA,
		Group2:     p.groupB,
		Difference: p.difference,
	}
	if res.Group1 == nil {
		res.Group1 = []T{}
	}
	if res.Group2 == nil {
		res.Group2 = []T{}
	}

	return res
}
