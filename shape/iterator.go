// SPDX-License-Identifier: MIT

package shape

// Iterator walks every multi-index of a shape in row-major order, like an
// odometer whose last wheel turns fastest.
//
//	it := shape.NewIterator(shape.Shape{2, 3})
//	for it.Next() {
//		use(it.Index(), it.Offset())
//	}
//
// The slice returned by Index is reused between steps.
type Iterator struct {
	dims  Shape
	idx   []int
	off   int
	total int
}

// NewIterator returns an iterator positioned before the first index.
func NewIterator(dims Shape) *Iterator {
	return &Iterator{dims: dims.Clone(), idx: make([]int, len(dims)), off: -1, total: dims.NumElements()}
}

// Next advances and reports whether an index is available.
func (it *Iterator) Next() bool {
	if it.off+1 >= it.total {
		it.off = it.total
		return false
	}
	it.off++
	if it.off == 0 {
		return true
	}
	for k := len(it.dims) - 1; k >= 0; k-- {
		it.idx[k]++
		if it.idx[k] < it.dims[k] {
			break
		}
		it.idx[k] = 0
	}
	return true
}

// Index returns the current multi-index.
func (it *Iterator) Index() []int { return it.idx }

// Offset returns the current linear offset.
func (it *Iterator) Offset() int { return it.off }

// Reset rewinds to before the first index.
func (it *Iterator) Reset() {
	for k := range it.idx {
		it.idx[k] = 0
	}
	it.off = -1
}
