package dynarr

const minCapacity = 4

// Array is a growable sequence of T addressed by position. Slots in
// [0, Len()) are live; anything past length is never read.
//
// The zero value is an empty array ready to use. An Array is not safe for
// concurrent use.
type Array[T any] struct {
	data   []T
	length int
}

type Option func(*options)

type options struct {
	capacity int
}

func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func New[T any](opts ...Option) *Array[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	a := &Array[T]{}
	if o.capacity > 0 {
		a.data = make([]T, o.capacity)
	}
	return a
}

func (a *Array[T]) Len() int {
	return a.length
}

func (a *Array[T]) Cap() int {
	return len(a.data)
}

// Get returns the element at index. O(1).
func (a *Array[T]) Get(index int) (item T, err error) {
	if index < 0 || index >= a.length {
		err = outOfBounds(index, a.length)
		return
	}
	return a.data[index], nil
}

func (a *Array[T]) MustGet(index int) T {
	item, err := a.Get(index)
	if err != nil {
		panic(err)
	}
	return item
}

// Push appends item after the last live element. Amortized O(1).
func (a *Array[T]) Push(item T) {
	a.grow()
	a.data[a.length] = item
	a.length++
}

// Pop removes and returns the last element.
func (a *Array[T]) Pop() (item T, err error) {
	if a.length == 0 {
		err = ErrEmpty
		return
	}
	last := a.length - 1
	item = a.data[last]
	a.clear(last)
	a.length--
	return item, nil
}

// Insert places item at index, moving [index, Len()) one slot right.
// index == Len() appends.
func (a *Array[T]) Insert(index int, item T) error {
	if index < 0 || index > a.length {
		return outOfBounds(index, a.length)
	}
	a.grow()
	// highest first, so no element is overwritten before it moves
	for i := a.length; i > index; i-- {
		a.data[i] = a.data[i-1]
	}
	a.data[index] = item
	a.length++
	return nil
}

// Delete removes the element at index, moving (index, Len()) one slot left.
func (a *Array[T]) Delete(index int) error {
	if index < 0 || index >= a.length {
		return outOfBounds(index, a.length)
	}
	last := a.length - 1
	for i := index; i < last; i++ {
		a.data[i] = a.data[i+1]
	}
	// the old last slot now duplicates data[last-1]
	a.clear(last)
	a.length--
	return nil
}

// Slice returns a copy of the live elements.
func (a *Array[T]) Slice() []T {
	out := make([]T, a.length)
	copy(out, a.data[:a.length])
	return out
}

func (a *Array[T]) grow() {
	if a.length < len(a.data) {
		return
	}
	size := len(a.data) * 2
	if size < minCapacity {
		size = minCapacity
	}
	holder := make([]T, size)
	copy(holder, a.data[:a.length])
	a.data = holder
}

func (a *Array[T]) clear(idx int) {
	var zero T
	a.data[idx] = zero
}
