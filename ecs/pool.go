package ecs

import "iter"

const (
	poolBlockSize = 64
)

// Pool stores components of a single type `T` in fixed-size blocks.
//
// Every stored component is addressed by an EntityId whose index is its slot
// position and whose generation is bumped each time the slot is reused, so a
// handle kept after Delete never resolves to a newer occupant of the slot.
// Iteration always walks slots in index order, which keeps systems built on
// top of a Pool deterministic.
type Pool[T any] struct {
	blocks      [][poolBlockSize]T
	filled      [][poolBlockSize]bool
	generations [][poolBlockSize]uint32
	freeSlots   []int
	nextIndex   int
	count       int
}

// NewPool creates an empty pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Spawn adds a component to the pool and returns its handle.
func (p *Pool[T]) Spawn(item T) EntityId {
	var index int
	if len(p.freeSlots) > 0 {
		index = p.freeSlots[len(p.freeSlots)-1]
		p.freeSlots = p.freeSlots[:len(p.freeSlots)-1]
	} else {
		index = p.nextIndex
		p.nextIndex++

		if index/poolBlockSize >= len(p.blocks) {
			p.blocks = append(p.blocks, [poolBlockSize]T{})
			p.filled = append(p.filled, [poolBlockSize]bool{})
			p.generations = append(p.generations, [poolBlockSize]uint32{})
		}
	}

	blockIdx := index / poolBlockSize
	slotIdx := index % poolBlockSize

	p.blocks[blockIdx][slotIdx] = item
	p.filled[blockIdx][slotIdx] = true
	p.generations[blockIdx][slotIdx]++
	p.count++

	return NewEntityId(p.generations[blockIdx][slotIdx], uint32(index))
}

// locate returns the block and slot of a live handle.
func (p *Pool[T]) locate(id EntityId) (int, int, bool) {
	index := int(id.Index())
	if index >= p.nextIndex {
		return 0, 0, false
	}

	blockIdx := index / poolBlockSize
	slotIdx := index % poolBlockSize

	if !p.filled[blockIdx][slotIdx] || p.generations[blockIdx][slotIdx] != id.Generation() {
		return 0, 0, false
	}
	return blockIdx, slotIdx, true
}

// Get returns a pointer to the component for the given handle, or nil if the
// handle is stale or was never issued by this pool.
func (p *Pool[T]) Get(id EntityId) *T {
	blockIdx, slotIdx, ok := p.locate(id)
	if !ok {
		return nil
	}
	return &p.blocks[blockIdx][slotIdx]
}

// Has checks if the handle refers to a live component.
func (p *Pool[T]) Has(id EntityId) bool {
	_, _, ok := p.locate(id)
	return ok
}

// Delete removes the component for the given handle. Deleting a stale
// handle is a no-op and reports false.
func (p *Pool[T]) Delete(id EntityId) bool {
	blockIdx, slotIdx, ok := p.locate(id)
	if !ok {
		return false
	}

	var zero T
	p.blocks[blockIdx][slotIdx] = zero
	p.filled[blockIdx][slotIdx] = false
	p.freeSlots = append(p.freeSlots, int(id.Index()))
	p.count--
	return true
}

// Len returns the number of live components.
func (p *Pool[T]) Len() int {
	return p.count
}

// Clear removes every component. Generations are kept so that handles
// issued before the clear stay invalid.
func (p *Pool[T]) Clear() {
	for index := 0; index < p.nextIndex; index++ {
		blockIdx := index / poolBlockSize
		slotIdx := index % poolBlockSize
		if p.filled[blockIdx][slotIdx] {
			p.Delete(NewEntityId(p.generations[blockIdx][slotIdx], uint32(index)))
		}
	}
}

// Iter returns an iterator over live handles and their components in slot order.
// Structural changes while iterating are allowed but may or may not be observed;
// use Ids to iterate over a stable snapshot instead.
func (p *Pool[T]) Iter() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for index := 0; index < p.nextIndex; index++ {
			blockIdx := index / poolBlockSize
			slotIdx := index % poolBlockSize

			if !p.filled[blockIdx][slotIdx] {
				continue
			}

			id := NewEntityId(p.generations[blockIdx][slotIdx], uint32(index))
			if !yield(id, &p.blocks[blockIdx][slotIdx]) {
				return
			}
		}
	}
}

// Ids returns a snapshot of every live handle in slot order.
func (p *Pool[T]) Ids() []EntityId {
	ids := make([]EntityId, 0, p.count)
	for id := range p.Iter() {
		ids = append(ids, id)
	}
	return ids
}

// Values returns copies of every live component in slot order.
func (p *Pool[T]) Values() []T {
	values := make([]T, 0, p.count)
	for _, item := range p.Iter() {
		values = append(values, *item)
	}
	return values
}
