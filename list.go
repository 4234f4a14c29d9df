package colt

import (
	"unsafe"

	"github.com/R533-Code/colt-go/mem"
)

// pageCapacity is the element count of one stable-list page.
const pageCapacity = 16

type page[T any] struct {
	block mem.TypedBlock[T]
	used  int
	dead  uint16 // bitmask over the page's cells

	prev *page[T]
	next *page[T]
}

// stableList is a paginated store whose elements never move once placed:
// pages hold a fixed number of cells and the directory only grows. Erasing
// leaves a dead cell behind so positional indexing stays O(1) and every
// live address stays valid for the life of the list.
type stableList[T any] struct {
	alloc mem.Allocator

	head  *page[T]
	tail  *page[T]
	pages []*page[T] // directory for positional access

	appended int // cells ever handed out, dead ones included
}

// append places v in the tail page, growing by one page when full. The
// returned address never changes afterwards. After a reset the tail
// cursor refills the existing pages in order before growing again.
func (l *stableList[T]) append(v T) *T {
	if l.tail == nil || l.tail.used == pageCapacity {
		if l.tail != nil && l.tail.next != nil {
			l.tail = l.tail.next
		} else {
			l.grow()
		}
	}

	p := l.tail
	slot := &p.block.Slice()[p.used]
	*slot = v
	p.used++
	l.appended++

	return slot
}

func (l *stableList[T]) grow() {
	p, _ := mem.New[page[T]](l.alloc)
	p.block = mem.AllocSlice[T](l.alloc, pageCapacity)

	if l.tail == nil {
		l.head = p
	} else {
		l.tail.next = p
		p.prev = l.tail
	}
	l.tail = p
	l.pages = append(l.pages, p)
}

// at returns the address of cell i in append order, nil when the cell has
// been killed. i must be below Appended.
func (l *stableList[T]) at(i int) *T {
	if debugChecks && (i < 0 || i >= l.appended) {
		panic("colt: stable list index out of range")
	}
	p := l.pages[i/pageCapacity]
	c := i % pageCapacity
	if p.dead&(1<<c) != 0 {
		return nil
	}
	return &p.block.Slice()[c]
}

// kill zeroes ptr's cell and marks it dead. The cell keeps its position;
// later appends never reuse it.
func (l *stableList[T]) kill(ptr *T) {
	target := uintptr(unsafe.Pointer(ptr))
	for _, p := range l.pages {
		s := p.block.Slice()
		base := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
		esz := unsafe.Sizeof(*ptr)
		if esz == 0 || target < base || target >= base+esz*uintptr(len(s)) {
			continue
		}
		c := (target - base) / esz
		var zero T
		s[c] = zero
		p.dead |= 1 << c
		return
	}
}

// reset drops every cell but keeps the pages; the tail cursor rewinds to
// the first page.
func (l *stableList[T]) reset() {
	for _, p := range l.pages {
		clear(p.block.Slice())
		p.used = 0
		p.dead = 0
	}
	l.tail = l.head
	l.appended = 0
}

// free returns all element storage to the allocator and empties the list.
func (l *stableList[T]) free() {
	for _, p := range l.pages {
		mem.FreeSlice(l.alloc, p.block)
	}
	l.head = nil
	l.tail = nil
	l.pages = nil
	l.appended = 0
}

// walk yields the address of every live cell in append order.
func (l *stableList[T]) walk(yield func(*T) bool) {
	for p := l.head; p != nil; p = p.next {
		s := p.block.Slice()
		for c := range p.used {
			if p.dead&(1<<c) == 0 && !yield(&s[c]) {
				return
			}
		}
	}
}
