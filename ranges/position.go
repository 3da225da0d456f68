package ranges

import (
	"github.com/StarQTius/Little-Type-Library/errors"
	"github.com/StarQTius/Little-Type-Library/internal/contract"
)

var (
	errIncrementAtEnd   = func() *errors.AppError { return errors.OutOfBounds("increment", "end") }
	errDecrementAtBegin = func() *errors.AppError { return errors.OutOfBounds("decrement", "begin") }
	errDerefAtEnd       = func() *errors.AppError { return errors.OutOfBounds("dereference", "end") }
)

// resyncer is implemented by adaptors that must restore their invariant after
// the underlying cursor moved (Filter skipping rejected elements, Take
// counting down).
type resyncer interface {
	resync(dir Direction)
}

// position is the bookkeeping shared by every adaptor cursor: the current
// underlying cursor and the sentinels of the original sequence. Sentinels are
// fixed at construction and shared between clones; only it moves.
type position[S any] struct {
	it            Cursor[S]
	sentinelBegin Cursor[S]
	sentinelEnd   Cursor[S]
}

func newPosition[S any](it, sentinelBegin, sentinelEnd Cursor[S]) position[S] {
	return position[S]{
		it:            it.Clone(),
		sentinelBegin: sentinelBegin.Clone(),
		sentinelEnd:   sentinelEnd.Clone(),
	}
}

// resyncSelf runs the resync hook of self, if it has one.
func resyncSelf(self any, dir Direction) {
	if r, ok := self.(resyncer); ok {
		r.resync(dir)
	}
}

func (p *position[S]) atEnd() bool   { return p.it.Equal(p.sentinelEnd) }
func (p *position[S]) atBegin() bool { return p.it.Equal(p.sentinelBegin) }

// normalize moves a freshly built position onto its first valid element.
func (p *position[S]) normalize(self any) { resyncSelf(self, Forward) }

func (p *position[S]) increment(self any) {
	contract.Require(!p.atEnd(), errIncrementAtEnd)
	p.it.Next()
	resyncSelf(self, Forward)
}

func (p *position[S]) decrement(self any) {
	contract.Require(!p.atBegin(), errDecrementAtBegin)
	p.it.Prev()
	resyncSelf(self, Backward)
}

func (p *position[S]) current() S {
	contract.Require(!p.atEnd(), errDerefAtEnd)
	return p.it.Get()
}

func (p *position[S]) currentRef() *S {
	contract.Require(!p.atEnd(), errDerefAtEnd)
	return p.it.Ref()
}

func (p *position[S]) equal(o *position[S]) bool { return p.it.Equal(o.it) }

func (p position[S]) clone() position[S] {
	p.it = p.it.Clone()
	return p
}
