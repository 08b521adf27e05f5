// Package fxchain walks effect chains, including effects nested in
// containers and the input or monitoring chain of a track, and builds the
// menus used to choose an effect.
package fxchain

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/reaccess/reaccess"
)

type (
	// Iterator visits every effect of a track or take depth first, a
	// container before its children. The main chain is exhausted before the
	// input or monitoring chain of a track starts.
	//
	// An Iterator reads counts from the host as it goes and should not be
	// kept across host changes.
	Iterator struct {
		env    reaccess.Env
		fn     *reaccess.FxFuncs
		obj    reaccess.Handle
		master bool

		rec   bool
		stack []frame
		done  bool

		// pos is the index of the current effect without the rec offset.
		pos       int
		contained int
	}

	// frame is a cursor into one chain.
	frame struct {
		index      int
		count      int
		container  int
		multiplier int
	}

	// Entry describes a visited effect.
	Entry struct {
		FX        int
		Name      string
		Level     int
		Container bool
	}
)

func NewTrackIterator(env reaccess.Env, track reaccess.Handle) (*Iterator, error) {
	it, err := newIterator(env, track, reaccess.TrackFX)
	if err != nil {
		return nil, err
	}
	it.master = track == env.Host.MasterTrack()
	return it, nil
}

func NewTakeIterator(env reaccess.Env, take reaccess.Handle) (*Iterator, error) {
	return newIterator(env, take, reaccess.TakeFX)
}

func newIterator(env reaccess.Env, obj reaccess.Handle, prefix reaccess.Prefix) (*Iterator, error) {
	fn, err := reaccess.ResolveFx(env.Host, prefix)
	if err != nil {
		return nil, fmt.Errorf("could not iterate effects: %w", err)
	}
	it := &Iterator{env: env, fn: fn, obj: obj, pos: -1}
	// the first Next moves to index 0
	it.stack = []frame{{index: -1, count: fn.GetCount(obj), multiplier: 1}}
	return it, nil
}

// Next moves to the next effect and reports whether there is one.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	cur := &it.stack[len(it.stack)-1]
	if it.contained > 0 {
		// entering a container does not advance the parent's cursor
		sub := frame{
			count:      it.contained,
			container:  it.pos,
			multiplier: cur.multiplier * (cur.count + 1),
		}
		if len(it.stack) == 1 {
			sub.container = reaccess.TopContainerIndex(cur.index)
		}
		it.stack = append(it.stack, sub)
		return it.success()
	}
	for {
		cur.index++
		if cur.index < cur.count {
			return it.success()
		}
		it.stack = it.stack[:len(it.stack)-1]
		if len(it.stack) == 0 {
			break
		}
		cur = &it.stack[len(it.stack)-1]
	}
	if it.fn.Prefix == reaccess.TrackFX && !it.rec {
		if n := it.fn.GetRecCount(it.obj); n > 0 {
			it.rec = true
			it.stack = append(it.stack, frame{index: 0, count: n, multiplier: 1})
			return it.success()
		}
	}
	it.done = true
	it.contained = 0
	return false
}

func (it *Iterator) success() bool {
	top := it.stack[len(it.stack)-1]
	if len(it.stack) == 1 {
		it.pos = top.index
	} else {
		it.pos = reaccess.ContainedIndex(top.index, top.multiplier, top.container)
	}
	it.contained = it.fn.NamedConfigInt(it.obj, it.FxIndex(), "container_count")
	return true
}

// FxIndex is the host index of the current effect. It can be passed to any
// FX function of the track or take.
func (it *Iterator) FxIndex() int {
	if it.rec {
		return reaccess.RecBase + it.pos
	}
	return it.pos
}

func (it *Iterator) IsContainer() bool { return it.contained > 0 }

// Level is 1 for effects directly in a chain, 2 inside a container and so
// on.
func (it *Iterator) Level() int { return len(it.stack) }

// Name is the effect's 1-based position in its chain followed by its short
// name. Top level input and monitoring effects are marked as such.
func (it *Iterator) Name() string {
	name, _ := it.fn.GetFXName(it.obj, it.FxIndex())
	ret := strconv.Itoa(it.stack[len(it.stack)-1].index+1) + " " + reaccess.ShortenFxName(name)
	if it.rec && len(it.stack) == 1 {
		if it.master {
			ret += " " + it.env.T("[monitor]")
		} else {
			ret += " " + it.env.T("[input]")
		}
	}
	return ret
}

func (it *Iterator) Entry() Entry {
	return Entry{FX: it.FxIndex(), Name: it.Name(), Level: it.Level(), Container: it.IsContainer()}
}

// Entries drives the iterator to the end.
func (it *Iterator) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for it.Next() {
			if !yield(it.Entry()) {
				return
			}
		}
	}
}
