package fxchain

import (
	"errors"

	"github.com/reaccess/reaccess"
)

type (
	// MenuItem is an effect the user can choose, or a container holding
	// more of them. The first item of a container's submenu chooses the
	// container itself.
	MenuItem struct {
		Name string
		FX   int
		Sub  []MenuItem
	}

	Menu struct {
		Items []MenuItem
		// Count is the number of effects visited, containers included.
		Count int
		last  int
	}

	// Chooser presents a menu and returns the FX index picked, or false
	// when the user cancelled.
	Chooser interface {
		Choose(m Menu) (fx int, ok bool)
	}
)

// ErrNoFX is returned when a track or take has no effects at all.
var ErrNoFX = errors.New("no FX")

// BuildMenu drains it into a menu tree.
func BuildMenu(env reaccess.Env, it *Iterator) Menu {
	var m Menu
	root := MenuItem{}
	stack := []*MenuItem{&root}
	for it.Next() {
		for len(stack) > it.Level() {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]
		item := MenuItem{Name: it.Name(), FX: it.FxIndex()}
		m.last = item.FX
		m.Count++
		if it.IsContainer() {
			item.Sub = []MenuItem{{Name: env.T("(Container Parameters)"), FX: item.FX}}
			parent.Sub = append(parent.Sub, item)
			stack = append(stack, &parent.Sub[len(parent.Sub)-1])
			continue
		}
		parent.Sub = append(parent.Sub, item)
	}
	m.Items = root.Sub
	return m
}

// Only returns the effect when there is exactly one.
func (m Menu) Only() (fx int, ok bool) {
	if m.Count != 1 {
		return 0, false
	}
	return m.last, true
}

// Choose resolves the menu to one effect: the only one without asking, or
// whatever c picks. ok is false when the user cancelled; err is ErrNoFX when
// there is nothing to choose from.
func (m Menu) Choose(c Chooser) (fx int, ok bool, err error) {
	if m.Count == 0 {
		return 0, false, ErrNoFX
	}
	if fx, ok := m.Only(); ok {
		return fx, true, nil
	}
	fx, ok = c.Choose(m)
	return fx, ok, nil
}

// Walk calls yield for every item depth first with its nesting level,
// starting at 1.
func (m Menu) Walk(yield func(item MenuItem, level int) bool) {
	walkItems(m.Items, 1, yield)
}

func walkItems(items []MenuItem, level int, yield func(MenuItem, int) bool) bool {
	for _, item := range items {
		if !yield(item, level) {
			return false
		}
		if item.Sub != nil && !walkItems(item.Sub, level+1, yield) {
			return false
		}
	}
	return true
}
