package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/reaccess/reaccess/commands"
	"github.com/reaccess/reaccess/fxchain"
	"github.com/reaccess/reaccess/hostsim"
	"github.com/reaccess/reaccess/params"
	"github.com/reaccess/reaccess/report"
	"github.com/reaccess/reaccess/session"
)

// shell runs one line of user input at a time against the simulated host.
type shell struct {
	sim      *hostsim.Sim
	cmds     *commands.Commands
	renderer *report.Renderer
	out      io.Writer
	lines    <-chan string
	actions  map[string]commands.Action
}

var keyNames = map[string]session.Key{
	"up":    session.KeyUp,
	"down":  session.KeyDown,
	"left":  session.KeyLeft,
	"right": session.KeyRight,
	"pgup":  session.KeyPageUp,
	"pgdn":  session.KeyPageDown,
	"home":  session.KeyHome,
	"end":   session.KeyEnd,
	"next":  session.KeyNextParam,
	"prev":  session.KeyPrevParam,
}

func newShell(sim *hostsim.Sim, cmds *commands.Commands, r *report.Renderer, out io.Writer, lines <-chan string) *shell {
	sh := &shell{sim: sim, cmds: cmds, renderer: r, out: out, lines: lines}
	cmds.Chooser = menuChooser{sh}
	sh.actions = map[string]commands.Action{
		"params":      cmds.ParamsFocus(params.FocusTrack),
		"item-params": cmds.ParamsFocus(params.FocusItem),
		"fx":          cmds.FxParamsFocus(params.FocusTrack),
		"item-fx":     cmds.FxParamsFocus(params.FocusItem),
		"master-fx":   cmds.FxParamsMaster(),
		"bypass":      cmds.ReportBypass(false),
		"toggle":      cmds.ReportBypass(true),
		"close":       commands.MakeAction(commands.DoFunc(cmds.Manager.Deactivate)),
		"show":        commands.MakeAction(commands.DoFunc(sh.show)),
	}
	for name, k := range keyNames {
		sh.actions[name] = commands.MakeAction(commands.DoFunc(func() { cmds.Manager.HandleKey(k) }))
	}
	return sh
}

// exec runs line and returns false when the user quits.
func (sh *shell) exec(line string) bool {
	word, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	if a, ok := sh.actions[word]; ok {
		if !a.Enabled() {
			fmt.Fprintf(sh.out, "%s is not available\n", word)
			return true
		}
		a.Do()
		return true
	}
	s := sh.cmds.Manager.Active()
	switch word {
	case "":
	case "quit", "exit":
		return false
	case "help":
		sh.help()
	case "focus":
		sh.focus(arg)
	case "set", "filter", "select", "unnamed":
		if s == nil {
			fmt.Fprintln(sh.out, "no parameters open")
			return true
		}
		sh.sessionCommand(s, word, arg)
	default:
		fmt.Fprintf(sh.out, "unknown command %q, try help\n", word)
	}
	return true
}

func (sh *shell) sessionCommand(s *session.Session, word, arg string) {
	switch word {
	case "set":
		if !s.Edit(arg) {
			fmt.Fprintln(sh.out, "unchanged")
		}
	case "filter":
		s.SetFilter(arg)
		sh.show()
	case "select":
		n, err := strconv.Atoi(arg)
		if err != nil || !s.Select(n-1) {
			fmt.Fprintf(sh.out, "no parameter %q\n", arg)
		}
	case "unnamed":
		s.SetShowUnnamed(arg != "off")
		sh.show()
	}
}

// focus sets the focused effect: focus <track> <fx>, track -1 is the
// master track. The bypass state is reported once the focus settles.
func (sh *shell) focus(arg string) {
	var track, fx int64
	f := strings.Fields(arg)
	var err error
	if len(f) == 2 {
		if track, err = strconv.ParseInt(f[0], 0, 0); err == nil {
			fx, err = strconv.ParseInt(f[1], 0, 0)
		}
	}
	if len(f) != 2 || err != nil {
		fmt.Fprintln(sh.out, "usage: focus <track> <fx>")
		return
	}
	sh.sim.Project().Focus = &hostsim.Focus{Track: int(track), FX: int(fx)}
	if sh.cmds.Bypass != nil {
		sh.cmds.Bypass.Focused()
	}
}

func (sh *shell) show() {
	s := sh.cmds.Manager.Active()
	if s == nil {
		fmt.Fprintln(sh.out, "no parameters open")
		return
	}
	if err := sh.renderer.Session(sh.out, s); err != nil {
		fmt.Fprintln(sh.out, err)
	}
}

func (sh *shell) help() {
	names := slices.Sorted(maps.Keys(sh.actions))
	fmt.Fprintf(sh.out, "%s\nset <text>, filter <text>, select <n>, unnamed [off], focus <track> <fx>, quit\n", strings.Join(names, ", "))
}

// menuChooser prints the effect menu and reads the chosen number.
type menuChooser struct{ sh *shell }

func (c menuChooser) Choose(m fxchain.Menu) (int, bool) {
	if err := c.sh.renderer.Menu(c.sh.out, m); err != nil {
		fmt.Fprintln(c.sh.out, err)
		return 0, false
	}
	fmt.Fprint(c.sh.out, "effect number: ")
	line, ok := <-c.sh.lines
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false
	}
	return report.Pick(report.MenuLines(m), n)
}
