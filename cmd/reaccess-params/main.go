package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/reaccess/reaccess/cmd"
	"github.com/reaccess/reaccess/commands"
	"github.com/reaccess/reaccess/config"
	"github.com/reaccess/reaccess/fxchain"
	"github.com/reaccess/reaccess/hostsim"
	"github.com/reaccess/reaccess/narrate"
	"github.com/reaccess/reaccess/report"
	"github.com/reaccess/reaccess/session"
	"github.com/reaccess/reaccess/surface"
	"github.com/reaccess/reaccess/version"
	"gitlab.com/gomidi/midi/v2"
)

func main() {
	lang := flag.String("lang", "", "Language of the messages, e.g. de. Overrides the preferences.")
	first := flag.String("c", "params", "Command to run after loading the project; try help for the list.")
	tmplDir := flag.String("t", "", "Use the templates in this directory instead of the standard templates.")
	midiInput := flag.String("midi-input", "", "connect MIDI input to matching device name prefix")
	mappingFile := flag.String("surface", "", "Read the control surface mapping from this file instead of the preferences.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.String())
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	prefs := config.MakePreferences()
	if prefs.YmlError != nil {
		log.Printf("ignoring parts of preferences.yml: %v", prefs.YmlError)
	}
	if *lang != "" {
		prefs.Language = *lang
	}
	mapping := prefs.Surface
	if *mappingFile != "" {
		f, err := os.Open(*mappingFile)
		if err != nil {
			log.Fatal(err)
		}
		mapping, err = surface.LoadMapping(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}
	sim, err := hostsim.LoadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	renderer, err := report.New()
	if *tmplDir != "" {
		renderer, err = report.NewFromTemplates(*tmplDir)
	}
	if err != nil {
		log.Fatal(err)
	}

	// Everything touching the host runs on this goroutine; timers and MIDI
	// input hand their work over through these channels.
	posted := make(chan func(), 16)
	midiMsgs := make(chan midi.Message, 64)
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	env := prefs.Env(sim)
	out := narrate.WriterAnnouncer{W: os.Stdout}
	clock := narrate.RealClock{Post: func(f func()) { posted <- f }}
	manager := &session.Manager{
		Announcer:  out,
		Clock:      clock,
		CloseDelay: prefs.CloseDelay,
		Options:    prefs.SessionOptions(),
	}
	bypass := fxchain.NewBypassReporter(env, out, clock)
	bypass.Delay = prefs.BypassDelay
	cmds := &commands.Commands{
		Env:       env,
		Manager:   manager,
		Announcer: out,
		Bypass:    bypass,
		Errors:    func(err error) { log.Print(err) },
	}
	sh := newShell(sim, cmds, renderer, os.Stdout, lines)

	var controller *surface.Controller
	if *midiInput != "" {
		stop, err := cmd.ListenMIDI(*midiInput, func(msg midi.Message, timestampms int32) {
			select {
			case midiMsgs <- msg:
			default: // drop when the main loop falls behind
			}
		})
		if err != nil {
			log.Printf("failed to open MIDI input '%s': %v", *midiInput, err)
		} else {
			defer stop()
			controller = &surface.Controller{Mapping: mapping, Manager: manager}
		}
	}
	runLoop(sh, *first, lines, posted, midiMsgs, controller)
}

func runLoop(sh *shell, first string, lines <-chan string, posted <-chan func(), midiMsgs <-chan midi.Message, controller *surface.Controller) {
	if !sh.exec(first) {
		return
	}
	for {
		select {
		case line, ok := <-lines:
			if !ok || !sh.exec(line) {
				return
			}
		case f := <-posted:
			f()
		case msg := <-midiMsgs:
			if controller != nil {
				controller.Handle(msg)
			}
		}
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "reaccess-params. Loads a simulated project and adjusts its parameters from the keyboard or a MIDI controller.\nUsage: %s [flags] project.yml\n", os.Args[0])
	flag.PrintDefaults()
}
