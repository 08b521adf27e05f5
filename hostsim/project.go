// Package hostsim implements reaccess.Host in memory.
//
// A simulated project is described in YAML and loaded with Parse or Load.
// Every FX function is registered under its host name, so a test can withhold
// any of them with the project's missing list. FX indices are assigned with
// the host's own addressing scheme, independently of the iterator that walks
// them.
package hostsim

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type (
	Project struct {
		Master        Track     `yaml:"master"`
		Tracks        []Track   `yaml:"tracks"`
		LastTouched   *int      `yaml:"lastTouched"` // track index, -1 is the master track
		SelectedItems []ItemRef `yaml:"selectedItems"`
		Focus         *Focus    `yaml:"focus"`
		// LegacyFocus provides GetFocusedFX2 instead of GetTouchedOrFocusedFX.
		LegacyFocus bool `yaml:"legacyFocus"`
		// Missing lists host function names Lookup should not find.
		Missing []string `yaml:"missing"`
	}

	Track struct {
		Name   string     `yaml:"name"`
		Volume float64    `yaml:"volume"`
		Pan    float64    `yaml:"pan"`
		Mute   bool       `yaml:"mute"`
		FX     []FX       `yaml:"fx"`
		RecFX  []FX       `yaml:"recFx"`
		Sends  []Send     `yaml:"sends"`
		Items  []Item     `yaml:"items"`
		TCP    []TCPParam `yaml:"tcp"`
	}

	Send struct {
		Dest   int     `yaml:"dest"`
		Volume float64 `yaml:"volume"`
		Pan    float64 `yaml:"pan"`
		Mute   bool    `yaml:"mute"`
		Mono   bool    `yaml:"mono"`
	}

	Item struct {
		Volume  float64 `yaml:"volume"`
		Mute    bool    `yaml:"mute"`
		FadeIn  float64 `yaml:"fadeIn"`
		FadeOut float64 `yaml:"fadeOut"`
		Takes   []Take  `yaml:"takes"`
		// Active is the active take index, -1 for none.
		Active int `yaml:"active"`
	}

	Take struct {
		Name   string  `yaml:"name"`
		Volume float64 `yaml:"volume"`
		Pan    float64 `yaml:"pan"`
		FX     []FX    `yaml:"fx"`
	}

	FX struct {
		Name     string            `yaml:"name"`
		Bypassed bool              `yaml:"bypassed"`
		Params   []Param           `yaml:"params"`
		Config   map[string]string `yaml:"config"`
		// Container marks an effect holding Children, which may be empty.
		Container bool `yaml:"container"`
		Children  []FX `yaml:"children"`
	}

	Param struct {
		Name      string  `yaml:"name"`
		Value     float64 `yaml:"value"`
		Min       float64 `yaml:"min"`
		Max       float64 `yaml:"max"`
		Step      float64 `yaml:"step"`
		LargeStep float64 `yaml:"largeStep"`
		// Format is a fmt verb string for FormatParamValue; empty means the
		// effect cannot format values.
		Format string `yaml:"format"`
	}

	TCPParam struct {
		FX    int `yaml:"fx"`
		Param int `yaml:"param"`
	}

	ItemRef struct {
		Track int `yaml:"track"`
		Item  int `yaml:"item"`
	}

	Focus struct {
		Track     int  `yaml:"track"` // -1 is the master track
		Item      int  `yaml:"item"`
		Take      *int `yaml:"take"` // nil for track FX
		FX        int  `yaml:"fx"`
		Unfocused bool `yaml:"unfocused"`
	}
)

// Parse decodes a project. Unknown fields are errors.
func Parse(b []byte) (*Sim, error) {
	return Load(bytes.NewReader(b))
}

func Load(r io.Reader) (*Sim, error) {
	var p Project
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return nil, fmt.Errorf("could not decode project: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return New(&p), nil
}

func LoadFile(path string) (*Sim, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open project: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// MustParse is Parse for fixtures known to be valid.
func MustParse(s string) *Sim {
	sim, err := Parse([]byte(s))
	if err != nil {
		panic(err)
	}
	return sim
}

func (p *Project) validate() error {
	for i, t := range p.Tracks {
		for j, s := range t.Sends {
			if s.Dest < 0 || s.Dest >= len(p.Tracks) {
				return fmt.Errorf("track %d send %d: no destination track %d", i, j, s.Dest)
			}
		}
		for j, it := range t.Items {
			if len(it.Takes) > 0 && it.Active >= len(it.Takes) {
				return fmt.Errorf("track %d item %d: active take %d of %d", i, j, it.Active, len(it.Takes))
			}
		}
	}
	for _, ref := range p.SelectedItems {
		if ref.Track < 0 || ref.Track >= len(p.Tracks) || ref.Item < 0 || ref.Item >= len(p.Tracks[ref.Track].Items) {
			return fmt.Errorf("selected item %d/%d does not exist", ref.Track, ref.Item)
		}
	}
	return nil
}

func (fx *FX) isContainer() bool {
	return fx.Container || len(fx.Children) > 0
}
