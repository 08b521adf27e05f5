package config_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/reaccess/reaccess/config"
	"github.com/reaccess/reaccess/hostsim"
	"github.com/reaccess/reaccess/surface"
	"golang.org/x/text/language"
)

func TestDefaults(t *testing.T) {
	p := config.Default()
	if p.BypassDelay != time.Second || p.CloseDelay != 0 || p.MaxBands != 256 || !p.ShowUnnamed {
		t.Fatalf("got %+v", p)
	}
	if len(p.Surface.Controls) == 0 || p.Surface.Validate() != nil {
		t.Fatalf("default surface mapping: %+v", p.Surface)
	}
	if !p.SessionOptions().ShowUnnamed {
		t.Fatalf("session options do not show unnamed params")
	}
}

func TestParseOverrides(t *testing.T) {
	p, err := config.Parse([]byte(`
language: de
bypassdelay: 250ms
maxbands: 8
surface:
  controls: [{cc: 1, mode: absolute}]
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.BypassDelay != 250*time.Millisecond || p.MaxBands != 8 || !p.ShowUnnamed {
		t.Fatalf("got %+v", p)
	}
	expected := []surface.Control{{CC: 1, Mode: surface.Absolute}}
	if !reflect.DeepEqual(p.Surface.Controls, expected) {
		t.Fatalf("surface: got %+v, expected %+v", p.Surface.Controls, expected)
	}
	env := p.Env(hostsim.MustParse(`{}`))
	if env.MaxBands() != 8 || env.T("on") != "ein" {
		t.Fatalf("env: bands %v, %q", env.MaxBands(), env.T("on"))
	}
	if p.Locale().Tag() != language.German {
		t.Fatalf("locale: got %v", p.Locale().Tag())
	}
}

func TestParseErrors(t *testing.T) {
	for _, doc := range []string{
		`colour: blue`,
		`maxbands: -1`,
		`bypassdelay: -1s`,
		`surface: {controls: [{cc: 1, mode: spin}]}`,
	} {
		if _, err := config.Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected an error", doc)
		}
	}
}
