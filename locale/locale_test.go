package locale_test

import (
	"testing"

	"github.com/reaccess/reaccess"
	"github.com/reaccess/reaccess/hostsim"
	"github.com/reaccess/reaccess/locale"
	"github.com/reaccess/reaccess/params"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	for _, c := range []struct {
		prefs    []string
		expected language.Tag
	}{
		{nil, language.English},
		{[]string{"de"}, language.German},
		{[]string{"de_AT.UTF-8"}, language.German},
		{[]string{"C"}, language.English},
		{[]string{"not a tag", "de-CH"}, language.German},
		{[]string{"ja"}, language.English},
	} {
		if got := locale.New(c.prefs...).Tag(); got != c.expected {
			t.Errorf("%v: got %v, expected %v", c.prefs, got, c.expected)
		}
	}
}

func TestTranslate(t *testing.T) {
	de := locale.New("de")
	for _, c := range []struct {
		msgid    string
		args     []any
		expected string
	}{
		{"on", nil, "ein"},
		{"FX Parameters", nil, "Effektparameter"},
		{"Band %d enable", []any{3}, "Band 3 aktiviert"},
		{"no such message", nil, "no such message"},
	} {
		if got := de.Translate(c.msgid, c.args...); got != c.expected {
			t.Errorf("%q: got %q, expected %q", c.msgid, got, c.expected)
		}
	}
	en := locale.New("en-US")
	if got := en.Translate("Band %d type", 2); got != "Band 2 type" {
		t.Fatalf("english: got %q", got)
	}
}

func TestTranslatedSource(t *testing.T) {
	sim := hostsim.MustParse(`tracks: [{name: A}]`)
	env := reaccess.Env{Host: sim, Tr: locale.New("de")}
	src, err := params.TrackParams(env, sim.Track(0))
	if err != nil {
		t.Fatalf("TrackParams failed: %v", err)
	}
	if src.Title() != "Spurparameter" || src.Name(0) != "Lautstärke" {
		t.Fatalf("got %q %q", src.Title(), src.Name(0))
	}
	if got := src.Param(2).ValueText(0); got != "aus" {
		t.Fatalf("mute: got %q", got)
	}
}
