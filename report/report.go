// Package report renders sessions and effect menus as text.
package report

import (
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/reaccess/reaccess/fxchain"
	"github.com/reaccess/reaccess/session"
)

type (
	Renderer struct {
		Template *template.Template
	}

	SessionView struct {
		Title    string
		Names    []string
		Selected int
		Value    string
		Edit     string
		Editable bool
	}

	// MenuLine is one menu item. Num counts the items that can be chosen,
	// from 1; containers have none.
	MenuLine struct {
		Name      string
		FX        int
		Num       int
		Depth     int
		Container bool
	}
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// New returns a Renderer using the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("base").Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf(`could not create template based on embedded files: %w`, err)
	}
	return &Renderer{Template: tmpl}, nil
}

// NewFromTemplates reads session.tmpl and menu.tmpl from templateDirectory.
func NewFromTemplates(templateDirectory string) (*Renderer, error) {
	tmpl, err := template.New("base").Funcs(sprig.TxtFuncMap()).ParseFiles(
		filepath.Join(templateDirectory, "session.tmpl"), filepath.Join(templateDirectory, "menu.tmpl"))
	if err != nil {
		return nil, fmt.Errorf(`could not create templates from %v: %w`, templateDirectory, err)
	}
	return &Renderer{Template: tmpl}, nil
}

func ViewOf(s *session.Session) SessionView {
	v := SessionView{Title: s.Title(), Names: s.Names(), Selected: s.Selected(), Value: s.ValueText()}
	if v.Selected >= 0 {
		v.Edit, v.Editable = s.EditText()
	}
	return v
}

func MenuLines(m fxchain.Menu) []MenuLine {
	var ret []MenuLine
	num := 0
	m.Walk(func(item fxchain.MenuItem, level int) bool {
		l := MenuLine{Name: item.Name, FX: item.FX, Depth: level - 1, Container: item.Sub != nil}
		if !l.Container {
			num++
			l.Num = num
		}
		ret = append(ret, l)
		return true
	})
	return ret
}

// Pick returns the effect of the item numbered num.
func Pick(lines []MenuLine, num int) (fx int, ok bool) {
	for _, l := range lines {
		if !l.Container && l.Num == num {
			return l.FX, true
		}
	}
	return 0, false
}

func (r *Renderer) Session(w io.Writer, s *session.Session) error {
	return r.Template.ExecuteTemplate(w, "session.tmpl", ViewOf(s))
}

func (r *Renderer) Menu(w io.Writer, m fxchain.Menu) error {
	return r.Template.ExecuteTemplate(w, "menu.tmpl", MenuLines(m))
}
