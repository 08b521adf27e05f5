// Package locale translates the messages spoken by the parameter sources.
// Translations live in translations/<language>.yml as msgid: text pairs;
// message ids without a translation are used as they are.
package locale

import (
	"embed"
	"fmt"
	"os"
	"path"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

type Locale struct {
	tag     language.Tag
	printer *message.Printer
}

//go:embed translations/*.yml
var translationFiles embed.FS

var (
	messages  *catalog.Builder
	supported []language.Tag
	matcher   language.Matcher
)

func init() {
	var err error
	messages, supported, err = loadCatalog()
	if err != nil {
		panic(fmt.Errorf("failed to load translations: %w", err))
	}
	matcher = language.NewMatcher(supported)
}

func loadCatalog() (*catalog.Builder, []language.Tag, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	tags := []language.Tag{language.English}
	entries, err := translationFiles.ReadDir("translations")
	if err != nil {
		return nil, nil, err
	}
	for _, e := range entries {
		name := e.Name()
		tag, err := language.Parse(strings.TrimSuffix(name, path.Ext(name)))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}
		data, err := translationFiles.ReadFile(path.Join("translations", name))
		if err != nil {
			return nil, nil, err
		}
		var msgs map[string]string
		if err := yaml.Unmarshal(data, &msgs); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}
		for id, text := range msgs {
			if err := b.SetString(tag, id, text); err != nil {
				return nil, nil, fmt.Errorf("%s: %q: %w", name, id, err)
			}
		}
		tags = append(tags, tag)
	}
	return b, tags, nil
}

// Supported lists the languages with translations, English first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// New picks the supported language closest to the first usable preference.
// Preferences may be BCP 47 tags or POSIX locale names like "de_DE.UTF-8".
// Without a match the messages stay in English.
func New(preferred ...string) *Locale {
	var tags []language.Tag
	for _, p := range preferred {
		if t, err := language.Parse(posixToBCP47(p)); err == nil {
			tags = append(tags, t)
		}
	}
	tag := supported[0]
	if len(tags) > 0 {
		_, i, conf := matcher.Match(tags...)
		if conf != language.No {
			tag = supported[i]
		}
	}
	return &Locale{tag: tag, printer: message.NewPrinter(tag, message.Catalog(messages))}
}

// FromEnv is New with the language from LC_ALL, LC_MESSAGES or LANG.
func FromEnv() *Locale {
	var prefs []string
	for _, v := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if s := os.Getenv(v); s != "" {
			prefs = append(prefs, s)
		}
	}
	return New(prefs...)
}

func (l *Locale) Tag() language.Tag { return l.tag }

func (l *Locale) Translate(msgid string, args ...any) string {
	return l.printer.Sprintf(msgid, args...)
}

func posixToBCP47(s string) string {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return "en"
	}
	return strings.ReplaceAll(s, "_", "-")
}
