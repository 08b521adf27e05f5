package reaccess

import "regexp"

// Group 1 is the plugin format, group 2 the effect name and group 3 the
// parenthesised vendor suffix.
var fxNameRe = regexp.MustCompile(`^(\w+): (.+?)( \(.*?\))?$`)

// ShortenFxName strips the plugin format prefix and vendor suffix from an FX
// name, so "VST: ReaEQ (Cockos)" becomes "ReaEQ". JS effects keep the
// suffix because many of them have no vendor and the suffix is the only
// distinguishing part.
func ShortenFxName(name string) string {
	m := fxNameRe.FindStringSubmatch(name)
	if m == nil {
		return name
	}
	if m[1] == "JS" {
		return m[2] + m[3]
	}
	return m[2]
}
