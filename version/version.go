// Package version reports which build of reaccess is running.
package version

import "runtime/debug"

// Version can be set at build time:
// go build -ldflags "-X github.com/reaccess/reaccess/version.Version=$(git describe --dirty)"
var Version string

// Revision is the short VCS revision of the build, with "-dirty" appended
// when the tree had local changes.
var Revision = revision(debug.ReadBuildInfo())

func revision(info *debug.BuildInfo, ok bool) string {
	if !ok {
		return ""
	}
	var rev string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if rev != "" && dirty {
		rev += "-dirty"
	}
	return rev
}

// String is Version, or else Revision, or "devel".
func String() string {
	switch {
	case Version != "":
		return Version
	case Revision != "":
		return Revision
	}
	return "devel"
}
