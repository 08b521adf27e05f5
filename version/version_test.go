package version

import (
	"runtime/debug"
	"testing"
)

func TestRevision(t *testing.T) {
	for _, c := range []struct {
		settings []debug.BuildSetting
		expected string
	}{
		{nil, ""},
		{[]debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}}, "0123456"},
		{[]debug.BuildSetting{{Key: "vcs.modified", Value: "true"}, {Key: "vcs.revision", Value: "0123456789abcdef"}}, "0123456-dirty"},
		{[]debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}}, "abc"},
	} {
		if got := revision(&debug.BuildInfo{Settings: c.settings}, true); got != c.expected {
			t.Errorf("%v: got %q, expected %q", c.settings, got, c.expected)
		}
	}
	if got := revision(nil, false); got != "" {
		t.Errorf("without build info: got %q", got)
	}
}
