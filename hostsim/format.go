package hostsim

import (
	"fmt"
	"math"
	"strings"

	"github.com/reaccess/reaccess"
)

func (s *Sim) MkVolStr(vol float64) string {
	db := reaccess.Val2DB(vol)
	if db <= -150 {
		return "-inf dB"
	}
	return fmt.Sprintf("%+.2f dB", db)
}

func (s *Sim) MkPanStr(pan float64) string {
	pct := int(math.Round(math.Abs(pan) * 100))
	switch {
	case pct == 0:
		return "center"
	case pan < 0:
		return fmt.Sprintf("%d%%L", pct)
	}
	return fmt.Sprintf("%d%%R", pct)
}

func (s *Sim) ParsePanStr(text string) float64 {
	text = strings.TrimSpace(strings.ToLower(text))
	if strings.HasPrefix(text, "c") {
		return 0
	}
	v := math.Abs(reaccess.Atof(text)) / 100
	if strings.HasSuffix(text, "l") || strings.HasPrefix(text, "-") {
		v = -v
	}
	return math.Max(-1, math.Min(1, v))
}

// FormatTimeStrPos renders m:ss.mmm regardless of mode.
func (s *Sim) FormatTimeStrPos(sec float64, mode int) string {
	neg := ""
	if sec < 0 {
		neg, sec = "-", -sec
	}
	ms := int64(math.Round(sec * 1000))
	return fmt.Sprintf("%s%d:%02d.%03d", neg, ms/60000, ms/1000%60, ms%1000)
}

// ParseTimeStrPos accepts m:ss.mmm or plain seconds.
func (s *Sim) ParseTimeStrPos(text string, mode int) float64 {
	text = strings.TrimSpace(text)
	neg := strings.HasPrefix(text, "-")
	text = strings.TrimPrefix(text, "-")
	var sec float64
	if m, rest, ok := strings.Cut(text, ":"); ok {
		sec = reaccess.Atof(m)*60 + reaccess.Atof(rest)
	} else {
		sec = reaccess.Atof(text)
	}
	if neg {
		return -sec
	}
	return sec
}

func (s *Sim) FormatTime(sec float64, format reaccess.TimeFormat, isLength bool) string {
	var text string
	ms := int64(math.Round(sec * 1000))
	switch {
	case format == reaccess.TimeFormatSeconds:
		text = fmt.Sprintf("%.3f seconds", sec)
	case ms >= 60000:
		text = fmt.Sprintf("%d minutes %d.%03d seconds", ms/60000, ms/1000%60, ms%1000)
	default:
		text = fmt.Sprintf("%d.%03d seconds", ms/1000, ms%1000)
	}
	if s.timeCached && text == s.lastTime {
		return ""
	}
	s.lastTime, s.timeCached = text, true
	return text
}

func (s *Sim) ResetTimeCache() {
	s.lastTime, s.timeCached = "", false
}
