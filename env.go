package reaccess

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type (
	// Translator returns the localized form of msgid, formatted with args
	// when there are any.
	Translator interface {
		Translate(msgid string, args ...any) string
	}

	// Env bundles what every parameter source and iterator needs.
	Env struct {
		Host Host
		Tr   Translator
		// MaxNamedConfigBands caps per-band named config probing. Zero means
		// DefaultMaxNamedConfigBands.
		MaxNamedConfigBands int
	}

	untranslated struct{}
)

const DefaultMaxNamedConfigBands = 256

// Untranslated returns message ids as they are.
var Untranslated Translator = untranslated{}

func (untranslated) Translate(msgid string, args ...any) string {
	if len(args) == 0 {
		return msgid
	}
	return fmt.Sprintf(msgid, args...)
}

func (e Env) T(msgid string, args ...any) string {
	if e.Tr == nil {
		return Untranslated.Translate(msgid, args...)
	}
	return e.Tr.Translate(msgid, args...)
}

func (e Env) MaxBands() int {
	if e.MaxNamedConfigBands <= 0 {
		return DefaultMaxNamedConfigBands
	}
	return e.MaxNamedConfigBands
}

// Atof parses the longest numeric prefix of s, ignoring leading white space,
// and returns 0 if there is none.
func Atof(s string) float64 {
	s = strings.TrimLeft(s, " \t\r\n")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for ; k < len(s) && s[k] >= '0' && s[k] <= '9'; k++ {
		}
		if k > j {
			end = k
		}
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// DB2Val converts decibels to linear gain.
func DB2Val(db float64) float64 {
	return math.Exp(db * 0.11512925464970228420089957273422)
}

// Val2DB converts linear gain to decibels, bottoming out at -150 dB.
func Val2DB(v float64) float64 {
	if v < 0.0000000298023223876953125 {
		return -150
	}
	return math.Max(-150, math.Log(v)*8.6858896380650365530225783783321)
}
