package params

import (
	"fmt"
	"strings"

	"github.com/reaccess/reaccess"
)

type (
	// Provider names a parameter without creating it. Enumerating a source
	// only touches names; New runs when the parameter is chosen.
	Provider struct {
		Name string
		New  func() Param
	}

	// ObjSource is a fixed list of Providers.
	ObjSource struct {
		title     string
		providers []Provider
	}
)

// AttrProvider binds the Param made by mk to attr.
func AttrProvider(env reaccess.Env, name string, attr Accessor, mk MakeFunc) Provider {
	return Provider{Name: name, New: func() Param { return mk(env, attr) }}
}

func NewObjSource(title string, providers ...Provider) *ObjSource {
	return &ObjSource{title: title, providers: providers}
}

func (s *ObjSource) Title() string     { return s.title }
func (s *ObjSource) Count() int        { return len(s.providers) }
func (s *ObjSource) Name(i int) string { return s.providers[i].Name }
func (s *ObjSource) Param(i int) Param { return s.providers[i].New() }
func (s *ObjSource) Add(p ...Provider) { s.providers = append(s.providers, p...) }

// TrackParams lists the track's volume, pan and mute, then four parameters
// for every send and every receive, then the FX parameters shown on the
// track's control panel.
func TrackParams(env reaccess.Env, track reaccess.Handle) (*ObjSource, error) {
	h := env.Host
	attr := func(key string) Accessor { return TrackAttr{Host: h, Track: track, Key: key} }
	s := NewObjSource(env.T("Track Parameters"),
		AttrProvider(env, env.T("volume"), attr(reaccess.AttrVolume), MakeVolume),
		AttrProvider(env, env.T("pan"), attr(reaccess.AttrPan), MakePan),
		AttrProvider(env, env.T("mute"), attr(reaccess.AttrMute), MakeToggle),
	)
	addSends(env, s, track, reaccess.CategorySend, env.T("send"), reaccess.AttrDestTrack)
	addSends(env, s, track, reaccess.CategoryReceive, env.T("receive"), reaccess.AttrSrcTrack)

	n := h.CountTCPFXParms(track)
	if n <= 0 {
		return s, nil
	}
	fxp, err := NewFxParams(env, track, reaccess.TrackFX, -1)
	if err != nil {
		return nil, err
	}
	for i := range n {
		fx, param, ok := h.TCPFXParm(track, i)
		if !ok {
			continue
		}
		s.Add(Provider{
			Name: fmt.Sprintf("%s (%s)", fxp.ParamName(fx, param), fxp.FxName(fx)),
			New:  func() Param { return fxp.ParamAt(fx, param) },
		})
	}
	return s, nil
}

// addSends names each parameter after the peer track, e.g. "2 Drums send
// volume".
func addSends(env reaccess.Env, s *ObjSource, track reaccess.Handle, category int, categoryName, peerKey string) {
	h := env.Host
	for i := range h.TrackNumSends(track, category) {
		peer, _ := h.GetSetTrackSendInfo(track, category, i, peerKey, nil).(reaccess.Handle)
		var prefix strings.Builder
		num, _ := h.GetSetMediaTrackInfo(peer, reaccess.AttrTrackNumber, nil).(int)
		fmt.Fprintf(&prefix, "%d ", num)
		if name, _ := h.GetSetMediaTrackInfo(peer, reaccess.AttrName, nil).(string); name != "" {
			prefix.WriteString(name + " ")
		}
		prefix.WriteString(categoryName + " ")
		attr := func(key string) Accessor {
			return SendAttr{Host: h, Track: track, Category: category, Index: i, Key: key}
		}
		p := prefix.String()
		s.Add(
			AttrProvider(env, p+env.T("volume"), attr(reaccess.AttrVolume), MakeVolume),
			AttrProvider(env, p+env.T("pan"), attr(reaccess.AttrPan), MakePan),
			AttrProvider(env, p+env.T("mute"), attr(reaccess.AttrMute), MakeToggle),
			AttrProvider(env, p+env.T("mono"), attr(reaccess.AttrMono), MakeToggle),
		)
	}
}

// ItemParams lists the item's parameters. Take volume and pan are only
// present when the item has an active take.
func ItemParams(env reaccess.Env, item reaccess.Handle) *ObjSource {
	h := env.Host
	attr := func(key string) Accessor { return ItemAttr{Host: h, Item: item, Key: key} }
	s := NewObjSource(env.T("Item Parameters"),
		AttrProvider(env, env.T("item volume"), attr(reaccess.AttrVolume), MakeVolume))
	if take := h.ActiveTake(item); take != reaccess.Nil {
		s.Add(
			AttrProvider(env, env.T("take volume"), TakeAttr{Host: h, Take: take, Key: reaccess.AttrVolume}, MakeVolume),
			AttrProvider(env, env.T("take pan"), TakeAttr{Host: h, Take: take, Key: reaccess.AttrPan}, MakePan),
		)
	}
	s.Add(
		AttrProvider(env, env.T("mute"), attr(reaccess.AttrMute), MakeToggle),
		AttrProvider(env, env.T("fade in length"), attr(reaccess.AttrFadeInLen), MakeLength),
		AttrProvider(env, env.T("fade out length"), attr(reaccess.AttrFadeOutLen), MakeLength),
	)
	return s
}
