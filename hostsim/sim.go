package hostsim

import (
	"slices"

	"github.com/reaccess/reaccess"
)

type (
	// Sim is a simulated host. It mutates the Project it was created from.
	Sim struct {
		p     *Project
		items map[reaccess.Handle]*Item
		takes map[reaccess.Handle]*Take
		itemH map[*Item]reaccess.Handle
		takeH map[*Take]reaccess.Handle
		funcs map[string]any

		lastTime   string
		timeCached bool

		// Touched records every SetNamedConfigParm call as "fx key=value".
		Touched []string
	}
)

const masterHandle reaccess.Handle = 1

func New(p *Project) *Sim {
	s := &Sim{
		p:     p,
		items: map[reaccess.Handle]*Item{},
		takes: map[reaccess.Handle]*Take{},
		itemH: map[*Item]reaccess.Handle{},
		takeH: map[*Take]reaccess.Handle{},
	}
	next := reaccess.Handle(0x10000)
	for t := range p.Tracks {
		for i := range p.Tracks[t].Items {
			it := &p.Tracks[t].Items[i]
			s.items[next], s.itemH[it] = it, next
			next++
			for k := range it.Takes {
				tk := &it.Takes[k]
				s.takes[next], s.takeH[tk] = tk, next
				next++
			}
		}
	}
	s.registerFuncs()
	return s
}

func (s *Sim) Project() *Project { return s.p }

func (s *Sim) Lookup(name string) any {
	if slices.Contains(s.p.Missing, name) {
		return nil
	}
	return s.funcs[name]
}

// track handles: 1 is the master track, 2+i is track i

func (s *Sim) MasterTrack() reaccess.Handle { return masterHandle }

func (s *Sim) Track(index int) reaccess.Handle {
	if index < 0 || index >= len(s.p.Tracks) {
		return reaccess.Nil
	}
	return reaccess.Handle(index + 2)
}

func (s *Sim) track(h reaccess.Handle) *Track {
	if h == masterHandle {
		return &s.p.Master
	}
	i := int(h) - 2
	if i < 0 || i >= len(s.p.Tracks) {
		return nil
	}
	return &s.p.Tracks[i]
}

func (s *Sim) LastTouchedTrack() reaccess.Handle {
	if s.p.LastTouched == nil {
		return reaccess.Nil
	}
	if *s.p.LastTouched == -1 {
		return masterHandle
	}
	return s.Track(*s.p.LastTouched)
}

func (s *Sim) TrackMediaItem(track reaccess.Handle, index int) reaccess.Handle {
	t := s.track(track)
	if t == nil || index < 0 || index >= len(t.Items) {
		return reaccess.Nil
	}
	return s.itemH[&t.Items[index]]
}

func (s *Sim) SelectedMediaItem(index int) reaccess.Handle {
	if index < 0 || index >= len(s.p.SelectedItems) {
		return reaccess.Nil
	}
	ref := s.p.SelectedItems[index]
	return s.TrackMediaItem(s.Track(ref.Track), ref.Item)
}

func (s *Sim) Take(item reaccess.Handle, index int) reaccess.Handle {
	it := s.items[item]
	if it == nil || index < 0 || index >= len(it.Takes) {
		return reaccess.Nil
	}
	return s.takeH[&it.Takes[index]]
}

func (s *Sim) ActiveTake(item reaccess.Handle) reaccess.Handle {
	it := s.items[item]
	if it == nil {
		return reaccess.Nil
	}
	return s.Take(item, it.Active)
}

func (s *Sim) GetSetMediaTrackInfo(track reaccess.Handle, key string, newValue any) any {
	t := s.track(track)
	if t == nil {
		return nil
	}
	switch key {
	case reaccess.AttrVolume:
		return getSetFloat(&t.Volume, newValue)
	case reaccess.AttrPan:
		return getSetFloat(&t.Pan, newValue)
	case reaccess.AttrMute:
		return getSetBool(&t.Mute, newValue)
	case reaccess.AttrTrackNumber:
		if track == masterHandle {
			return -1
		}
		return int(track) - 1
	case reaccess.AttrName:
		return t.Name
	}
	return nil
}

func (s *Sim) TrackNumSends(track reaccess.Handle, category int) int {
	t := s.track(track)
	if t == nil {
		return 0
	}
	switch category {
	case reaccess.CategorySend:
		return len(t.Sends)
	case reaccess.CategoryReceive:
		return len(s.receives(track))
	}
	return 0
}

type sendRef struct {
	src  reaccess.Handle
	send *Send
}

func (s *Sim) receives(track reaccess.Handle) []sendRef {
	var ret []sendRef
	for i := range s.p.Tracks {
		for j := range s.p.Tracks[i].Sends {
			if send := &s.p.Tracks[i].Sends[j]; s.Track(send.Dest) == track {
				ret = append(ret, sendRef{src: s.Track(i), send: send})
			}
		}
	}
	return ret
}

func (s *Sim) GetSetTrackSendInfo(track reaccess.Handle, category, index int, key string, newValue any) any {
	t := s.track(track)
	if t == nil {
		return nil
	}
	var ref sendRef
	switch category {
	case reaccess.CategorySend:
		if index < 0 || index >= len(t.Sends) {
			return nil
		}
		ref = sendRef{src: track, send: &t.Sends[index]}
	case reaccess.CategoryReceive:
		recv := s.receives(track)
		if index < 0 || index >= len(recv) {
			return nil
		}
		ref = recv[index]
	default:
		return nil
	}
	switch key {
	case reaccess.AttrVolume:
		return getSetFloat(&ref.send.Volume, newValue)
	case reaccess.AttrPan:
		return getSetFloat(&ref.send.Pan, newValue)
	case reaccess.AttrMute:
		return getSetBool(&ref.send.Mute, newValue)
	case reaccess.AttrMono:
		return getSetBool(&ref.send.Mono, newValue)
	case reaccess.AttrDestTrack:
		return s.Track(ref.send.Dest)
	case reaccess.AttrSrcTrack:
		return ref.src
	}
	return nil
}

func (s *Sim) GetSetMediaItemInfo(item reaccess.Handle, key string, newValue any) any {
	it := s.items[item]
	if it == nil {
		return nil
	}
	switch key {
	case reaccess.AttrVolume:
		return getSetFloat(&it.Volume, newValue)
	case reaccess.AttrMute:
		return getSetBool(&it.Mute, newValue)
	case reaccess.AttrFadeInLen:
		return getSetFloat(&it.FadeIn, newValue)
	case reaccess.AttrFadeOutLen:
		return getSetFloat(&it.FadeOut, newValue)
	}
	return nil
}

func (s *Sim) GetSetMediaItemTakeInfo(take reaccess.Handle, key string, newValue any) any {
	tk := s.takes[take]
	if tk == nil {
		return nil
	}
	switch key {
	case reaccess.AttrVolume:
		return getSetFloat(&tk.Volume, newValue)
	case reaccess.AttrPan:
		return getSetFloat(&tk.Pan, newValue)
	case reaccess.AttrName:
		return tk.Name
	}
	return nil
}

func (s *Sim) CountTCPFXParms(track reaccess.Handle) int {
	if t := s.track(track); t != nil {
		return len(t.TCP)
	}
	return 0
}

func (s *Sim) TCPFXParm(track reaccess.Handle, index int) (fx, param int, ok bool) {
	t := s.track(track)
	if t == nil || index < 0 || index >= len(t.TCP) {
		return 0, 0, false
	}
	return t.TCP[index].FX, t.TCP[index].Param, true
}

func getSetFloat(dst *float64, newValue any) any {
	if v, ok := newValue.(float64); ok {
		*dst = v
	}
	return *dst
}

func getSetBool(dst *bool, newValue any) any {
	if v, ok := newValue.(bool); ok {
		*dst = v
	}
	return *dst
}
