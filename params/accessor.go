package params

import "github.com/reaccess/reaccess"

type (
	// Accessor reads one attribute of one host object and, when newValue is
	// non-nil, writes it first. The dynamic type of the values is fixed by
	// the attribute key.
	Accessor interface {
		GetSet(newValue any) any
	}

	TrackAttr struct {
		Host  reaccess.Host
		Track reaccess.Handle
		Key   string
	}

	SendAttr struct {
		Host     reaccess.Host
		Track    reaccess.Handle
		Category int
		Index    int
		Key      string
	}

	ItemAttr struct {
		Host reaccess.Host
		Item reaccess.Handle
		Key  string
	}

	TakeAttr struct {
		Host reaccess.Host
		Take reaccess.Handle
		Key  string
	}
)

func (a TrackAttr) GetSet(newValue any) any {
	return a.Host.GetSetMediaTrackInfo(a.Track, a.Key, newValue)
}

func (a SendAttr) GetSet(newValue any) any {
	return a.Host.GetSetTrackSendInfo(a.Track, a.Category, a.Index, a.Key, newValue)
}

func (a ItemAttr) GetSet(newValue any) any {
	return a.Host.GetSetMediaItemInfo(a.Item, a.Key, newValue)
}

func (a TakeAttr) GetSet(newValue any) any {
	return a.Host.GetSetMediaItemTakeInfo(a.Take, a.Key, newValue)
}

func getFloat(a Accessor) float64 {
	switch v := a.GetSet(nil).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case bool:
		if v {
			return 1
		}
	}
	return 0
}

func getBool(a Accessor) bool {
	switch v := a.GetSet(nil).(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return false
}
