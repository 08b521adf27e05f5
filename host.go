package reaccess

type (
	// Handle is an opaque reference to a host object: a track, a media item
	// or a take. The zero Handle means the object is absent.
	Handle uintptr

	// Resolver looks up host functions by name. A nil result means the host
	// does not provide the function.
	Resolver interface {
		Lookup(name string) any
	}

	// Host is the part of the host API that is always available. FX
	// functions differ between tracks and takes and are resolved by name
	// instead, see ResolveFx.
	//
	// The host owns every object behind a Handle and may change them between
	// any two calls, so nothing returned here should be cached.
	Host interface {
		Resolver

		MasterTrack() Handle
		Track(index int) Handle
		LastTouchedTrack() Handle
		TrackMediaItem(track Handle, index int) Handle
		SelectedMediaItem(index int) Handle
		Take(item Handle, index int) Handle
		ActiveTake(item Handle) Handle

		// The GetSet*Info family returns the current value of the attribute
		// named by key. When newValue is non-nil it is written first. The
		// dynamic type of both values is fixed per key, see the Attr*
		// constants.
		GetSetMediaTrackInfo(track Handle, key string, newValue any) any
		GetSetTrackSendInfo(track Handle, category, index int, key string, newValue any) any
		GetSetMediaItemInfo(item Handle, key string, newValue any) any
		GetSetMediaItemTakeInfo(take Handle, key string, newValue any) any
		TrackNumSends(track Handle, category int) int

		// CountTCPFXParms and TCPFXParm enumerate the FX parameters shown on
		// the track's compact control panel.
		CountTCPFXParms(track Handle) int
		TCPFXParm(track Handle, index int) (fx, param int, ok bool)

		MkVolStr(vol float64) string
		MkPanStr(pan float64) string
		ParsePanStr(text string) float64
		FormatTimeStrPos(sec float64, mode int) string
		ParseTimeStrPos(text string, mode int) float64

		// FormatTime formats sec for speech. It returns "" when the text
		// would be identical to the one produced by the previous call, until
		// ResetTimeCache is called.
		FormatTime(sec float64, format TimeFormat, isLength bool) string
		ResetTimeCache()
	}

	TimeFormat int
)

const Nil Handle = 0

const (
	TimeFormatRuler TimeFormat = iota
	TimeFormatMeasure
	TimeFormatMinSec
	TimeFormatSeconds
)

// Send categories for GetSetTrackSendInfo and TrackNumSends.
const (
	CategoryReceive  = -1
	CategorySend     = 0
	CategoryHardware = 1
)

// Attribute keys. D_ keys carry float64, B_ keys bool, I_ and IP_ keys int,
// P_NAME string and P_DESTTRACK/P_SRCTRACK a Handle.
const (
	AttrVolume      = "D_VOL"
	AttrPan         = "D_PAN"
	AttrMute        = "B_MUTE"
	AttrMono        = "B_MONO"
	AttrFadeInLen   = "D_FADEINLEN"
	AttrFadeOutLen  = "D_FADEOUTLEN"
	AttrTrackNumber = "IP_TRACKNUMBER"
	AttrName        = "P_NAME"
	AttrDestTrack   = "P_DESTTRACK"
	AttrSrcTrack    = "P_SRCTRACK"
)
