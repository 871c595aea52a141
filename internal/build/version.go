package build

var (
	ShortVersion = "0.0.0"
	GitRef       = "unknown"
)

var LongVersion = ShortVersion + " (" + GitRef + ")"
