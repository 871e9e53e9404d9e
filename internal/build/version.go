package build

// Set at link time with -ldflags "-X".
var (
	ShortVersion = "unknown"
	LongVersion  = "unknown"
)
