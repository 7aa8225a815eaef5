package fsutil

// File and directory permission constants.
// These follow standard Unix permission conventions and are used
// consistently throughout the harvester.
const (
	// FileModeDefault is the default mode for committed granule files.
	FileModeDefault = 0o644 // -rw-r--r--

	// DirModeDefault is the default mode for created directories.
	DirModeDefault = 0o755 // drwxr-xr-x
)
