package osutil

const Windows = "windows"

type ExitCode int

const ExitError ExitCode = 1

const (
	DirPermission  = 0o755
	FilePermission = 0o644
)
