package constant

// runtime.GOOS values with a platform-specific opener or process handling.
const (
	Linux   = "linux"
	Darwin  = "darwin"
	Windows = "windows"
	Android = "android"
)
