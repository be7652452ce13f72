package constant

// Values of runtime.GOOS that need special handling.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Android is reported by Go builds running under Termux.
const Android = "android"
