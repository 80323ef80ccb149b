package bootstrap

// Windowing is the platform windowing subsystem. All calls happen on the
// thread that called Init.
type Windowing interface {
	// Init starts the subsystem. Error notifications raised by later calls
	// are reported to errs until Terminate.
	Init(errs *ErrorSink) error
	ConfigureHints(hints WindowHints)
	// CreateWindow returns a nil Window whenever it returns an error.
	CreateWindow(width, height int, title string) (Window, error)
	// RequiredInstanceExtensions lists, in order, the instance extensions the
	// platform needs to present to win.
	RequiredInstanceExtensions(win Window) []string
	// LoadDriver resolves the Vulkan entry points through the subsystem's
	// loader.
	LoadDriver() (Driver, error)
	// CreateSurface binds a presentable surface to win under conn. It returns
	// a nil Surface whenever it returns an error.
	CreateSurface(conn Connection, win Window) (Surface, error)
	// PollEvents drains pending events without blocking.
	PollEvents()
	// Terminate shuts the subsystem down. No window may be alive.
	Terminate()
}

type Window interface {
	ShouldClose() bool
	Destroy()
}

// Driver is the Vulkan global-level entry point table.
type Driver interface {
	AvailableLayers() ([]string, error)
	AvailableExtensions() ([]string, error)
	// CreateConnection creates the instance. It returns a nil Connection
	// whenever it returns an error.
	CreateConnection(app AppInfo, layers, extensions []string) (Connection, error)
}

// Connection is a live Vulkan instance.
type Connection interface {
	Destroy()
}

// Surface is a presentable surface owned by a Connection. It must be
// destroyed before that Connection.
type Surface interface {
	Destroy()
}
