package bootstrap

// Version is a major.minor.patch triple, encoded by each driver binding in
// its own packed format.
type Version struct {
	Major, Minor, Patch uint32
}

// AppInfo is the static application metadata handed to instance creation.
// The driver, not this package, reports an unsupported APIVersion.
type AppInfo struct {
	ApplicationName    string
	ApplicationVersion Version
	EngineName         string
	EngineVersion      Version
	APIVersion         Version
}

// WindowHints are the window attributes applied before the window exists.
type WindowHints struct {
	// NoClientAPI keeps the windowing library from attaching an OpenGL
	// context so the Vulkan surface can bind to the window directly.
	NoClientAPI bool
	// Undecorated suppresses the OS window chrome.
	Undecorated bool
}

// Config holds everything a run needs. There is no file, flag or
// environment layer: DefaultConfig is the compiled-in configuration.
type Config struct {
	Width, Height int
	Title         string
	Hints         WindowHints

	// ValidationLayers are enabled only if the driver reports them.
	ValidationLayers []string
	// OptionalExtensions are appended after the presentation extensions
	// when the driver reports them.
	OptionalExtensions []string

	// MaxIterations caps the event loop.
	MaxIterations int

	App AppInfo
}

const (
	defaultWindowSize    = 512
	defaultMaxIterations = 128
)

var validationLayers = []string{"VK_LAYER_KHRONOS_validation"}

func DefaultConfig() Config {
	return Config{
		Width:  defaultWindowSize,
		Height: defaultWindowSize,
		Title:  "",
		Hints: WindowHints{
			NoClientAPI: true,
			Undecorated: true,
		},
		ValidationLayers:   append([]string(nil), validationLayers...),
		OptionalExtensions: nil,
		MaxIterations:      defaultMaxIterations,
		App: AppInfo{
			ApplicationName:    "",
			ApplicationVersion: Version{Patch: 1},
			EngineName:         "No Engine",
			EngineVersion:      Version{Patch: 1},
			APIVersion:         Version{Major: 1, Minor: 3},
		},
	}
}
