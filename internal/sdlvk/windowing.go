// Package sdlvk implements the bootstrap windowing subsystem with SDL2 and
// the Vulkan driver with vkngwrapper.
package sdlvk

import (
	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"

	"github.com/vkngwrapper/vkbootstrap/internal/bootstrap"
)

type Windowing struct {
	errs    *bootstrap.ErrorSink
	hints   bootstrap.WindowHints
	windows map[uint32]*Window
}

var _ bootstrap.Windowing = (*Windowing)(nil)

func New() *Windowing {
	return &Windowing{}
}

func (w *Windowing) report(err error) {
	if w.errs != nil {
		w.errs.Report(err)
	}
}

func (w *Windowing) Init(errs *bootstrap.ErrorSink) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}

	w.errs = errs
	w.windows = make(map[uint32]*Window)
	return nil
}

func (w *Windowing) ConfigureHints(hints bootstrap.WindowHints) {
	w.hints = hints
}

// windowFlags maps hints onto SDL window flags. SDL has no "no client API"
// mode: a Vulkan window is what keeps it from creating a GL context.
func windowFlags(hints bootstrap.WindowHints) uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)
	if hints.NoClientAPI {
		flags |= sdl.WINDOW_VULKAN
	} else {
		flags |= sdl.WINDOW_OPENGL
	}
	if hints.Undecorated {
		flags |= sdl.WINDOW_BORDERLESS
	}
	return flags
}

func (w *Windowing) CreateWindow(width, height int, title string) (bootstrap.Window, error) {
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(width), int32(height), windowFlags(w.hints))
	if err != nil {
		return nil, err
	}

	id, err := window.GetID()
	if err != nil {
		window.Destroy()
		return nil, err
	}

	win := &Window{windowing: w, window: window, id: id}
	w.windows[id] = win
	return win, nil
}

func (w *Windowing) RequiredInstanceExtensions(win bootstrap.Window) []string {
	window, ok := win.(*Window)
	if !ok {
		w.report(errors.Newf("sdlvk: foreign window %T", win))
		return nil
	}
	return w.presentationExtensions(window.window.VulkanGetInstanceExtensions())
}

// presentationExtensions reports an empty list: SDL returns nil when it
// cannot name the extensions a Vulkan surface for the window needs.
func (w *Windowing) presentationExtensions(extensions []string) []string {
	if len(extensions) == 0 {
		w.report(errors.New("sdl: no vulkan instance extensions for window"))
	}
	return extensions
}

func (w *Windowing) LoadDriver() (bootstrap.Driver, error) {
	globalDriver, err := core.CreateDriverFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return nil, err
	}
	return &Driver{global: globalDriver}, nil
}

func (w *Windowing) CreateSurface(conn bootstrap.Connection, win bootstrap.Window) (bootstrap.Surface, error) {
	connection, ok := conn.(*Connection)
	if !ok {
		return nil, errors.Newf("sdlvk: foreign connection %T", conn)
	}
	window, ok := win.(*Window)
	if !ok {
		return nil, errors.Newf("sdlvk: foreign window %T", win)
	}

	surfaceExtension := khr_surface.CreateExtensionDriverFromCoreDriver(connection.instanceDriver)
	if surfaceExtension == nil {
		return nil, errors.Newf("sdlvk: instance was created without %s", khr_surface.ExtensionName)
	}
	surface, err := vkng_sdl2.CreateSurface(connection.instanceDriver.Instance(), surfaceExtension, window.window)
	if err != nil {
		return nil, err
	}

	return &Surface{surfaceExtension: surfaceExtension, surface: surface}, nil
}

func (w *Windowing) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			for _, win := range w.windows {
				win.closing = true
			}
		case *sdl.WindowEvent:
			if e.Event != sdl.WINDOWEVENT_CLOSE {
				continue
			}
			if win, ok := w.windows[e.WindowID]; ok {
				win.closing = true
			}
		}
	}
}

func (w *Windowing) Terminate() {
	sdl.Quit()
	w.windows = nil
	w.errs = nil
}

type Window struct {
	windowing *Windowing
	window    *sdl.Window
	id        uint32
	closing   bool
}

func (win *Window) ShouldClose() bool {
	return win.closing
}

func (win *Window) Destroy() {
	delete(win.windowing.windows, win.id)
	if err := win.window.Destroy(); err != nil {
		win.windowing.report(err)
	}
}
