// Package glfwvk implements the bootstrap windowing subsystem with GLFW and
// the Vulkan driver with vulkan-go.
//
// GLFW returns the errors a call expects and panics with a *glfw.Error for
// the rest, such as use before init or an invalid value. Every GLFW call here
// goes through Windowing.call, which turns such a panic into a report on the
// bootstrap ErrorSink. Platform errors no caller accepted are logged by the
// glfw package itself and never reach the sink.
package glfwvk

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"

	"github.com/vkngwrapper/vkbootstrap/internal/bootstrap"
)

type Windowing struct {
	errs *bootstrap.ErrorSink
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

// call runs fn and reports a GLFW error it panics with. Other panics are not
// GLFW notifications and keep unwinding.
func (w *Windowing) call(fn func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if err, ok := r.(error); ok {
			var glfwErr *glfw.Error
			if errors.As(err, &glfwErr) {
				w.report(err)
				return
			}
		}
		panic(r)
	}()
	fn()
}

func (w *Windowing) Init(errs *bootstrap.ErrorSink) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	w.errs = errs
	return nil
}

func (w *Windowing) ConfigureHints(hints bootstrap.WindowHints) {
	w.call(func() {
		glfw.DefaultWindowHints()
		if hints.NoClientAPI {
			glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
		}
		if hints.Undecorated {
			glfw.WindowHint(glfw.Decorated, glfw.False)
		}
	})
}

func (w *Windowing) CreateWindow(width, height int, title string) (bootstrap.Window, error) {
	var window *glfw.Window
	var err error
	w.call(func() {
		window, err = glfw.CreateWindow(width, height, title, nil, nil)
	})
	if err != nil {
		return nil, err
	}
	if window == nil {
		return nil, errors.New("glfw: window was not created")
	}
	return &Window{windowing: w, window: window}, nil
}

func (w *Windowing) RequiredInstanceExtensions(win bootstrap.Window) []string {
	window, ok := win.(*Window)
	if !ok {
		w.report(errors.Newf("glfwvk: foreign window %T", win))
		return nil
	}

	var extensions []string
	w.call(func() {
		extensions = window.window.GetRequiredInstanceExtensions()
	})
	if len(extensions) == 0 {
		w.report(errors.New("glfw: no vulkan instance extensions for window surfaces"))
	}
	return extensions
}

func (w *Windowing) LoadDriver() (bootstrap.Driver, error) {
	if !glfw.VulkanSupported() {
		return nil, errors.New("glfw: no vulkan loader found")
	}

	vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
	if err := vk.Init(); err != nil {
		return nil, errors.Wrap(err, "vulkan-go init")
	}
	return &Driver{}, nil
}

func (w *Windowing) CreateSurface(conn bootstrap.Connection, win bootstrap.Window) (bootstrap.Surface, error) {
	connection, ok := conn.(*Connection)
	if !ok {
		return nil, errors.Newf("glfwvk: foreign connection %T", conn)
	}
	window, ok := win.(*Window)
	if !ok {
		return nil, errors.Newf("glfwvk: foreign window %T", win)
	}

	var surfacePtr uintptr
	var err error
	w.call(func() {
		surfacePtr, err = window.window.CreateWindowSurface(connection.instance, nil)
	})
	if err != nil {
		return nil, err
	}
	if surfacePtr == 0 {
		return nil, errors.New("glfw: surface was not created")
	}

	return &Surface{
		instance: connection.instance,
		surface:  vk.SurfaceFromPointer(surfacePtr),
	}, nil
}

func (w *Windowing) PollEvents() {
	w.call(glfw.PollEvents)
}

func (w *Windowing) Terminate() {
	glfw.Terminate()
	w.errs = nil
}

type Window struct {
	windowing *Windowing
	window    *glfw.Window
}

func (win *Window) ShouldClose() bool {
	closing := false
	win.windowing.call(func() {
		closing = win.window.ShouldClose()
	})
	return closing
}

func (win *Window) Destroy() {
	win.windowing.call(win.window.Destroy)
}
