package sdlvk

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3/core1_0"

	"github.com/vkngwrapper/vkbootstrap/internal/bootstrap"
)

func TestWindowFlags(t *testing.T) {
	tests := []struct {
		name    string
		hints   bootstrap.WindowHints
		set     uint32
		cleared uint32
	}{
		{
			name:    "vulkan and borderless",
			hints:   bootstrap.WindowHints{NoClientAPI: true, Undecorated: true},
			set:     sdl.WINDOW_SHOWN | sdl.WINDOW_VULKAN | sdl.WINDOW_BORDERLESS,
			cleared: sdl.WINDOW_OPENGL,
		},
		{
			name:    "opengl with chrome",
			hints:   bootstrap.WindowHints{},
			set:     sdl.WINDOW_SHOWN | sdl.WINDOW_OPENGL,
			cleared: sdl.WINDOW_VULKAN | sdl.WINDOW_BORDERLESS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := windowFlags(tt.hints)
			if flags&tt.set != tt.set {
				t.Errorf("flags %#x missing %#x", flags, tt.set)
			}
			if flags&tt.cleared != 0 {
				t.Errorf("flags %#x should not contain %#x", flags, tt.cleared)
			}
		})
	}
}

type foreign struct{}

func (foreign) Destroy()          {}
func (foreign) ShouldClose() bool { return false }

func TestForeignHandles(t *testing.T) {
	var sink bootstrap.ErrorSink
	w := &Windowing{errs: &sink}

	if exts := w.RequiredInstanceExtensions(foreign{}); exts != nil {
		t.Errorf("extensions = %v, want nil", exts)
	}
	if err := sink.Take(); err == nil {
		t.Error("foreign window was not reported")
	}

	surface, err := w.CreateSurface(foreign{}, foreign{})
	if err == nil || surface != nil {
		t.Errorf("CreateSurface = %v, %v, want an error", surface, err)
	}
}

func TestCreateSurface_SurfaceExtensionInactive(t *testing.T) {
	var sink bootstrap.ErrorSink
	w := &Windowing{errs: &sink}
	instance := core1_0.InternalInstance(3, apiVersion(bootstrap.Version{Major: 1, Minor: 3}), nil)
	conn := &Connection{instanceDriver: &fakeInstanceDriver{instance: instance}}

	surface, err := w.CreateSurface(conn, &Window{windowing: w})
	if err == nil || surface != nil {
		t.Fatalf("CreateSurface = %v, %v, want an error", surface, err)
	}
}

func TestPresentationExtensions(t *testing.T) {
	tests := []struct {
		name       string
		extensions []string
		reported   bool
	}{
		{name: "surface extensions", extensions: []string{"VK_KHR_surface", "VK_KHR_xlib_surface"}},
		{name: "nil from sdl", extensions: nil, reported: true},
		{name: "empty", extensions: []string{}, reported: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sink bootstrap.ErrorSink
			w := &Windowing{errs: &sink}

			got := w.presentationExtensions(tt.extensions)
			if len(got) != len(tt.extensions) {
				t.Errorf("extensions = %v, want %v", got, tt.extensions)
			}
			if err := sink.Take(); (err != nil) != tt.reported {
				t.Errorf("reported %v, want reported = %v", err, tt.reported)
			}
		})
	}
}

func TestPollEvents_EmptyQueue(t *testing.T) {
	if err := sdl.Init(sdl.INIT_EVENTS); err != nil {
		t.Skipf("sdl events unavailable: %v", err)
	}
	defer sdl.Quit()
	sdl.FlushEvents(sdl.FIRSTEVENT, sdl.LASTEVENT)

	var sink bootstrap.ErrorSink
	w := &Windowing{errs: &sink, windows: map[uint32]*Window{}}
	win := &Window{windowing: w, id: 1}
	w.windows[win.id] = win

	for i := 0; i < 5; i++ {
		w.PollEvents()
	}
	if win.ShouldClose() {
		t.Error("window asked to close without a close event")
	}
	if len(w.windows) != 1 {
		t.Errorf("windows = %v, want the one window", w.windows)
	}
	if err := sink.Take(); err != nil {
		t.Errorf("reported %v", err)
	}
}

func TestSortedKeys(t *testing.T) {
	got := sortedKeys(map[string]int{"VK_KHR_surface": 1, "VK_EXT_debug_utils": 2, "VK_KHR_xcb_surface": 3})
	want := []string{"VK_EXT_debug_utils", "VK_KHR_surface", "VK_KHR_xcb_surface"}
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys = %v, want %v", got, want)
		}
	}
}
