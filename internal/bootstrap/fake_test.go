package bootstrap

import (
	"bytes"
	"log"

	"github.com/cockroachdb/errors"
)

// journal records acquisitions and releases. Each acquisition gets the next
// index; a release records the index of the resource it released.
type journal struct {
	acquired map[string]int
	order    []string
	released []string
	indices  []int
}

func newJournal() *journal {
	return &journal{acquired: map[string]int{}}
}

func (j *journal) acquire(name string) {
	j.acquired[name] = len(j.order)
	j.order = append(j.order, name)
}

func (j *journal) release(name string) {
	j.released = append(j.released, name)
	j.indices = append(j.indices, j.acquired[name])
}

func (j *journal) has(name string) bool {
	_, ok := j.acquired[name]
	return ok
}

func (j *journal) wasReleased(name string) bool {
	for _, r := range j.released {
		if r == name {
			return true
		}
	}
	return false
}

type fakeWindowing struct {
	journal *journal
	errs    *ErrorSink

	initErr    error
	windowErr  error
	surfaceErr error
	driverErr  error
	// notify maps a call name to an error reported to the sink during it.
	notify map[string]error

	hints        WindowHints
	presentation []string
	driver       *fakeDriver
	window       *fakeWindow

	// closeAfter makes the window ask to close once that many polls ran.
	closeAfter int
	polls      int
}

func (w *fakeWindowing) raise(call string) {
	if err, ok := w.notify[call]; ok && w.errs != nil {
		w.errs.Report(err)
	}
}

func (w *fakeWindowing) Init(errs *ErrorSink) error {
	w.errs = errs
	w.raise("init")
	if w.initErr != nil {
		return w.initErr
	}
	w.journal.acquire("subsystem")
	return nil
}

func (w *fakeWindowing) ConfigureHints(hints WindowHints) {
	w.hints = hints
	w.raise("hints")
}

func (w *fakeWindowing) CreateWindow(width, height int, title string) (Window, error) {
	w.raise("window")
	if w.windowErr != nil {
		return nil, w.windowErr
	}
	w.journal.acquire("window")
	w.window = &fakeWindow{windowing: w, width: width, height: height, title: title}
	return w.window, nil
}

func (w *fakeWindowing) RequiredInstanceExtensions(win Window) []string {
	w.raise("extensions")
	return append([]string(nil), w.presentation...)
}

func (w *fakeWindowing) LoadDriver() (Driver, error) {
	w.raise("driver")
	if w.driverErr != nil {
		return nil, w.driverErr
	}
	return w.driver, nil
}

func (w *fakeWindowing) CreateSurface(conn Connection, win Window) (Surface, error) {
	w.raise("surface")
	if w.surfaceErr != nil {
		return nil, w.surfaceErr
	}
	if !w.journal.has("instance") || w.journal.wasReleased("instance") {
		return nil, errors.New("surface requested without a live instance")
	}
	w.journal.acquire("surface")
	return &fakeResource{journal: w.journal, name: "surface"}, nil
}

func (w *fakeWindowing) PollEvents() {
	w.polls++
	w.raise("poll")
}

func (w *fakeWindowing) Terminate() {
	w.journal.release("subsystem")
}

type fakeWindow struct {
	windowing     *fakeWindowing
	width, height int
	title         string
}

func (win *fakeWindow) ShouldClose() bool {
	return win.windowing.closeAfter > 0 && win.windowing.polls >= win.windowing.closeAfter
}

func (win *fakeWindow) Destroy() {
	win.windowing.raise("destroy window")
	win.windowing.journal.release("window")
}

type fakeDriver struct {
	journal *journal

	layers     []string
	extensions []string
	layersErr  error
	createErr  error

	gotApp        AppInfo
	gotLayers     []string
	gotExtensions []string
}

func (d *fakeDriver) AvailableLayers() ([]string, error) {
	return d.layers, d.layersErr
}

func (d *fakeDriver) AvailableExtensions() ([]string, error) {
	return d.extensions, nil
}

func (d *fakeDriver) CreateConnection(app AppInfo, layers, extensions []string) (Connection, error) {
	d.gotApp = app
	d.gotLayers = layers
	d.gotExtensions = extensions
	if d.createErr != nil {
		return nil, d.createErr
	}
	d.journal.acquire("instance")
	return &fakeResource{journal: d.journal, name: "instance"}, nil
}

type fakeResource struct {
	journal *journal
	name    string
}

func (r *fakeResource) Destroy() {
	r.journal.release(r.name)
}

type fixture struct {
	journal   *journal
	windowing *fakeWindowing
	driver    *fakeDriver
	out       *bytes.Buffer
	log       *bytes.Buffer
}

func newFixture() *fixture {
	j := newJournal()
	d := &fakeDriver{
		journal:    j,
		layers:     []string{"VK_LAYER_KHRONOS_validation"},
		extensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface"},
	}
	return &fixture{
		journal: j,
		driver:  d,
		windowing: &fakeWindowing{
			journal:      j,
			driver:       d,
			presentation: []string{"VK_KHR_surface", "VK_KHR_xcb_surface"},
			notify:       map[string]error{},
		},
		out: &bytes.Buffer{},
		log: &bytes.Buffer{},
	}
}

func (f *fixture) app(config Config) *Application {
	app := New(f.windowing, config)
	app.Out = log.New(f.out, "", 0)
	app.Log = log.New(f.log, "", 0)
	return app
}
