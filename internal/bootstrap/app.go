package bootstrap

import (
	"log"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/loov/hrtime"
)

// Application runs the bootstrap sequence once: window, instance, surface, a
// bounded event loop, then teardown in reverse acquisition order.
type Application struct {
	windowing Windowing
	config    Config

	// Out receives the capability listings.
	Out *log.Logger
	// Log receives warnings, step timings and teardown notifications.
	Log *log.Logger

	errs     ErrorSink
	state    State
	releases releaseStack

	window     Window
	driver     Driver
	connection Connection
	surface    Surface

	enabledLayers     []string
	enabledExtensions []string
	iterations        int
}

func New(windowing Windowing, config Config) *Application {
	return &Application{
		windowing: windowing,
		config:    config,
		Out:       log.New(os.Stdout, "", 0),
		Log:       log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (app *Application) State() State {
	return app.state
}

// EnabledLayers is the negotiated layer list passed to instance creation.
func (app *Application) EnabledLayers() []string {
	return app.enabledLayers
}

// EnabledExtensions is the extension list passed to instance creation.
func (app *Application) EnabledExtensions() []string {
	return app.enabledExtensions
}

// Iterations is the number of event loop polls the run executed.
func (app *Application) Iterations() int {
	return app.iterations
}

// Run executes the sequence. Whatever was acquired is released before Run
// returns, on success, on error and on panic.
func (app *Application) Run() (err error) {
	if app.state != StateUninitialized {
		return errors.Mark(errors.Newf("bootstrap: run called in state %s", app.state), ErrUnknown)
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Mark(errors.Newf("bootstrap: panic: %v", r), ErrUnknown)
		}
		app.cleanup()
	}()

	err = app.initWindow()
	if err != nil {
		return err
	}

	err = app.initVulkan()
	if err != nil {
		return err
	}

	return app.mainLoop()
}

func (app *Application) advance(to State) {
	if to <= app.state {
		panic(errors.AssertionFailedf("bootstrap: transition %s -> %s", app.state, to))
	}
	app.state = to
}

// check folds any error notification raised during the last windowing call
// into err. When the call also returned an error, the notification is kept
// as its secondary error.
func (app *Application) check(err error, class error, action string) error {
	notified := app.errs.Take()
	switch {
	case err == nil:
		err = notified
	case notified != nil:
		err = errors.WithSecondaryError(err, notified)
	}
	return mark(err, class, action)
}

func (app *Application) timed(name string, step func() error) error {
	start := hrtime.Now()
	err := step()
	if err == nil {
		app.Log.Printf("%s: %v", name, hrtime.Since(start))
	}
	return err
}

func (app *Application) initWindow() error {
	err := app.windowing.Init(&app.errs)
	if err == nil {
		app.releases.push("shut down windowing subsystem", app.windowing.Terminate)
		app.advance(StateSubsystemReady)
	}
	err = app.check(err, ErrSubsystemInit, "initialize windowing subsystem")
	if err != nil {
		return err
	}

	app.windowing.ConfigureHints(app.config.Hints)
	err = app.check(nil, ErrWindowCreation, "configure window hints")
	if err != nil {
		return err
	}

	window, err := app.windowing.CreateWindow(app.config.Width, app.config.Height, app.config.Title)
	if window != nil {
		app.window = window
		app.releases.push("destroy window", window.Destroy)
		app.advance(StateWindowCreated)
	}
	return app.check(err, ErrWindowCreation, "create window")
}

func (app *Application) initVulkan() error {
	driver, err := app.windowing.LoadDriver()
	err = app.check(err, ErrSubsystemInit, "load vulkan driver")
	if err != nil {
		return err
	}
	app.driver = driver

	err = app.timed("create instance", app.createInstance)
	if err != nil {
		return err
	}

	return app.timed("create surface", app.createSurface)
}

func (app *Application) createInstance() error {
	// Add layers
	layers, err := app.driver.AvailableLayers()
	if err != nil {
		return mark(err, ErrDriverSystem, "enumerate instance layers")
	}

	app.Out.Println("Available layers")
	for _, layer := range layers {
		app.Out.Printf("- %s", layer)
	}

	app.enabledLayers = EnableLayers(app.config.ValidationLayers, layers, func(name string) {
		app.Log.Printf("validation layer not available: %s", name)
	})

	// Add extensions
	extensions, err := app.driver.AvailableExtensions()
	if err != nil {
		return mark(err, ErrDriverSystem, "enumerate instance extensions")
	}

	app.Out.Println("Available extensions")
	for _, ext := range extensions {
		app.Out.Printf("- %s", ext)
	}

	presentation := app.windowing.RequiredInstanceExtensions(app.window)
	err = app.check(nil, ErrWindowing, "query presentation extensions")
	if err != nil {
		return err
	}

	app.enabledExtensions = RequestExtensions(presentation, app.config.OptionalExtensions, extensions, func(name string) {
		app.Log.Printf("optional extension not available: %s", name)
	})

	connection, err := app.driver.CreateConnection(app.config.App, app.enabledLayers, app.enabledExtensions)
	if err != nil {
		return mark(err, ErrConnectionCreation, "create instance")
	}

	app.connection = connection
	app.releases.push("destroy instance", connection.Destroy)
	app.advance(StateConnectionCreated)
	return nil
}

func (app *Application) createSurface() error {
	surface, err := app.windowing.CreateSurface(app.connection, app.window)
	if surface != nil {
		app.surface = surface
		app.releases.push("destroy surface", surface.Destroy)
		app.advance(StateSurfaceBound)
	}
	return app.check(err, ErrSurfaceCreation, "create window surface")
}

func (app *Application) mainLoop() error {
	app.advance(StateRunning)

	iterations, err := EventLoop(app.windowing, app.window, app.config.MaxIterations, &app.errs)
	app.iterations = iterations
	return mark(err, ErrWindowing, "poll events")
}

// cleanup unwinds every release obligation. A notification raised by a
// release is logged and the remaining releases still run.
func (app *Application) cleanup() {
	if app.state == StateTornDown {
		return
	}

	// A failed step has already consumed its notification; anything left
	// belongs to no step.
	if err := app.errs.Take(); err != nil {
		app.Log.Printf("unhandled windowing error: %v", err)
	}

	app.releases.unwind(func(name string) {
		if err := app.errs.Take(); err != nil {
			app.Log.Printf("%s: %v", name, err)
		}
	})

	if n := app.errs.Dropped(); n > 0 {
		app.Log.Printf("%d windowing error reports dropped while another was pending", n)
	}

	app.surface = nil
	app.connection = nil
	app.driver = nil
	app.window = nil
	app.state = StateTornDown
}
