// Command vkbootstrap opens a window, creates a Vulkan instance and a window
// surface, polls events for a bounded number of iterations and tears
// everything down again.
//
// The default build uses SDL2 and vkngwrapper; build with -tags glfw for GLFW
// and vulkan-go.
package main

import (
	"os"
	"runtime"

	"github.com/vkngwrapper/vkbootstrap/internal/bootstrap"
)

func init() {
	// SDL2 and GLFW must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	app := bootstrap.New(newWindowing(), bootstrap.DefaultConfig())

	err := app.Run()
	if err != nil {
		bootstrap.Report(os.Stderr, err)
		app.Log.Printf("%+v", err)
		return 1
	}

	return 0
}
