//go:build !glfw

package main

import (
	"github.com/vkngwrapper/vkbootstrap/internal/bootstrap"
	"github.com/vkngwrapper/vkbootstrap/internal/sdlvk"
)

func newWindowing() bootstrap.Windowing {
	return sdlvk.New()
}
