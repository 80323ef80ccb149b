//go:build glfw

package main

import (
	"github.com/vkngwrapper/vkbootstrap/internal/bootstrap"
	"github.com/vkngwrapper/vkbootstrap/internal/glfwvk"
)

func newWindowing() bootstrap.Windowing {
	return glfwvk.New()
}
