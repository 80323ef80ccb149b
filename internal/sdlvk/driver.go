package sdlvk

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v3/khr_surface"

	"github.com/vkngwrapper/vkbootstrap/internal/bootstrap"
)

type Driver struct {
	global core1_0.GlobalDriver
}

var _ bootstrap.Driver = (*Driver)(nil)

func driverStatus(err error) error {
	return errors.Mark(err, bootstrap.ErrDriverSystem)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d *Driver) AvailableLayers() ([]string, error) {
	layers, _, err := d.global.AvailableLayers()
	if err != nil {
		return nil, driverStatus(err)
	}
	return sortedKeys(layers), nil
}

func (d *Driver) AvailableExtensions() ([]string, error) {
	extensions, _, err := d.global.AvailableExtensions()
	if err != nil {
		return nil, driverStatus(err)
	}
	return sortedKeys(extensions), nil
}

func version(v bootstrap.Version) common.Version {
	return common.CreateVersion(v.Major, v.Minor, v.Patch)
}

// apiVersion requests the API version with a zero patch number.
func apiVersion(v bootstrap.Version) common.APIVersion {
	return common.APIVersion(common.CreateVersion(v.Major, v.Minor, 0))
}

func instanceFlags(extensions []string) core1_0.InstanceCreateFlags {
	var flags core1_0.InstanceCreateFlags
	for _, ext := range extensions {
		if ext == khr_portability_enumeration.ExtensionName {
			flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
		}
	}
	return flags
}

func (d *Driver) CreateConnection(app bootstrap.AppInfo, layers, extensions []string) (bootstrap.Connection, error) {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:       app.ApplicationName,
		ApplicationVersion:    version(app.ApplicationVersion),
		EngineName:            app.EngineName,
		EngineVersion:         version(app.EngineVersion),
		APIVersion:            apiVersion(app.APIVersion),
		Flags:                 instanceFlags(extensions),
		EnabledLayerNames:     layers,
		EnabledExtensionNames: extensions,
	}

	instance, _, err := d.global.CreateInstance(nil, instanceOptions)
	if err != nil {
		return nil, driverStatus(err)
	}

	instanceDriver, err := d.global.BuildInstanceDriver(instance)
	if err != nil {
		d.global.Loader().VkDestroyInstance(instance.Handle(), nil)
		return nil, errors.Wrap(err, "load instance functions")
	}

	return &Connection{instanceDriver: instanceDriver}, nil
}

type Connection struct {
	instanceDriver core1_0.CoreInstanceDriver
}

func (c *Connection) Destroy() {
	c.instanceDriver.DestroyInstance(nil)
}

type Surface struct {
	surfaceExtension khr_surface.ExtensionDriver
	surface          khr_surface.Surface
}

func (s *Surface) Destroy() {
	if s.surface.Initialized() {
		s.surfaceExtension.DestroySurface(s.surface, nil)
		s.surface = khr_surface.Surface{}
	}
}
