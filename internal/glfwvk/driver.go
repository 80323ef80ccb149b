package glfwvk

import (
	"strings"

	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"

	"github.com/vkngwrapper/vkbootstrap/internal/bootstrap"
)

const (
	portabilityEnumeration = "VK_KHR_portability_enumeration"
	// VK_INSTANCE_CREATE_ENUMERATE_PORTABILITY_BIT_KHR, newer than the
	// vulkan-go headers.
	instanceCreateEnumeratePortability vk.InstanceCreateFlags = 0x00000001
)

type Driver struct{}

var _ bootstrap.Driver = (*Driver)(nil)

func resultError(res vk.Result) error {
	return errors.Mark(vk.Error(res), bootstrap.ErrDriverSystem)
}

// safeString null-terminates s, as vulkan-go passes Go strings to C as-is.
func safeString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func safeStrings(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = safeString(s)
	}
	return out
}

func makeVersion(v bootstrap.Version) uint32 {
	return vk.MakeVersion(int(v.Major), int(v.Minor), int(v.Patch))
}

func instanceFlags(extensions []string) vk.InstanceCreateFlags {
	var flags vk.InstanceCreateFlags
	for _, ext := range extensions {
		if ext == portabilityEnumeration {
			flags |= instanceCreateEnumeratePortability
		}
	}
	return flags
}

func (d *Driver) AvailableLayers() ([]string, error) {
	var count uint32
	if res := vk.EnumerateInstanceLayerProperties(&count, nil); res != vk.Success {
		return nil, resultError(res)
	}
	list := make([]vk.LayerProperties, count)
	if res := vk.EnumerateInstanceLayerProperties(&count, list); res != vk.Success && res != vk.Incomplete {
		return nil, resultError(res)
	}

	names := make([]string, 0, count)
	for _, layer := range list[:count] {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, nil
}

func (d *Driver) AvailableExtensions() ([]string, error) {
	var count uint32
	if res := vk.EnumerateInstanceExtensionProperties("", &count, nil); res != vk.Success {
		return nil, resultError(res)
	}
	list := make([]vk.ExtensionProperties, count)
	if res := vk.EnumerateInstanceExtensionProperties("", &count, list); res != vk.Success && res != vk.Incomplete {
		return nil, resultError(res)
	}

	names := make([]string, 0, count)
	for _, ext := range list[:count] {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

func (d *Driver) CreateConnection(app bootstrap.AppInfo, layers, extensions []string) (bootstrap.Connection, error) {
	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   safeString(app.ApplicationName),
		ApplicationVersion: makeVersion(app.ApplicationVersion),
		PEngineName:        safeString(app.EngineName),
		EngineVersion:      makeVersion(app.EngineVersion),
		ApiVersion:         makeVersion(app.APIVersion),
	}

	createInfo := &vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		Flags:                   instanceFlags(extensions),
		PApplicationInfo:        appInfo,
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     safeStrings(layers),
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: safeStrings(extensions),
	}

	var instance vk.Instance
	if res := vk.CreateInstance(createInfo, nil, &instance); res != vk.Success {
		return nil, resultError(res)
	}

	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return nil, errors.Wrap(err, "load instance functions")
	}

	return &Connection{instance: instance}, nil
}

type Connection struct {
	instance vk.Instance
}

func (c *Connection) Destroy() {
	vk.DestroyInstance(c.instance, nil)
}

type Surface struct {
	instance vk.Instance
	surface  vk.Surface
}

func (s *Surface) Destroy() {
	if s.surface != vk.NullSurface {
		vk.DestroySurface(s.instance, s.surface, nil)
		s.surface = vk.NullSurface
	}
}
