package bootstrap

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// Failure classes. Every error returned by Run carries exactly one of these
// marks; test with errors.Is.
var (
	ErrSubsystemInit      = errors.New("subsystem init failed")
	ErrWindowCreation     = errors.New("window creation failed")
	ErrWindowing          = errors.New("windowing subsystem error")
	ErrConnectionCreation = errors.New("instance creation failed")
	ErrSurfaceCreation    = errors.New("surface creation failed")
	ErrDriverSystem       = errors.New("driver system error")
	ErrUnknown            = errors.New("unknown error")
)

// Category groups failure classes for reporting.
type Category int

const (
	CategorySetup Category = iota
	CategoryDriver
	CategoryUnknown
)

func (c Category) String() string {
	switch c {
	case CategorySetup:
		return "setup"
	case CategoryDriver:
		return "driver"
	default:
		return "unknown"
	}
}

// Setup classes are checked before ErrDriverSystem: a rejected instance is a
// ConnectionCreationError even though its cause is a driver status.
var classes = []struct {
	mark     error
	name     string
	category Category
}{
	{ErrSubsystemInit, "SubsystemInitError", CategorySetup},
	{ErrWindowCreation, "WindowCreationError", CategorySetup},
	{ErrWindowing, "WindowingError", CategorySetup},
	{ErrConnectionCreation, "ConnectionCreationError", CategorySetup},
	{ErrSurfaceCreation, "SurfaceCreationError", CategorySetup},
	{ErrDriverSystem, "DriverSystemError", CategoryDriver},
}

// Classify returns the failure class name and category of err. Errors without
// a known mark are UnknownError.
func Classify(err error) (string, Category) {
	for _, c := range classes {
		if errors.Is(err, c.mark) {
			return c.name, c.category
		}
	}
	return "UnknownError", CategoryUnknown
}

// Report writes the single diagnostic line for a failed run.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	name, category := Classify(err)
	fmt.Fprintf(w, "%s error (%s): %v\n", category, name, err)
}

// mark wraps err with action and tags it with class. A nil err stays nil.
func mark(err error, class error, action string) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrap(err, action), class)
}
