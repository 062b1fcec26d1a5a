package execution

import (
	"fmt"
	"os"
)

// DeviceToken represents exclusive use of the accelerator while held. The
// hardware cannot be shared by two notebook executions, so the token is
// acquired once before any case starts and released after the run. The
// scheduler refuses to run without one, which makes the serialization
// requirement an explicit contract rather than an accident of
// single-threaded invocation.
type DeviceToken struct {
	path string
}

// AcquireDevice takes the accelerator lock. It fails if another run holds it.
func AcquireDevice(path string) (*DeviceToken, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("accelerator lock %s is held by another run", path)
		}
		return nil, fmt.Errorf("acquire accelerator lock: %w", err)
	}
	fmt.Fprintf(f, "%d\n", os.Getpid())
	f.Close()

	return &DeviceToken{path: path}, nil
}

// Release gives the accelerator back.
func (t *DeviceToken) Release() error {
	if t == nil {
		return nil
	}
	return os.Remove(t.path)
}

// Path returns the lock file location.
func (t *DeviceToken) Path() string {
	return t.path
}
