//go:build !linux

package mpris

import (
	"errors"

	"github.com/llehouerou/simplicity/internal/playback"
)

// ErrUnsupported is returned by New where there is no session bus to
// register on.
var ErrUnsupported = errors.New("mpris: only available on linux")

// Adapter is never constructed outside linux.
type Adapter struct{}

// New always fails with ErrUnsupported.
func New(playback.Service) (*Adapter, error) { return nil, ErrUnsupported }

// Close does nothing.
func (*Adapter) Close() error { return nil }
