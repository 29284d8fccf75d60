// Package config provides the allocator handles through which every heap
// allocation performed by the library flows. The core never calls a system
// allocator directly; it only ever goes through a Config.
package config

import "github.com/cwbudde/go-jfes/internal/status"

// Allocator hands out a zeroed byte buffer of the requested size. It
// returns ok=false when the request cannot be satisfied, which every
// caller in this library must translate to status.OutOfMemory.
type Allocator func(size int) (buf []byte, ok bool)

// Releaser returns a previously allocated buffer to the allocator. It must
// tolerate a nil or already-released buffer as a no-op.
type Releaser func(buf []byte)

// Config bundles the allocate/release handles. Two coexisting Configs with
// distinct allocators are independent and may be used by the same caller.
type Config struct {
	Allocate Allocator
	Release  Releaser
}

// Option configures a Config during construction.
type Option func(*Config)

// WithAllocator overrides the allocate handle.
func WithAllocator(a Allocator) Option {
	return func(c *Config) { c.Allocate = a }
}

// WithReleaser overrides the release handle.
func WithReleaser(r Releaser) Option {
	return func(c *Config) { c.Release = r }
}

// New builds a Config from the given options, defaulting to the plain
// Go-slice allocator when no allocator option is supplied.
func New(opts ...Option) *Config {
	c := &Config{
		Allocate: defaultAllocate,
		Release:  defaultRelease,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Default returns a Config backed by ordinary Go slice allocation. This is
// the host-runtime stand-in for environments that do have a working
// allocator behind the scenes.
func Default() *Config {
	return New()
}

func defaultAllocate(size int) ([]byte, bool) {
	if size < 0 {
		return nil, false
	}
	return make([]byte, size), true
}

func defaultRelease(buf []byte) {
	// Garbage collected; nothing to do. Kept as an explicit no-op so the
	// release path is always exercised the same way regardless of backend.
}

// Validate returns status.InvalidArguments if either handle is nil. A
// caller that forgets to set both handles is a programming error, not a
// runtime condition to tolerate. pkg/jfes.ParseToValue calls Validate
// before allocating anything; the create and editor functions that take a
// Config do not validate it.
func (c *Config) Validate() status.Code {
	if c == nil || c.Allocate == nil || c.Release == nil {
		return status.InvalidArguments
	}
	return status.Success
}
