package config

import (
	"testing"

	"github.com/cwbudde/go-jfes/internal/status"
)

func TestDefaultAllocateRelease(t *testing.T) {
	cfg := Default()

	buf, ok := cfg.Allocate(8)
	if !ok {
		t.Fatal("Allocate(8) returned ok=false")
	}
	if len(buf) != 8 {
		t.Fatalf("Allocate(8) returned buffer of length %d, want 8", len(buf))
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("Allocate did not return a zeroed buffer: buf[%d] = %d", i, b)
		}
	}

	cfg.Release(buf) // must not panic
}

func TestDefaultAllocateNegativeSize(t *testing.T) {
	cfg := Default()

	if _, ok := cfg.Allocate(-1); ok {
		t.Error("Allocate(-1) returned ok=true, want false")
	}
}

func TestNewWithOptions(t *testing.T) {
	var allocated, released int

	cfg := New(
		WithAllocator(func(size int) ([]byte, bool) {
			allocated++
			return make([]byte, size), true
		}),
		WithReleaser(func(buf []byte) {
			released++
		}),
	)

	buf, ok := cfg.Allocate(4)
	if !ok {
		t.Fatal("Allocate(4) returned ok=false")
	}
	cfg.Release(buf)

	if allocated != 1 {
		t.Errorf("allocated = %d, want 1", allocated)
	}
	if released != 1 {
		t.Errorf("released = %d, want 1", released)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want status.Code
	}{
		{"nil config", nil, status.InvalidArguments},
		{"nil allocate", &Config{Release: defaultRelease}, status.InvalidArguments},
		{"nil release", &Config{Allocate: defaultAllocate}, status.InvalidArguments},
		{"valid", Default(), status.Success},
	}

	for _, tt := range tests {
		if got := tt.cfg.Validate(); got != tt.want {
			t.Errorf("%s: Validate() = %s, want %s", tt.name, got, tt.want)
		}
	}
}
