package status

import (
	"sync/atomic"
)

// MaxStringLen caps stored strings so HUD rows stay bounded
const MaxStringLen = 24

// AtomicString is a string slot safe for one writer and many readers
// Zero value holds the empty string
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncating to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
