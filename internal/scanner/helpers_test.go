package scanner

import (
	"errors"
	"testing"
)

// mustPanic проверяет, что fn паникует с *PreconditionError
func mustPanic(t *testing.T, op string, fn func()) *PreconditionError {
	t.Helper()
	var got *PreconditionError
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("%s: expected panic", op)
			}
			err, ok := r.(error)
			if !ok || !errors.As(err, &got) {
				t.Fatalf("%s: expected *PreconditionError, got %v", op, r)
			}
		}()
		fn()
	}()
	if got.Op != op {
		t.Errorf("expected Op %q, got %q", op, got.Op)
	}
	return got
}
