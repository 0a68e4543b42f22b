package writers

import (
	"errors"
	"fmt"
	"io"
	"syscall"
	"testing"
)

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatalf("bare pipe errors not recognized")
	}
	if !IsBrokenPipe(fmt.Errorf("write /dev/stdout: %w", syscall.EPIPE)) {
		t.Fatalf("wrapped EPIPE not recognized")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("disk full")) {
		t.Fatalf("false positive")
	}
}
