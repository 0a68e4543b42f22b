package integration

import (
	"context"
	"io"
	"testing"

	"hgtjoin/internal/app"
)

func TestCancelledContext_Exit130(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContext(ctx, tables{}.args(t), io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
