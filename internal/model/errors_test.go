package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorWrapping(t *testing.T) {
	wrapped := fmt.Errorf("running: %w", ErrEmptyDocument)
	if !errors.Is(wrapped, ErrEmptyDocument) {
		t.Errorf("errors.Is(wrapped, ErrEmptyDocument) = false, want true")
	}
}
