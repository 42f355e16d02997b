package cssscope_test

import (
	"testing"

	"github.com/emmetio/py-emmet/internal/cssscope"
)

func TestScopeSentinelsAreDistinct(t *testing.T) {
	all := map[cssscope.Scope]bool{
		cssscope.Global:   true,
		cssscope.Section:  true,
		cssscope.Property: true,
		cssscope.Value:    true,
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 distinct scope sentinels, got %d", len(all))
	}
	if cssscope.Value != "@@value" {
		t.Fatalf("expected the @@value sentinel spelling, got %q", cssscope.Value)
	}
}
