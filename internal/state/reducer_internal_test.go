package state

import (
	"testing"
	"time"

	"github.com/saifk/ramadan-companion/internal/model"
)

// bogusAction stands in for an action variant the reducer has never heard
// of. Only definable here, since Action is a sealed interface.
type bogusAction struct{}

func (bogusAction) isAction() {}

func TestReduceUnknownVariantIsIdentity(t *testing.T) {
	s := model.DefaultState(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	var r Reducer
	if got := r.Reduce(s, bogusAction{}); got != s {
		t.Error("unknown action variant should return the same state pointer")
	}
	if got := r.Reduce(s, nil); got != s {
		t.Error("nil action should return the same state pointer")
	}
}
