// Package pagectx carries per-request page state through templ render
// contexts so widgets can read it without the layout passing it down.
package pagectx

import (
	"context"
	"strings"

	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/i18n"
)

// State is the request-scoped page state visible to components.
type State struct {
	CurrentPath string
	Lang        string
	Loc         i18n.Localizer
}

type stateKey struct{}

// WithState returns ctx carrying state.
func WithState(ctx context.Context, state State) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	state.CurrentPath = strings.TrimSpace(state.CurrentPath)
	return context.WithValue(ctx, stateKey{}, state)
}

// FromContext returns the page state stored in ctx, or the zero State.
func FromContext(ctx context.Context) State {
	if ctx == nil {
		return State{}
	}
	state, _ := ctx.Value(stateKey{}).(State)
	return state
}

// T translates key with the localizer carried by ctx.
func T(ctx context.Context, key string, args ...any) string {
	return i18n.T(FromContext(ctx).Loc, key, args...)
}
