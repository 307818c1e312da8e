package input

import (
	"testing"

	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	held   []cfg.ActionID
	method components.InputMethod
}

func (f fakeSource) Method() components.InputMethod {
	return f.method
}

func (f fakeSource) Poll(state *[cfg.ActionCount]bool) bool {
	for _, a := range f.held {
		state[a] = true
	}
	return len(f.held) > 0
}

func TestControllerMergesSources(t *testing.T) {
	c := &Controller{Sources: []Source{
		fakeSource{held: []cfg.ActionID{cfg.ActionMoveLeft}, method: components.InputKeyboard},
		fakeSource{held: []cfg.ActionID{cfg.ActionJump}, method: components.InputGamepad},
	}}

	state, method := c.Poll()

	assert.True(t, state[cfg.ActionMoveLeft])
	assert.True(t, state[cfg.ActionJump])
	assert.False(t, state[cfg.ActionAttack])
	assert.Equal(t, components.InputGamepad, method)
}

func TestControllerIdleDefaultsToKeyboard(t *testing.T) {
	c := &Controller{Sources: []Source{
		fakeSource{method: components.InputGamepad},
	}}

	state, method := c.Poll()

	assert.Equal(t, [cfg.ActionCount]bool{}, state)
	assert.Equal(t, components.InputKeyboard, method)
}

func TestBindingsCoverGameplayActions(t *testing.T) {
	for _, a := range []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight, cfg.ActionJump, cfg.ActionAttack} {
		assert.NotEmpty(t, Bindings[a].Keys, a.String())
	}
}
