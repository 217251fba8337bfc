package ebiten_test

import (
	"testing"

	debugui_ebiten "github.com/plus3/dashshot/ecs/debugui/ebiten"
	"github.com/stretchr/testify/assert"
)

func TestZeroOverlayIsDisabled(t *testing.T) {
	var overlay debugui_ebiten.Overlay

	assert.False(t, overlay.Enabled())
	assert.NotPanics(t, func() {
		overlay.BeginFrame()
		overlay.EndFrame()
		overlay.Draw(nil)
		overlay.Layout(640, 480)
	})
}
