package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoColorStyles_RenderPassthrough(t *testing.T) {
	styles := NoColorStyles()

	assert.Equal(t, "Kant, Immanuel", styles.Key.Render("Kant, Immanuel"))
	assert.Equal(t, "96.50 startswith", styles.Meta.Render("96.50 startswith"))
}

func TestAutoStyles_ReturnsStyles(t *testing.T) {
	// Under `go test` stdout is typically not a terminal; either branch
	// must yield usable styles.
	styles := AutoStyles()
	assert.NotEmpty(t, styles.Key.Render("x"))
}
