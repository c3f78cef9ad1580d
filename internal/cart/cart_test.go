package cart_test

import (
	"testing"

	"github.com/chrisdamba/foodbrowse/internal/cart"
	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	biryani = models.MenuItem{ID: "item1", Name: "Chicken Biryani", Price: 220}
	paneer  = models.MenuItem{ID: "item2", Name: "Paneer Butter Masala", Price: 180}
)

func TestApplyCartEventAddsNewItem(t *testing.T) {
	c := cart.ApplyCartEvent(nil, biryani, 2)
	require.Len(t, c, 1)
	assert.Equal(t, biryani, c[0].MenuItem)
	assert.Equal(t, 2, c[0].Quantity)
}

func TestApplyCartEventSetsAbsoluteQuantity(t *testing.T) {
	c := cart.ApplyCartEvent(nil, biryani, 3)
	c = cart.ApplyCartEvent(c, biryani, 5)
	require.Len(t, c, 1)
	assert.Equal(t, 5, c[0].Quantity)
}

func TestApplyCartEventRemoval(t *testing.T) {
	c := cart.ApplyCartEvent(nil, biryani, 1)
	c = cart.ApplyCartEvent(c, paneer, 2)

	c = cart.ApplyCartEvent(c, biryani, 0)
	require.Len(t, c, 1)
	assert.Equal(t, "item2", c[0].ID)

	again := cart.ApplyCartEvent(c, biryani, 0)
	assert.Equal(t, c, again)

	negative := cart.ApplyCartEvent(c, paneer, -3)
	assert.Empty(t, negative)
}

func TestApplyCartEventKeepsOrderAndInput(t *testing.T) {
	c := cart.ApplyCartEvent(nil, biryani, 1)
	c = cart.ApplyCartEvent(c, paneer, 1)

	next := cart.ApplyCartEvent(c, biryani, 4)
	assert.Equal(t, []string{"item1", "item2"}, []string{next[0].ID, next[1].ID})
	assert.Equal(t, 1, c[0].Quantity, "input must not change")
}

func TestTotals(t *testing.T) {
	c := cart.ApplyCartEvent(nil, biryani, 2)
	c = cart.ApplyCartEvent(c, paneer, 3)

	assert.Equal(t, 5, cart.ItemCount(c))
	assert.Equal(t, 2*220+3*180, cart.Subtotal(c))
	assert.Equal(t, 3, cart.Quantity(c, "item2"))
	assert.Equal(t, 0, cart.Quantity(c, "missing"))

	assert.Equal(t, 0, cart.ItemCount(nil))
	assert.Equal(t, 0, cart.Subtotal(nil))
}

func TestSummarize(t *testing.T) {
	c := cart.ApplyCartEvent(nil, biryani, 2)
	summary := cart.Summarize(c)

	assert.Equal(t, 2, summary.ItemCount)
	assert.Equal(t, 440, summary.Subtotal)
	summary.Items[0].Quantity = 9
	assert.Equal(t, 2, c[0].Quantity)

	empty := cart.Summarize(nil)
	assert.NotNil(t, empty.Items)
}
