package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-storefront/models"
)

func burger() models.MenuItem {
	return models.MenuItem{
		ID:            "burger-1",
		Name:          "Classic Burger",
		CategoryLabel: "Mains",
		Price:         500,
		Available:     true,
	}
}

func soda() models.MenuItem {
	return models.MenuItem{
		ID:            "soda-1",
		Name:          "Cola",
		CategoryLabel: "Drinks",
		Price:         150,
		Available:     true,
	}
}

func TestAddItemMergesQuantity(t *testing.T) {
	c := New()
	c.AddItem(burger(), 1)
	c.AddItem(burger(), 2)

	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestAddItemIgnoresNonPositiveQuantity(t *testing.T) {
	c := New()
	c.AddItem(burger(), 0)
	c.AddItem(burger(), -2)

	assert.True(t, c.Empty())
	assert.Equal(t, 0.0, c.Total())
	assert.Equal(t, 0, c.Count())
}

func TestTotalAndCount(t *testing.T) {
	c := New()
	c.AddItem(burger(), 2)
	c.AddItem(soda(), 1)

	assert.Equal(t, 1150.0, c.Total())
	assert.Equal(t, 3, c.Count())
}

func TestAddThenRemoveRoundTrip(t *testing.T) {
	c := New()
	c.AddItem(burger(), 2)
	before := c.Total()

	c.AddItem(soda(), 3)
	c.RemoveItem(soda().ID)

	assert.Equal(t, before, c.Total())
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(burger(), 2)
	c.AddItem(soda(), 1)

	c.UpdateQuantity("burger-1", 0)

	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, "soda-1", lines[0].ItemID)
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	c := New()
	c.AddItem(burger(), 2)

	c.UpdateQuantity("pizza-9", 5)

	assert.Equal(t, 1000.0, c.Total())
	assert.Len(t, c.Lines(), 1)
}

func TestNoLineEverRetainsQuantityBelowOne(t *testing.T) {
	c := New()
	c.AddItem(burger(), 3)
	c.AddItem(soda(), 2)
	c.UpdateQuantity("burger-1", -4)
	c.UpdateQuantity("soda-1", 1)
	c.AddItem(soda(), -1)

	for _, l := range c.Lines() {
		assert.GreaterOrEqual(t, l.Quantity, 1)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	c := New()
	c.AddItem(burger(), 1)
	c.AddItem(soda(), 1)
	c.AddItem(burger(), 1)

	lines := c.Lines()
	assert.Equal(t, "burger-1", lines[0].ItemID)
	assert.Equal(t, "soda-1", lines[1].ItemID)
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(burger(), 2)
	c.Clear()

	assert.True(t, c.Empty())
	assert.Equal(t, 0.0, c.Total())
}

func TestListenersSeeEveryMutation(t *testing.T) {
	c := New()

	var totals []float64
	var counts []int
	c.Subscribe(func(total float64, count int) {
		totals = append(totals, total)
		counts = append(counts, count)
	})

	c.AddItem(burger(), 2)
	c.UpdateQuantity("burger-1", 1)
	c.Clear()

	assert.Equal(t, []float64{1000, 500, 0}, totals)
	assert.Equal(t, []int{2, 1, 0}, counts)
}

func TestDraftItems(t *testing.T) {
	c := New()
	c.AddItem(burger(), 2)
	c.AddItem(soda(), 1)

	items := c.DraftItems()
	assert.Equal(t, []models.DraftItem{
		{MenuItemID: "burger-1", Quantity: 2, Price: 500},
		{MenuItemID: "soda-1", Quantity: 1, Price: 150},
	}, items)
}
