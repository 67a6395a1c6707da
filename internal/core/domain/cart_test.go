package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarshop/storefront/internal/core/domain"
)

var tee = domain.Product{
	ID: 1, Name: "Classic White T-Shirt", Price: 10,
	Image: "https://img.example/tee.jpg",
}

func TestCartAdd(t *testing.T) {
	t.Run("MergesSameIdentity", func(t *testing.T) {
		cart := domain.Cart{}.Add(tee, "M", "Red").Add(tee, "M", "Red")
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.InDelta(t, 20, cart.TotalPrice(), 1e-9)
	})

	t.Run("DifferentSizeIsNewLine", func(t *testing.T) {
		cart := domain.Cart{}.Add(tee, "M", "Red").Add(tee, "L", "Red")
		assert.Len(t, cart.Items, 2)
		assert.Equal(t, 2, cart.TotalQuantity())
	})

	t.Run("SnapshotsProductFields", func(t *testing.T) {
		cart := domain.Cart{}.Add(tee, "M", "Red")
		li := cart.Items[0]
		assert.Equal(t, tee.Name, li.Name)
		assert.Equal(t, tee.Price, li.Price)
		assert.Equal(t, tee.Image, li.Image)
	})

	t.Run("ReceiverNotMutated", func(t *testing.T) {
		cart := domain.Cart{}.Add(tee, "M", "Red")
		_ = cart.Add(tee, "M", "Red")
		assert.Equal(t, 1, cart.Items[0].Quantity)
	})
}

func TestCartRemove(t *testing.T) {
	t.Run("AddThenRemoveRestoresCart", func(t *testing.T) {
		cart := domain.Cart{}
		got := cart.Add(tee, "M", "Red").Remove(tee.ID, "M", "Red")
		assert.Empty(t, got.Items)
	})

	t.Run("AbsentIdentityIsNoop", func(t *testing.T) {
		cart := domain.Cart{}.Add(tee, "M", "Red")
		got := cart.Remove(99, "M", "Red")
		assert.Equal(t, cart.Items, got.Items)
	})
}

func TestCartSetQuantity(t *testing.T) {
	t.Run("AbsoluteSet", func(t *testing.T) {
		cart := domain.Cart{}.Add(tee, "M", "Red")
		got := cart.SetQuantity(tee.ID, "M", "Red", 5)
		require.Len(t, got.Items, 1)
		assert.Equal(t, 5, got.Items[0].Quantity)
	})

	t.Run("ZeroRemovesLine", func(t *testing.T) {
		cart := domain.Cart{}.Add(tee, "M", "Red")
		got := cart.SetQuantity(tee.ID, "M", "Red", 0)
		assert.Empty(t, got.Items)
	})

	t.Run("NegativeRemovesLine", func(t *testing.T) {
		cart := domain.Cart{}.Add(tee, "M", "Red")
		got := cart.SetQuantity(tee.ID, "M", "Red", -3)
		assert.Empty(t, got.Items)
	})

	t.Run("AbsentIdentityIsNoop", func(t *testing.T) {
		cart := domain.Cart{}.Add(tee, "M", "Red")
		got := cart.SetQuantity(99, "S", "Blue", 4)
		assert.Equal(t, cart.Items, got.Items)
	})
}

func TestCartClear(t *testing.T) {
	cart := domain.Cart{}.Add(tee, "M", "Red").Add(tee, "L", "Blue")
	cleared := cart.Clear()
	assert.True(t, cleared.Empty())
	assert.Equal(t, cleared, cleared.Clear())
}

func TestCartTotals(t *testing.T) {
	jeans := domain.Product{ID: 2, Name: "Slim Fit Denim Jeans", Price: 79.99}

	cart := domain.Cart{}.
		Add(tee, "M", "Red").
		Add(tee, "M", "Red").
		Add(jeans, "32", "Blue").
		SetQuantity(jeans.ID, "32", "Blue", 3)

	var want float64
	for _, li := range cart.Items {
		want += li.Price * float64(li.Quantity)
	}
	assert.InDelta(t, want, cart.TotalPrice(), 1e-9)
	assert.Equal(t, 5, cart.TotalQuantity())
}
