package schema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zarshop/storefront/pkg/schema"
)

type MockSchemaIdentifier struct {
	mock.Mock
}

func (c *MockSchemaIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (id int, err error) {
	args := c.Called(ctx, subject, avroSchemaText)
	return args.Int(0), args.Error(1)
}

func TestSerdeProductV1(t *testing.T) {

	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewSerdeProductV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewSerdeProductV1(
			t.Context(),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("IdentifierAndSubjectOpts", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 1
		subject := "testTopic-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.ProductSchemaTextV1,
		).Return(schemaID, nil)

		_, err := schema.NewSerdeProductV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 1
		subject := "testTopic-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.ProductSchemaTextV1,
		).Return(schemaID, nil)

		serde, err := schema.NewSerdeProductV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)

		productValue1 := schema.ProductV1{
			ID:          42,
			Name:        "Silk Wrap Dress",
			Category:    "dresses",
			Style:       "Elegant",
			Price:       189.99,
			Description: "Flowing silk wrap dress",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Emerald", "Black"},
			Image:       "https://example.com/dress.jpg",
		}

		encodedData, err := serde.Encode(productValue1)
		require.NoError(t, err)

		var productValue2 schema.ProductV1
		err = serde.Decode(encodedData, &productValue2)
		require.NoError(t, err)

		assert.Equal(t, productValue1.ID, productValue2.ID)
		assert.Equal(t, productValue1.Name, productValue2.Name)
		assert.Equal(t, productValue1.Category, productValue2.Category)
		assert.Equal(t, productValue1.Style, productValue2.Style)
		assert.Equal(t, productValue1.Price, productValue2.Price)
		assert.Equal(t, productValue1.Description, productValue2.Description)
		assert.Equal(t, productValue1.Image, productValue2.Image)

		require.Len(t, productValue2.Sizes, len(productValue1.Sizes))
		for i, v := range productValue2.Sizes {
			assert.Equal(t, productValue1.Sizes[i], v)
		}

		require.Len(t, productValue2.Colors, len(productValue1.Colors))
		for i, v := range productValue2.Colors {
			assert.Equal(t, productValue1.Colors[i], v)
		}
	})
}

func TestSerdeOrderPlacedV1(t *testing.T) {
	t.Run("EncodeDecode", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		subject := "orders.placed-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.OrderPlacedSchemaTextV1,
		).Return(2, nil)

		serde, err := schema.NewSerdeOrderPlacedV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)

		orderValue1 := schema.OrderPlacedV1{
			OrderID:   "f2f9c9b0-7f63-4f6e-9a8f-1f4a2f8b9c10",
			UserID:    7,
			Total:     279.98,
			Status:    "pending",
			CreatedAt: "2025-11-02T10:15:00Z",
			Items: []schema.OrderLineV1{
				{
					ProductID: 1,
					Size:      "M",
					Color:     "Black",
					Name:      "Classic White Button-Up Shirt",
					Price:     49.99,
					Quantity:  2,
				},
			},
		}

		encodedData, err := serde.Encode(orderValue1)
		require.NoError(t, err)

		var orderValue2 schema.OrderPlacedV1
		err = serde.Decode(encodedData, &orderValue2)
		require.NoError(t, err)

		assert.Equal(t, orderValue1.OrderID, orderValue2.OrderID)
		assert.Equal(t, orderValue1.UserID, orderValue2.UserID)
		assert.Equal(t, orderValue1.Total, orderValue2.Total)
		assert.Equal(t, orderValue1.Status, orderValue2.Status)
		assert.Equal(t, orderValue1.CreatedAt, orderValue2.CreatedAt)

		require.Len(t, orderValue2.Items, len(orderValue1.Items))
		for i, v := range orderValue2.Items {
			assert.Equal(t, orderValue1.Items[i], v)
		}
	})
}

func TestSerdeProductViewV1(t *testing.T) {
	t.Run("EncodeDecode", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		subject := "products.views-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.ProductViewSchemaTextV1,
		).Return(3, nil)

		serde, err := schema.NewSerdeProductViewV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)

		viewValue1 := schema.ProductViewV1{
			ProductID: 5,
			UserID:    7,
			ViewedAt:  "2025-11-02T10:15:00Z",
		}

		encodedData, err := serde.Encode(viewValue1)
		require.NoError(t, err)

		var viewValue2 schema.ProductViewV1
		err = serde.Decode(encodedData, &viewValue2)
		require.NoError(t, err)

		assert.Equal(t, viewValue1, viewValue2)
	})
}
