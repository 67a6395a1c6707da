package storage

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarshop/storefront/internal/core/domain"
)

func newMockDB(t *testing.T) (sqlmock.Sqlmock, ProductsRepository, CartsRepository, UsersRepository) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return mock, NewProductsRepository(db), NewCartsRepository(db), NewUsersRepository(db)
}

func TestProductsRepository(t *testing.T) {
	productColumns := []string{
		"id", "name", "category", "style", "price",
		"description", "sizes", "colors", "image",
	}

	t.Run("ProductsScansLists", func(t *testing.T) {
		mock, products, _, _ := newMockDB(t)

		rows := sqlmock.NewRows(productColumns).
			AddRow(int64(1), "Classic White Button-Up Shirt", "tops", "Professional",
				49.99, "Crisp white shirt", "XS,S,M,L,XL", "White,Light Blue",
				"https://example.com/shirt.jpg").
			AddRow(int64(2), "High-Waisted Skinny Jeans", "bottoms", "Casual",
				79.99, "Dark wash jeans", "24,26,28", "", "https://example.com/jeans.jpg")

		mock.ExpectQuery(`SELECT id, name, category`).WillReturnRows(rows)

		vs, err := products.Products(t.Context())
		require.NoError(t, err)
		require.Len(t, vs, 2)
		assert.Equal(t, []string{"XS", "S", "M", "L", "XL"}, vs[0].Sizes)
		assert.Equal(t, []string{"White", "Light Blue"}, vs[0].Colors)
		assert.Nil(t, vs[1].Colors)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ProductNotFound", func(t *testing.T) {
		mock, products, _, _ := newMockDB(t)

		mock.ExpectQuery(`SELECT id, name, category`).
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows(productColumns))

		_, err := products.Product(t.Context(), 404)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SaveProductsUpsertsInTx", func(t *testing.T) {
		mock, products, _, _ := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectPrepare(`INSERT INTO products`)
		mock.ExpectExec(`INSERT INTO products`).
			WithArgs(int64(1), "Classic White Button-Up Shirt", "tops",
				"Professional", 49.99, "Crisp white shirt",
				"S,M", "White", "https://example.com/shirt.jpg").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := products.SaveProducts(t.Context(), []domain.Product{{
			ID: 1, Name: "Classic White Button-Up Shirt", Category: "tops",
			Style: "Professional", Price: 49.99, Description: "Crisp white shirt",
			Sizes: []string{"S", "M"}, Colors: []string{"White"},
			Image: "https://example.com/shirt.jpg",
		}})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SaveProductsRollsBackOnExecError", func(t *testing.T) {
		mock, products, _, _ := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectPrepare(`INSERT INTO products`)
		mock.ExpectExec(`INSERT INTO products`).
			WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		err := products.SaveProducts(t.Context(), []domain.Product{{ID: 1}})
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCartsRepository(t *testing.T) {
	t.Run("MissingSnapshotIsEmptyCart", func(t *testing.T) {
		mock, _, carts, _ := newMockDB(t)

		mock.ExpectQuery(`SELECT items FROM carts`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"items"}))

		cart, err := carts.Cart(t.Context(), 7)
		require.NoError(t, err)
		assert.True(t, cart.Empty())
	})

	t.Run("CorruptSnapshotIsEmptyCart", func(t *testing.T) {
		mock, _, carts, _ := newMockDB(t)

		mock.ExpectQuery(`SELECT items FROM carts`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"items"}).AddRow(`{broken`))

		cart, err := carts.Cart(t.Context(), 7)
		require.NoError(t, err)
		assert.True(t, cart.Empty())
	})

	t.Run("RoundTripSnapshot", func(t *testing.T) {
		mock, _, carts, _ := newMockDB(t)

		snapshot := `[{"product_id":1,"size":"M","color":"White",` +
			`"name":"Classic White Button-Up Shirt","price":49.99,` +
			`"image":"https://example.com/shirt.jpg","quantity":2}]`

		mock.ExpectQuery(`SELECT items FROM carts`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"items"}).AddRow(snapshot))

		cart, err := carts.Cart(t.Context(), 7)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, int64(1), cart.Items[0].ProductID)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("SaveCartUpserts", func(t *testing.T) {
		mock, _, carts, _ := newMockDB(t)

		mock.ExpectExec(`INSERT INTO carts`).
			WithArgs(int64(7), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := carts.SaveCart(t.Context(), 7, domain.Cart{})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteCart", func(t *testing.T) {
		mock, _, carts, _ := newMockDB(t)

		mock.ExpectExec(`DELETE FROM carts`).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := carts.DeleteCart(t.Context(), 7)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUsersRepository(t *testing.T) {
	userColumns := []string{"id", "email", "name", "password_hash", "created_at"}

	t.Run("UserByEmailNotFound", func(t *testing.T) {
		mock, _, _, users := newMockDB(t)

		mock.ExpectQuery(`SELECT id, email, name`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns))

		_, err := users.UserByEmail(t.Context(), "nobody@example.com")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
