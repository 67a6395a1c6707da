package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarshop/storefront/internal/core/domain"
)

func testCatalog() []domain.Product {
	return []domain.Product{
		{
			ID: 1, Name: "Classic White T-Shirt", Category: "Tops",
			Style: "Casual", Price: 29.99,
			Description: "Premium cotton t-shirt with comfortable fit",
		},
		{
			ID: 3, Name: "Leather Jacket", Category: "Outerwear",
			Style: "Edgy", Price: 199.99,
			Description: "Genuine leather jacket with classic design",
		},
		{
			ID: 6, Name: "Formal Blazer", Category: "Outerwear",
			Style: "Professional", Price: 149.99,
			Description: "Elegant blazer for professional occasions",
		},
		{
			ID: 5, Name: "Running Shoes", Category: "Shoes",
			Style: "Sporty", Price: 129.99,
			Description: "Comfortable running shoes with excellent support",
		},
	}
}

func productIDs(ps []domain.Product) []int64 {
	ids := make([]int64, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFilterCatalog(t *testing.T) {
	t.Run("EmptyCriteriaMatchesAll", func(t *testing.T) {
		ps := testCatalog()
		got := domain.FilterCatalog(ps, domain.FilterCriteria{})
		assert.Equal(t, productIDs(ps), productIDs(got))
	})

	t.Run("BudgetScenario", func(t *testing.T) {
		budget := 50.0
		got := domain.FilterCatalog(
			testCatalog(), domain.FilterCriteria{Budget: &budget},
		)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("SearchCaseInsensitive", func(t *testing.T) {
		upper := domain.FilterCatalog(
			testCatalog(), domain.FilterCriteria{Search: "SHIRT"},
		)
		lower := domain.FilterCatalog(
			testCatalog(), domain.FilterCriteria{Search: "shirt"},
		)
		assert.Equal(t, upper, lower)
		require.Len(t, lower, 1)
		assert.Equal(t, int64(1), lower[0].ID)
	})

	t.Run("SearchMatchesCategory", func(t *testing.T) {
		got := domain.FilterCatalog(
			testCatalog(), domain.FilterCriteria{Search: "outerwear"},
		)
		assert.Equal(t, []int64{3, 6}, productIDs(got))
	})

	t.Run("ConjunctionEqualsIntersection", func(t *testing.T) {
		ps := testCatalog()
		budget := 160.0
		c1 := domain.FilterCriteria{Category: "Outerwear"}
		c2 := domain.FilterCriteria{Budget: &budget}
		both := domain.FilterCriteria{Category: "Outerwear", Budget: &budget}

		first := domain.FilterCatalog(ps, c1)
		second := domain.FilterCatalog(ps, c2)
		combined := domain.FilterCatalog(ps, both)

		intersection := make(map[int64]struct{})
		for _, p := range first {
			intersection[p.ID] = struct{}{}
		}
		var want []int64
		for _, p := range second {
			if _, ok := intersection[p.ID]; ok {
				want = append(want, p.ID)
			}
		}
		assert.Equal(t, want, productIDs(combined))
	})

	t.Run("OccasionWork", func(t *testing.T) {
		got := domain.FilterCatalog(
			testCatalog(), domain.FilterCriteria{Occasion: "Work"},
		)
		assert.Equal(t, []int64{1, 6}, productIDs(got))
	})

	t.Run("UnknownOccasionImposesNoConstraint", func(t *testing.T) {
		ps := testCatalog()
		got := domain.FilterCatalog(
			ps, domain.FilterCriteria{Occasion: "wedding"},
		)
		assert.Equal(t, productIDs(ps), productIDs(got))
	})

	t.Run("NegativeBudgetYieldsEmptyNotError", func(t *testing.T) {
		budget := -1.0
		got := domain.FilterCatalog(
			testCatalog(), domain.FilterCriteria{Budget: &budget},
		)
		assert.Empty(t, got)
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		ps := testCatalog()
		want := productIDs(ps)
		_ = domain.FilterCatalog(ps, domain.FilterCriteria{Style: "Edgy"})
		assert.Equal(t, want, productIDs(ps))
	})
}

func TestRankByPreferences(t *testing.T) {
	t.Run("ScoredDescendingStableTies", func(t *testing.T) {
		ps := testCatalog()
		got := domain.RankByPreferences(ps, []string{"leather", "jacket"})
		require.NotEmpty(t, got)
		assert.Equal(t, int64(3), got[0].ID)
		// zero-score products keep catalog order
		assert.Equal(t, []int64{3, 1, 6, 5}, productIDs(got))
	})

	t.Run("TruncatesToSix", func(t *testing.T) {
		var ps []domain.Product
		for i := int64(1); i <= 10; i++ {
			ps = append(ps, domain.Product{ID: i, Name: "Plain Tee"})
		}
		got := domain.RankByPreferences(ps, nil)
		assert.Len(t, got, domain.MaxRecommendations)
		assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, productIDs(got))
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		ps := testCatalog()
		want := productIDs(ps)
		_ = domain.RankByPreferences(ps, []string{"shoes"})
		assert.Equal(t, want, productIDs(ps))
	})
}

func TestCategories(t *testing.T) {
	got := domain.Categories(testCatalog())
	assert.Equal(t, []string{"Tops", "Outerwear", "Shoes"}, got)
}
