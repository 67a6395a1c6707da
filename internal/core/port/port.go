package port

import (
	"context"
	"sync"

	"github.com/zarshop/storefront/internal/core/domain"
)

type (
	runnerContextWg interface {
		Run(context.Context, context.CancelFunc, *sync.WaitGroup)
	}

	closer interface {
		Close()
	}
)

// CatalogRepository reads the product catalog. Products are written
// only by the external catalog store (kafka updates or the seeder).
type CatalogRepository interface {
	Products(context.Context) ([]domain.Product, error)
	Product(context.Context, int64) (domain.Product, error)
}

type ProductsSaver interface {
	SaveProducts(context.Context, []domain.Product) error
}

// CatalogBrowser is the read surface of the catalog service consumed
// by the cart and assistant collaborators.
type CatalogBrowser interface {
	Browse(context.Context, domain.FilterCriteria) ([]domain.Product, error)
	Product(context.Context, int64) (domain.Product, error)
}

// CartRepository persists one cart snapshot per user. A missing or
// corrupt snapshot loads as an empty cart, never an error.
type CartRepository interface {
	Cart(context.Context, int64) (domain.Cart, error)
	SaveCart(context.Context, int64, domain.Cart) error
	DeleteCart(context.Context, int64) error
}

type OrderRepository interface {
	StoreOrder(context.Context, domain.Order) error
	Orders(context.Context, int64) ([]domain.Order, error)
	Order(ctx context.Context, userID int64, orderID string) (domain.Order, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, email, name, passwordHash string) (domain.User, error)
	UpdateUser(context.Context, domain.User) (domain.User, error)
	UserByEmail(context.Context, string) (domain.User, error)
	UserByID(context.Context, int64) (domain.User, error)
}

type SessionStore interface {
	StoreSession(context.Context, domain.Session) error
	Session(context.Context, string) (domain.Session, error)
	DeleteSession(context.Context, string) error
}

// Assistant is the generative-language collaborator. Every method may
// fail or decline; callers fall back to local logic.
type Assistant interface {
	Chat(ctx context.Context, message string, history []domain.ChatMessage, productContext string) (string, error)
	RecommendIDs(ctx context.Context, q domain.RecommendationQuery, products []domain.Product) ([]int64, error)
	StyleAdvice(ctx context.Context, q domain.StyleQuery, products []domain.Product) (domain.StyleAdvice, error)
}

type OrderEventsProducer interface {
	ProduceOrderPlaced(context.Context, domain.Order) error
}

type ProductViewsProducer interface {
	ProduceView(context.Context, domain.ProductView) error
}

// ViewCounts serves the aggregated product-view counters.
type ViewCounts interface {
	Count(int64) (int64, error)
	Top(int) ([]domain.ProductViewCount, error)
}

type ProductViewsProcessor interface {
	runnerContextWg
	closer
}

type CatalogConsumer interface {
	Run(context.Context)
	Close()
}
