package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/twmb/franz-go/pkg/sr"
	"github.com/zarshop/storefront/config"
	"github.com/zarshop/storefront/internal/adapter/assistant"
	"github.com/zarshop/storefront/internal/adapter/httphandler"
	"github.com/zarshop/storefront/internal/adapter/kafka"
	"github.com/zarshop/storefront/internal/adapter/session"
	"github.com/zarshop/storefront/internal/adapter/storage"
	"github.com/zarshop/storefront/internal/core/port"
	"github.com/zarshop/storefront/internal/core/service"
	"github.com/zarshop/storefront/pkg/schema"
)

type serdes struct {
	product     schema.Serde
	orderPlaced schema.Serde
	productView schema.Serde
}

type adapters struct {
	sqldb          storage.SQLDB
	products       storage.ProductsRepository
	carts          storage.CartsRepository
	orders         storage.OrdersRepository
	users          storage.UsersRepository
	sessions       session.RedisStore
	assistant      port.Assistant
	ordersProducer kafka.OrdersProducer
	viewsProducer  kafka.ViewsProducer
	viewsProc      *kafka.ProductViewsProcessor
	viewsView      *kafka.ProductViewsView
	consumer       kafka.CatalogConsumer
}

type services struct {
	catalog   service.CatalogService
	cart      service.CartService
	order     service.OrderService
	auth      service.AuthService
	assistant service.AssistantService
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	serdes     serdes
	adapters   adapters
	services   services
	httpServer httphandler.HTTPServer
	procWg     sync.WaitGroup
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorage()
	app.initSessions()
	app.initAssistant()
	app.initSerdes()
	app.initKafka()
	app.initServices()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}

	app.adapters.sqldb = sqldb
	app.adapters.products = storage.NewProductsRepository(sqldb)
	app.adapters.carts = storage.NewCartsRepository(sqldb)
	app.adapters.orders = storage.NewOrdersRepository(sqldb)
	app.adapters.users = storage.NewUsersRepository(sqldb)
}

func (app *App) initSessions() {
	const op = "App.initSessions"

	store, err := session.NewRedisStore(
		app.ctx, app.cfg.Sessions.RedisAddr, app.cfg.Sessions.TTL,
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.adapters.sessions = store
}

// initAssistant leaves the assistant nil when no API key is set, the
// assistant service degrades to rule-based replies.
func (app *App) initAssistant() {
	const op = "App.initAssistant"
	log := slog.With("op", op)

	if app.cfg.Assistant.GeminiAPIKey == "" {
		log.Warn("assistant api key is not set, using rule-based assistant")
		return
	}

	a, err := assistant.NewGeminiAssistant(
		app.ctx,
		app.cfg.Assistant.GeminiAPIKey,
		app.cfg.Assistant.GeminiModel,
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.adapters.assistant = a
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	urls := app.cfg.Broker.SchemaRegistryURLs
	ctx := app.ctx

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	productSS := app.cfg.Broker.Topics.CatalogUpdates + "-value"
	productSerde, err := schema.NewSerdeProductV1(
		ctx,
		schema.SubjectOpt(productSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	orderSS := app.cfg.Broker.Topics.OrdersPlaced + "-value"
	orderSerde, err := schema.NewSerdeOrderPlacedV1(
		ctx,
		schema.SubjectOpt(orderSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	viewSS := app.cfg.Broker.Topics.ProductViews + "-value"
	viewSerde, err := schema.NewSerdeProductViewV1(
		ctx,
		schema.SubjectOpt(viewSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.serdes.product = productSerde
	app.serdes.orderPlaced = orderSerde
	app.serdes.productView = viewSerde
}

func (app *App) initKafka() {
	const op = "App.initKafka"

	ctx := app.ctx
	seedBrokers := app.cfg.Broker.SeedBrokers
	topics := app.cfg.Broker.Topics
	consumers := app.cfg.Broker.Consumers

	ordersProducer, err := kafka.NewOrdersProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, topics.OrdersPlaced),
		kafka.ProducerEncoderOpt(app.serdes.orderPlaced),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	viewsProducer, err := kafka.NewViewsProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, topics.ProductViews),
		kafka.ProducerEncoderOpt(app.serdes.productView),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	viewsProc, err := kafka.NewProductViewsProc(
		seedBrokers,
		topics.ProductViews,
		consumers.ProductViewsGroup,
		app.serdes.productView,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	viewsView, err := kafka.NewProductViewsView(
		seedBrokers, consumers.ProductViewsGroup,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	consumer, err := kafka.NewCatalogConsumer(
		kafka.ConsumerClientOpt(
			seedBrokers, topics.CatalogUpdates, consumers.CatalogSaverGroup,
		),
		kafka.ConsumerDecoderOpt(app.serdes.product),
		kafka.ConsumerProductsSaverOpt(app.adapters.products),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.adapters.ordersProducer = ordersProducer
	app.adapters.viewsProducer = viewsProducer
	app.adapters.viewsProc = viewsProc
	app.adapters.viewsView = viewsView
	app.adapters.consumer = consumer
}

func (app *App) initServices() {
	catalog := service.NewCatalog(
		app.adapters.products,
		app.adapters.viewsView,
		app.adapters.viewsProducer,
		service.FallbackCatalog(),
	)

	app.services.catalog = catalog
	app.services.cart = service.NewCart(app.adapters.carts, catalog)
	app.services.order = service.NewOrder(
		app.adapters.orders,
		app.adapters.carts,
		app.adapters.ordersProducer,
	)
	app.services.auth = service.NewAuth(
		app.adapters.users,
		app.adapters.sessions,
	)
	app.services.assistant = service.NewAssistant(
		app.adapters.assistant, catalog,
	)
}

func (app *App) initHTTPServer() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()

	httphandler.RegisterHealth(mux, app.healthChecks())
	httphandler.RegisterCatalog(mux, app.services.catalog, app.services.auth)
	httphandler.RegisterAuth(mux, app.services.auth)
	httphandler.RegisterCart(mux, app.services.cart, app.services.auth)
	httphandler.RegisterOrders(mux, app.services.order, app.services.auth)
	httphandler.RegisterAssistant(mux, app.services.assistant)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(addr, handler)
}

func (app *App) healthChecks() []httphandler.HealthCheck {
	assistantCheck := func(context.Context) error {
		if app.adapters.assistant == nil {
			return errors.New("assistant is not configured")
		}
		return nil
	}

	return []httphandler.HealthCheck{
		{Name: "database", Check: app.adapters.sqldb.PingContext},
		{Name: "sessions", Check: app.adapters.sessions.Ping},
		{Name: "broker", Check: app.adapters.ordersProducer.Ping},
		{Name: "assistant", Check: assistantCheck},
	}
}

func (app *App) Run(stopFn context.CancelFunc) {
	app.procWg.Add(1)
	go app.adapters.viewsProc.Run(app.ctx, stopFn, &app.procWg)
	go app.adapters.viewsView.Run(app.ctx)
	go app.adapters.consumer.Run(app.ctx)
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.adapters.consumer.Close()
	app.adapters.viewsProc.Close()
	app.procWg.Wait()
	app.adapters.ordersProducer.Close()
	app.adapters.viewsProducer.Close()
	app.adapters.sessions.Close()
	app.adapters.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
