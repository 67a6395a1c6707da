package kafka

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/zarshop/storefront/internal/core/domain"
	"github.com/zarshop/storefront/internal/core/port"
	"github.com/zarshop/storefront/pkg/schema"
)

// A producer is used for composition.
//
// Producing records to kafka broker and closing underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
}

func (p producer) Ping(ctx context.Context) error {
	const op = "Ping"
	if err := p.cl.Ping(ctx); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p producer) produce(
	ctx context.Context, rs ...*kgo.Record,
) error {
	const op = "produce"
	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

var _ port.OrderEventsProducer = (*OrdersProducer)(nil)

// An OrdersProducer emits an order-placed event per checkout.
type OrdersProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewOrdersProducer(opts ...ProducerOpt) (OrdersProducer, error) {
	const op = "NewOrdersProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return OrdersProducer{}, opErr(err, op)
		}
	}

	opPrefix := "OrdersProducer"
	p := producer{
		opPrefix: opPrefix,
		cl:       options.cl,
	}

	return OrdersProducer{
		producer: p,
		encoder:  options.encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p OrdersProducer) Close() {
	p.producer.close()
}

func (p OrdersProducer) Ping(ctx context.Context) error {
	return p.producer.Ping(ctx)
}

func (p OrdersProducer) ProduceOrderPlaced(
	ctx context.Context, order domain.Order,
) error {
	const op = "ProduceOrderPlaced"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r, err := p.createRecord(order)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	if err := p.producer.produce(ctx, &r); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

func (p OrdersProducer) createRecord(
	order domain.Order,
) (kgo.Record, error) {
	const op = "createRecord"

	s := p.toSchema(order)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return kgo.Record{}, opErr(err, p.opPrefix, op)
	}
	msgKey := []byte(s.OrderID)
	return kgo.Record{Key: msgKey, Value: b}, nil
}

func (OrdersProducer) toSchema(order domain.Order) (s schema.OrderPlacedV1) {
	s.OrderID = order.ID
	s.UserID = order.UserID
	s.Total = order.Total
	s.Status = string(order.Status)
	s.CreatedAt = order.CreatedAt.UTC().Format(time.RFC3339)

	s.Items = make([]schema.OrderLineV1, len(order.Items))
	for i, it := range order.Items {
		s.Items[i] = schema.OrderLineV1{
			ProductID: it.ProductID,
			Size:      it.Size,
			Color:     it.Color,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}
	return
}

var _ port.ProductViewsProducer = (*ViewsProducer)(nil)

// A ViewsProducer emits a product-view event per product-detail visit.
// Records are keyed by product id so the views processor aggregates
// per product.
type ViewsProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewViewsProducer(opts ...ProducerOpt) (ViewsProducer, error) {
	const op = "NewViewsProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ViewsProducer{}, opErr(err, op)
		}
	}

	opPrefix := "ViewsProducer"
	p := producer{
		opPrefix: opPrefix,
		cl:       options.cl,
	}

	return ViewsProducer{
		producer: p,
		encoder:  options.encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p ViewsProducer) Close() {
	p.producer.close()
}

func (p ViewsProducer) ProduceView(
	ctx context.Context, view domain.ProductView,
) error {
	const op = "ProduceView"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r, err := p.createRecord(view)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	if err := p.producer.produce(ctx, &r); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

func (p ViewsProducer) createRecord(
	view domain.ProductView,
) (kgo.Record, error) {
	const op = "createRecord"

	s := p.toSchema(view)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return kgo.Record{}, opErr(err, p.opPrefix, op)
	}
	msgKey := []byte(strconv.FormatInt(s.ProductID, 10))
	return kgo.Record{Key: msgKey, Value: b}, nil
}

func (ViewsProducer) toSchema(view domain.ProductView) (s schema.ProductViewV1) {
	s.ProductID = view.ProductID
	s.UserID = view.UserID
	s.ViewedAt = view.At.UTC().Format(time.RFC3339)
	return
}
