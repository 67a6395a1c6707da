package kafka

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"sync"

	"github.com/lovoo/goka"
	"github.com/zarshop/storefront/internal/core/domain"
	"github.com/zarshop/storefront/internal/core/port"
	"github.com/zarshop/storefront/pkg/schema"
)

// A processor is used for composition.
//
// Running and closing the underlying [goka.Processor]
type processor struct {
	opPrefix string
	gp       *goka.Processor
}

func (p *processor) run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer wg.Done()

	go p.runProc(ctx, stopFn)

	log.Info("preparing...")
	p.waitForReady(ctx)
	log.Info("running")
}

func (p *processor) runProc(ctx context.Context, stopFn context.CancelFunc) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer stopFn()

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p *processor) waitForReady(ctx context.Context) {
	const op = "waitForReady"
	log := slog.With("op", makeOp(p.opPrefix, op))

	err := p.gp.WaitForReadyContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error("fall down while preparing", "err", err)
		return
	}
}

func (p *processor) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

// A viewEventCodec used for serde [schema.ProductViewV1]
type viewEventCodec struct {
	serde Serde
}

func newViewEventCodec(s Serde) viewEventCodec {
	return viewEventCodec{s}
}

func (c viewEventCodec) Encode(v any) ([]byte, error) {
	const op = "viewEventCodec.Encode"
	if _, ok := v.(schema.ProductViewV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c viewEventCodec) Decode(data []byte) (any, error) {
	const op = "viewEventCodec.Decode"
	var s schema.ProductViewV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, err
}

// A countValue is the running number of views for one product.
type countValue int64

// A countValueCodec used for serde [countValue]
type countValueCodec struct{}

func (countValueCodec) Encode(v any) ([]byte, error) {
	const op = "countValueCodec.Encode"
	cv, ok := v.(countValue)
	if !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	data := strconv.AppendInt([]byte(nil), int64(cv), 10)
	return data, nil
}

func (countValueCodec) Decode(data []byte) (any, error) {
	const op = "countValueCodec.Decode"
	cv, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil, opErr(err, op)
	}
	return countValue(cv), nil
}

var _ port.ProductViewsProcessor = (*ProductViewsProcessor)(nil)

// A ProductViewsProcessor aggregates product-view events from the
// stream topic into a per-product counter group table.
type ProductViewsProcessor struct {
	opPrefix string
	proc     processor
}

func NewProductViewsProc(
	seedBrokers []string,
	inputStream string,
	groupTable string,
	viewSerde Serde,
) (*ProductViewsProcessor, error) {
	const op = "NewProductViewsProcessor"

	var p ProductViewsProcessor

	gg := goka.DefineGroup(goka.Group(groupTable),
		goka.Input(
			goka.Stream(inputStream),
			newViewEventCodec(viewSerde),
			p.processFn,
		),
		goka.Persist(countValueCodec{}),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNonlogProcOpt())
	if err != nil {
		return nil, opErr(err, op)
	}

	p.opPrefix = "ProductViewsProcessor"
	p.proc = processor{
		opPrefix: p.opPrefix,
		gp:       gp,
	}

	return &p, nil
}

func (p *ProductViewsProcessor) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	p.proc.run(ctx, stopFn, wg)
}

func (p *ProductViewsProcessor) Close() {
	p.proc.close()
}

func (p *ProductViewsProcessor) processFn(ctx goka.Context, msg any) {
	event, _ := msg.(schema.ProductViewV1)

	var count countValue
	if v := ctx.Value(); v != nil {
		count, _ = v.(countValue)
	}
	count++
	ctx.SetValue(count)

	slog.Debug(
		"counted product view",
		"op", makeOp(p.opPrefix, "processFn"),
		"productID", event.ProductID,
		"count", int64(count),
	)
}

var _ port.ViewCounts = (*ProductViewsView)(nil)

// A ProductViewsView serves the aggregated counters from the group
// table maintained by [ProductViewsProcessor].
type ProductViewsView struct {
	gv *goka.View
}

func NewProductViewsView(
	seedBrokers []string, groupTable string,
) (*ProductViewsView, error) {
	const op = "NewProductViewsView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(groupTable)),
		countValueCodec{},
	)
	if err != nil {
		return nil, opErr(err, op)
	}

	return &ProductViewsView{gv}, nil
}

func (v *ProductViewsView) Run(ctx context.Context) {
	const op = "ProductViewsView.Run"
	log := slog.With("op", op)

	err := v.gv.Run(ctx)
	if err != nil {
		log.Error("unexpected fail on run", "err", err)
	}
}

func (v *ProductViewsView) Count(productID int64) (int64, error) {
	const op = "ProductViewsView.Count"

	key := strconv.FormatInt(productID, 10)
	value, err := v.gv.Get(key)
	if err != nil {
		return 0, opErr(err, op)
	}
	if value == nil {
		return 0, nil
	}

	cv, ok := value.(countValue)
	if !ok {
		return 0, opErr(ErrInvalidValueType, op)
	}
	return int64(cv), nil
}

func (v *ProductViewsView) Top(n int) ([]domain.ProductViewCount, error) {
	const op = "ProductViewsView.Top"

	it, err := v.gv.Iterator()
	if err != nil {
		return nil, opErr(err, op)
	}
	defer it.Release()

	var counts []domain.ProductViewCount
	for it.Next() {
		productID, err := strconv.ParseInt(it.Key(), 10, 64)
		if err != nil {
			continue
		}
		value, err := it.Value()
		if err != nil {
			return nil, opErr(err, op)
		}
		cv, ok := value.(countValue)
		if !ok {
			continue
		}
		counts = append(counts, domain.ProductViewCount{
			ProductID: productID,
			Count:     int64(cv),
		})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].ProductID < counts[j].ProductID
	})

	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts, nil
}
