package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/LeandroDeJesus-S/loja-online/internal/domain/entities"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/ports"
	"github.com/LeandroDeJesus-S/loja-online/internal/domain/repositories"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}
func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (l nopLogger) With(args ...any) ports.Logger {
	return l
}

type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	return ctx, nil
}

func (fakeUnitOfWork) Commit(ctx context.Context) error {
	return nil
}

func (fakeUnitOfWork) Rollback(ctx context.Context) error {
	return nil
}

func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type resizeCall struct {
	path          string
	width, height int
}

type fakeResizer struct {
	calls []resizeCall
	err   error
}

func (r *fakeResizer) FitWithin(path string, width, height int) error {
	r.calls = append(r.calls, resizeCall{path: path, width: width, height: height})
	return r.err
}

type fakeProductRepo struct {
	created    []*entities.Product
	updated    []*entities.Product
	variations []*entities.ProductVariation
	bySlug     map[string]*entities.Product

	listCalls []repositories.ProductListing
	listErr   error
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entities.Product) error {
	product.ID = uuid.New()
	r.created = append(r.created, product)
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entities.Product) error {
	r.updated = append(r.updated, product)
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	for _, p := range r.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) FindBySlug(ctx context.Context, slug string) (*entities.Product, error) {
	return r.bySlug[slug], nil
}

func (r *fakeProductRepo) List(ctx context.Context, filters repositories.ProductListing) ([]*entities.Product, error) {
	r.listCalls = append(r.listCalls, filters)
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.created, nil
}

func (r *fakeProductRepo) CreateVariation(ctx context.Context, variation *entities.ProductVariation) error {
	variation.ID = uuid.New()
	r.variations = append(r.variations, variation)
	return nil
}

func (r *fakeProductRepo) FindVariationBySlug(ctx context.Context, slug string) (*entities.ProductVariation, error) {
	for _, v := range r.variations {
		if v.Slug == slug {
			return v, nil
		}
	}
	return nil, nil
}

type fakeCategoryRepo struct {
	created []*entities.Category
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entities.Category) error {
	category.ID = uuid.New()
	r.created = append(r.created, category)
	return nil
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*entities.Category, error) {
	return r.created, nil
}

type fakeStockRepo struct {
	items []*entities.StockItem
}

func (r *fakeStockRepo) Set(ctx context.Context, item *entities.StockItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *fakeStockRepo) Get(ctx context.Context, storeID, variationID uuid.UUID) (*entities.StockItem, error) {
	for _, it := range r.items {
		if it.StoreID == storeID && it.VariationID == variationID {
			return it, nil
		}
	}
	return nil, nil
}

type fakeStoreRepo struct {
	created []*entities.Store
	updated []*entities.Store
	byName  map[string]*entities.Store
}

func (r *fakeStoreRepo) Create(ctx context.Context, store *entities.Store) error {
	store.ID = uuid.New()
	r.created = append(r.created, store)
	return nil
}

func (r *fakeStoreRepo) Update(ctx context.Context, store *entities.Store) error {
	r.updated = append(r.updated, store)
	return nil
}

func (r *fakeStoreRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Store, error) {
	for _, s := range r.created {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeStoreRepo) FindByName(ctx context.Context, name string) (*entities.Store, error) {
	return r.byName[name], nil
}

type fakeOrderRepo struct {
	orders       []*entities.Order
	evaluations  []*entities.Evaluation
	statusByName map[string]*entities.OrderStatus
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entities.Order) error {
	order.ID = uuid.New()
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) CreateStatus(ctx context.Context, status *entities.OrderStatus) error {
	status.ID = uuid.New()
	if r.statusByName == nil {
		r.statusByName = map[string]*entities.OrderStatus{}
	}
	r.statusByName[status.Name] = status
	return nil
}

func (r *fakeOrderRepo) FindStatusByName(ctx context.Context, name string) (*entities.OrderStatus, error) {
	return r.statusByName[name], nil
}

func (r *fakeOrderRepo) CreateEvaluation(ctx context.Context, evaluation *entities.Evaluation) error {
	evaluation.ID = uuid.New()
	r.evaluations = append(r.evaluations, evaluation)
	return nil
}

func (r *fakeOrderRepo) FindEvaluationByID(ctx context.Context, id uuid.UUID) (*entities.Evaluation, error) {
	for _, e := range r.evaluations {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

type fakeMediaRepo struct {
	created []*entities.MediaFile
}

func (r *fakeMediaRepo) Create(ctx context.Context, media *entities.MediaFile) error {
	media.ID = uuid.New()
	r.created = append(r.created, media)
	return nil
}

func (r *fakeMediaRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.MediaFile, error) {
	for _, m := range r.created {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMediaRepo) ListByOwner(ctx context.Context, owner entities.MediaOwner) ([]*entities.MediaFile, error) {
	var out []*entities.MediaFile
	for _, m := range r.created {
		if m.Owner == owner {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeAddressRepo struct {
	addresses []*entities.Address
	links     []*entities.HasAddress
}

func (r *fakeAddressRepo) Create(ctx context.Context, address *entities.Address) error {
	address.ID = uuid.New()
	r.addresses = append(r.addresses, address)
	return nil
}

func (r *fakeAddressRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Address, error) {
	for _, a := range r.addresses {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAddressRepo) Link(ctx context.Context, link *entities.HasAddress) error {
	link.ID = uuid.New()
	r.links = append(r.links, link)
	return nil
}

func (r *fakeAddressRepo) ListLinks(ctx context.Context, owner entities.AddressOwner) ([]*entities.HasAddress, error) {
	return r.links, nil
}
