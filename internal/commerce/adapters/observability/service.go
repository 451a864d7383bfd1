// Package observability decorates the commerce services with tracing,
// structured logging, and counters. The decorators implement the same ports
// as the services they wrap, so wiring them is optional.
package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/domain"
	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
)

const tracerName = "github.com/Betojr04/E-commerceAPI/internal/commerce/adapters/observability"

// Instrumentation carries the shared tracer, logger, and counters used by
// every service decorator.
type Instrumentation struct {
	tracer  trace.Tracer
	logger  *slog.Logger
	created metric.Int64Counter
	deleted metric.Int64Counter
}

type Option func(*Instrumentation)

func WithLogger(logger *slog.Logger) Option {
	return func(i *Instrumentation) { i.logger = logger }
}

func WithTracer(tracer trace.Tracer) Option {
	return func(i *Instrumentation) { i.tracer = tracer }
}

func WithMeter(m metric.Meter) Option {
	return func(i *Instrumentation) {
		if m == nil {
			return
		}
		i.created, _ = m.Int64Counter("commerce.service.entities_created",
			metric.WithDescription("Number of entities created, by entity kind"))
		i.deleted, _ = m.Int64Counter("commerce.service.entities_deleted",
			metric.WithDescription("Number of entities deleted, by entity kind"))
	}
}

func NewInstrumentation(opts ...Option) *Instrumentation {
	ins := &Instrumentation{
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(ins)
		}
	}
	if ins.tracer == nil {
		ins.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return ins
}

func (i *Instrumentation) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return i.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (i *Instrumentation) info(ctx context.Context, msg string, attrs ...slog.Attr) {
	if i.logger != nil {
		i.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
	}
}

func (i *Instrumentation) fail(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if i.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		i.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

func (i *Instrumentation) countCreated(ctx context.Context, entity string) {
	if i.created != nil {
		i.created.Add(ctx, 1, metric.WithAttributes(attribute.String("entity", entity)))
	}
}

func (i *Instrumentation) countDeleted(ctx context.Context, entity string) {
	if i.deleted != nil {
		i.deleted.Add(ctx, 1, metric.WithAttributes(attribute.String("entity", entity)))
	}
}

// NewUserService wraps the user service with instrumentation.
func NewUserService(inner ports.UserService, ins *Instrumentation) ports.UserService {
	return &userService{inner: inner, ins: ins}
}

type userService struct {
	inner ports.UserService
	ins   *Instrumentation
}

func (s *userService) Create(ctx context.Context, name, email string) (*domain.User, error) {
	ctx, span := s.ins.start(ctx, "UserService.Create")
	defer span.End()
	user, err := s.inner.Create(ctx, name, email)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to create user")
	}
	s.ins.countCreated(ctx, "user")
	s.ins.info(ctx, "user created", slog.Int64("user.id", user.ID))
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	ctx, span := s.ins.start(ctx, "UserService.List")
	defer span.End()
	users, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to list users")
	}
	span.SetAttributes(attribute.Int("users.count", len(users)))
	return users, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	ctx, span := s.ins.start(ctx, "UserService.Get", attribute.Int64("user.id", id))
	defer span.End()
	user, err := s.inner.Get(ctx, id)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to load user", slog.Int64("user.id", id))
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id int64, name, email string) (*domain.User, error) {
	ctx, span := s.ins.start(ctx, "UserService.Update", attribute.Int64("user.id", id))
	defer span.End()
	user, err := s.inner.Update(ctx, id, name, email)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to update user", slog.Int64("user.id", id))
	}
	s.ins.info(ctx, "user updated", slog.Int64("user.id", id))
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	ctx, span := s.ins.start(ctx, "UserService.Delete", attribute.Int64("user.id", id))
	defer span.End()
	user, err := s.inner.Delete(ctx, id)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to delete user", slog.Int64("user.id", id))
	}
	s.ins.countDeleted(ctx, "user")
	s.ins.info(ctx, "user deleted", slog.Int64("user.id", id), slog.Int("orders.cascaded", len(user.OrderIDs)))
	return user, nil
}

// NewCategoryService wraps the category service with instrumentation.
func NewCategoryService(inner ports.CategoryService, ins *Instrumentation) ports.CategoryService {
	return &categoryService{inner: inner, ins: ins}
}

type categoryService struct {
	inner ports.CategoryService
	ins   *Instrumentation
}

func (s *categoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	ctx, span := s.ins.start(ctx, "CategoryService.Create")
	defer span.End()
	category, err := s.inner.Create(ctx, name)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to create category")
	}
	s.ins.countCreated(ctx, "category")
	s.ins.info(ctx, "category created", slog.Int64("category.id", category.ID))
	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]*domain.Category, error) {
	ctx, span := s.ins.start(ctx, "CategoryService.List")
	defer span.End()
	categories, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to list categories")
	}
	span.SetAttributes(attribute.Int("categories.count", len(categories)))
	return categories, nil
}

func (s *categoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	ctx, span := s.ins.start(ctx, "CategoryService.Get", attribute.Int64("category.id", id))
	defer span.End()
	category, err := s.inner.Get(ctx, id)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to load category", slog.Int64("category.id", id))
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	ctx, span := s.ins.start(ctx, "CategoryService.Update", attribute.Int64("category.id", id))
	defer span.End()
	category, err := s.inner.Update(ctx, id, name)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to update category", slog.Int64("category.id", id))
	}
	s.ins.info(ctx, "category updated", slog.Int64("category.id", id))
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) (*domain.Category, error) {
	ctx, span := s.ins.start(ctx, "CategoryService.Delete", attribute.Int64("category.id", id))
	defer span.End()
	category, err := s.inner.Delete(ctx, id)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to delete category", slog.Int64("category.id", id))
	}
	s.ins.countDeleted(ctx, "category")
	s.ins.info(ctx, "category deleted", slog.Int64("category.id", id))
	return category, nil
}

// NewProductService wraps the product service with instrumentation.
func NewProductService(inner ports.ProductService, ins *Instrumentation) ports.ProductService {
	return &productService{inner: inner, ins: ins}
}

type productService struct {
	inner ports.ProductService
	ins   *Instrumentation
}

func (s *productService) Create(ctx context.Context, name string, price float64, categoryID int64) (*domain.Product, error) {
	ctx, span := s.ins.start(ctx, "ProductService.Create", attribute.Int64("category.id", categoryID))
	defer span.End()
	product, err := s.inner.Create(ctx, name, price, categoryID)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to create product")
	}
	s.ins.countCreated(ctx, "product")
	s.ins.info(ctx, "product created", slog.Int64("product.id", product.ID))
	return product, nil
}

func (s *productService) List(ctx context.Context) ([]*domain.Product, error) {
	ctx, span := s.ins.start(ctx, "ProductService.List")
	defer span.End()
	products, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int("products.count", len(products)))
	return products, nil
}

func (s *productService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, span := s.ins.start(ctx, "ProductService.Get", attribute.Int64("product.id", id))
	defer span.End()
	product, err := s.inner.Get(ctx, id)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to load product", slog.Int64("product.id", id))
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id int64, name string, price float64, categoryID int64) (*domain.Product, error) {
	ctx, span := s.ins.start(ctx, "ProductService.Update", attribute.Int64("product.id", id))
	defer span.End()
	product, err := s.inner.Update(ctx, id, name, price, categoryID)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to update product", slog.Int64("product.id", id))
	}
	s.ins.info(ctx, "product updated", slog.Int64("product.id", id))
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, span := s.ins.start(ctx, "ProductService.Delete", attribute.Int64("product.id", id))
	defer span.End()
	product, err := s.inner.Delete(ctx, id)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to delete product", slog.Int64("product.id", id))
	}
	s.ins.countDeleted(ctx, "product")
	s.ins.info(ctx, "product deleted", slog.Int64("product.id", id))
	return product, nil
}

// NewOrderService wraps the order service with instrumentation.
func NewOrderService(inner ports.OrderService, ins *Instrumentation) ports.OrderService {
	return &orderService{inner: inner, ins: ins}
}

type orderService struct {
	inner ports.OrderService
	ins   *Instrumentation
}

func (s *orderService) Create(ctx context.Context, userID int64, productIDs []int64) (*domain.Order, error) {
	ctx, span := s.ins.start(ctx, "OrderService.Create",
		attribute.Int64("user.id", userID), attribute.Int("products.count", len(productIDs)))
	defer span.End()
	order, err := s.inner.Create(ctx, userID, productIDs)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to create order", slog.Int64("user.id", userID))
	}
	s.ins.countCreated(ctx, "order")
	s.ins.info(ctx, "order created", slog.Int64("order.id", order.ID), slog.Int64("user.id", userID))
	return order, nil
}

func (s *orderService) List(ctx context.Context) ([]*domain.Order, error) {
	ctx, span := s.ins.start(ctx, "OrderService.List")
	defer span.End()
	orders, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("orders.count", len(orders)))
	return orders, nil
}

func (s *orderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, span := s.ins.start(ctx, "OrderService.Get", attribute.Int64("order.id", id))
	defer span.End()
	order, err := s.inner.Get(ctx, id)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to load order", slog.Int64("order.id", id))
	}
	return order, nil
}

func (s *orderService) Update(ctx context.Context, id int64, userID int64) (*domain.Order, error) {
	ctx, span := s.ins.start(ctx, "OrderService.Update",
		attribute.Int64("order.id", id), attribute.Int64("user.id", userID))
	defer span.End()
	order, err := s.inner.Update(ctx, id, userID)
	if err != nil {
		return nil, s.ins.fail(ctx, span, err, "failed to update order", slog.Int64("order.id", id))
	}
	s.ins.info(ctx, "order reassigned", slog.Int64("order.id", id), slog.Int64("user.id", userID))
	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id int64) error {
	ctx, span := s.ins.start(ctx, "OrderService.Delete", attribute.Int64("order.id", id))
	defer span.End()
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.ins.fail(ctx, span, err, "failed to delete order", slog.Int64("order.id", id))
	}
	s.ins.countDeleted(ctx, "order")
	s.ins.info(ctx, "order deleted", slog.Int64("order.id", id))
	return nil
}

var (
	_ ports.UserService     = (*userService)(nil)
	_ ports.CategoryService = (*categoryService)(nil)
	_ ports.ProductService  = (*productService)(nil)
	_ ports.OrderService    = (*orderService)(nil)
)
