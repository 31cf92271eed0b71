package cmd

import (
	"context"
	"log/slog"
	"time"

	"bakehouse/internal/adapters/out/postgres"
	"bakehouse/internal/core/application/usecases/commands"
	"bakehouse/internal/core/application/usecases/queries"
	"bakehouse/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	now        commands.NowFunc
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		now:        time.Now,
	}
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.AdmissionUoWFactory = FuncAdmissionUoWFactory(func() commands.AdmissionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(f, c.now)
}

func (c *CompositionRoot) CreateReviseOrderCommandHandler() commands.ReviseOrderCommandHandler {
	var f commands.AdmissionUoWFactory = FuncAdmissionUoWFactory(func() commands.AdmissionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviseOrderCommandHandler(f, c.now)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	publisher := NewSlogEventPublisher(c.logger)
	return commands.NewChangeOrderStatusCommandHandler(f, publisher, c.now)
}

func (c *CompositionRoot) CreateSetDayCapacityCommandHandler() commands.SetDayCapacityCommandHandler {
	var f commands.CapacityUoWFactory = FuncCapacityUoWFactory(func() commands.CapacityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetDayCapacityCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyMonthCapacityCommandHandler() commands.ApplyMonthCapacityCommandHandler {
	var f commands.CapacityUoWFactory = FuncCapacityUoWFactory(func() commands.CapacityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyMonthCapacityCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckCapacityQueryHandler() queries.CheckCapacityQueryHandler {
	return queries.NewCheckCapacityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCalendarSummaryQueryHandler() queries.GetCalendarSummaryQueryHandler {
	return queries.NewGetCalendarSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	// Read-only path; the unit of work is never begun, so the repository
	// runs against the base connection.
	return queries.NewGetOrdersQueryHandler(c.uowFactory.Create().OrderRepository())
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCapacityUoWFactory func() commands.CapacityUoW

func (f FuncCapacityUoWFactory) Create() commands.CapacityUoW {
	return f()
}

type FuncAdmissionUoWFactory func() commands.AdmissionUoW

func (f FuncAdmissionUoWFactory) Create() commands.AdmissionUoW {
	return f()
}

// SlogEventPublisher writes domain events to the structured log. Stands in
// for a message broker until one is needed.
type SlogEventPublisher struct {
	logger *slog.Logger
}

func NewSlogEventPublisher(logger *slog.Logger) *SlogEventPublisher {
	return &SlogEventPublisher{logger: logger.With("component", "event_publisher")}
}

func (p *SlogEventPublisher) Publish(ctx context.Context, event order.DomainEvent) {
	p.logger.InfoContext(ctx, "Domain event", "event", event.EventName())
}
