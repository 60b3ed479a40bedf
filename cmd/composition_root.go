package cmd

import (
	"flowtrack/internal/adapters/out/collaborators"
	"flowtrack/internal/adapters/out/postgres"
	"flowtrack/internal/core/application/usecases/commands"
	"flowtrack/internal/core/application/usecases/queries"
	"flowtrack/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	issues     ports.IssueTracker
	production ports.ProductionStatusProvider
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		issues:     collaborators.NewGormIssueTracker(gormDB),
		production: collaborators.NewGormProductionStatusProvider(gormDB),
	}
}

func (c *CompositionRoot) CreateIngestOrdersCommandHandler() commands.IngestOrdersCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIngestOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyStatusMappingsCommandHandler() commands.ApplyStatusMappingsCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyStatusMappingsCommandHandler(f)
}

func (c *CompositionRoot) CreateSaveStatusMappingsCommandHandler() commands.SaveStatusMappingsCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveStatusMappingsCommandHandler(f)
}

func (c *CompositionRoot) CreateMoveOrderCommandHandler() commands.MoveOrderCommandHandler {
	var f commands.MoveUoWFactory = FuncMoveUoWFactory(func() commands.MoveUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMoveOrderCommandHandler(f, c.issues, c.production)
}

func (c *CompositionRoot) CreateSetAreaModesCommandHandler() commands.SetAreaModesCommandHandler {
	var f commands.ModeUoWFactory = FuncModeUoWFactory(func() commands.ModeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetAreaModesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMoveAuditQueryHandler() queries.GetMoveAuditQueryHandler {
	return queries.NewGetMoveAuditQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAreaModesQueryHandler() queries.GetAreaModesQueryHandler {
	return queries.NewGetAreaModesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusMappingsQueryHandler() queries.GetStatusMappingsQueryHandler {
	return queries.NewGetStatusMappingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFlowErrorsQueryHandler() queries.GetFlowErrorsQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetFlowErrorsQueryHandler(
		uow.OrderRepository(),
		uow.StatusMappingRepository(),
	)
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncMoveUoWFactory func() commands.MoveUoW

func (f FuncMoveUoWFactory) Create() commands.MoveUoW {
	return f()
}

type FuncModeUoWFactory func() commands.ModeUoW

func (f FuncModeUoWFactory) Create() commands.ModeUoW {
	return f()
}
