package cmd

import (
	"log/slog"

	adapterhttp "dockflow/internal/adapters/in/http"
	"dockflow/internal/adapters/out/memstore"
	"dockflow/internal/core/application/usecases/commands"
	"dockflow/internal/core/application/usecases/queries"
	"dockflow/internal/core/domain/services"
	"dockflow/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	store      *memstore.Store
	uowFactory *memstore.UnitOfWorkFactory
	allocator  services.DockAllocator
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, store *memstore.Store, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		store:      store,
		uowFactory: memstore.NewUnitOfWorkFactory(store),
		allocator:  services.NewDockAllocator(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) loadingUoWFactory() commands.LoadingUoWFactory {
	return FuncLoadingUoWFactory(func() commands.LoadingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateEnqueueLoadingCommandHandler() commands.EnqueueLoadingCommandHandler {
	return commands.NewEnqueueLoadingCommandHandler(c.loadingUoWFactory())
}

func (c *CompositionRoot) CreateApproveLoadingCommandHandler() commands.ApproveLoadingCommandHandler {
	return commands.NewApproveLoadingCommandHandler(c.loadingUoWFactory())
}

func (c *CompositionRoot) CreateRevertLoadingCommandHandler() commands.RevertLoadingCommandHandler {
	return commands.NewRevertLoadingCommandHandler(c.loadingUoWFactory())
}

func (c *CompositionRoot) CreateStartLoadingCommandHandler() commands.StartLoadingCommandHandler {
	return commands.NewStartLoadingCommandHandler(c.uoWFactory(), c.allocator)
}

func (c *CompositionRoot) CreatePauseLoadingCommandHandler() commands.PauseLoadingCommandHandler {
	return commands.NewPauseLoadingCommandHandler(c.uoWFactory(), c.allocator)
}

func (c *CompositionRoot) CreateCompleteLoadingCommandHandler() commands.CompleteLoadingCommandHandler {
	return commands.NewCompleteLoadingCommandHandler(c.uoWFactory(), c.allocator)
}

func (c *CompositionRoot) CreateCancelLoadingCommandHandler() commands.CancelLoadingCommandHandler {
	return commands.NewCancelLoadingCommandHandler(c.uoWFactory(), c.allocator)
}

func (c *CompositionRoot) CreateScanProductCommandHandler() commands.ScanProductCommandHandler {
	return commands.NewScanProductCommandHandler(c.loadingUoWFactory())
}

func (c *CompositionRoot) CreateArchiveCompletedCommandHandler() commands.ArchiveCompletedCommandHandler {
	return commands.NewArchiveCompletedCommandHandler(c.loadingUoWFactory())
}

func (c *CompositionRoot) CreateReleaseAllDocksCommandHandler() commands.ReleaseAllDocksCommandHandler {
	return commands.NewReleaseAllDocksCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateResetEngineCommandHandler() commands.ResetEngineCommandHandler {
	return commands.NewResetEngineCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateListLoadingsQueryHandler() queries.ListLoadingsQueryHandler {
	return queries.NewListLoadingsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetChecklistQueryHandler() queries.GetChecklistQueryHandler {
	return queries.NewGetChecklistQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetDockBoardQueryHandler() queries.GetDockBoardQueryHandler {
	return queries.NewGetDockBoardQueryHandler(c.store, c.store)
}

func (c *CompositionRoot) CreateGetStatsQueryHandler() queries.GetStatsQueryHandler {
	return queries.NewGetStatsQueryHandler(c.store, c.store, c.allocator, c.config.LongOccupiedThreshold)
}

func (c *CompositionRoot) CreateExportDayQueryHandler() queries.ExportDayQueryHandler {
	return queries.NewExportDayQueryHandler(c.store)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateArchiveCompletedCommandHandler(),
		c.config.ArchiveHour,
		c.config.ArchiveMinute,
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(adapterhttp.Handlers{
		Enqueue:  c.CreateEnqueueLoadingCommandHandler(),
		Approve:  c.CreateApproveLoadingCommandHandler(),
		Revert:   c.CreateRevertLoadingCommandHandler(),
		Start:    c.CreateStartLoadingCommandHandler(),
		Pause:    c.CreatePauseLoadingCommandHandler(),
		Complete: c.CreateCompleteLoadingCommandHandler(),
		Cancel:   c.CreateCancelLoadingCommandHandler(),
		Scan:     c.CreateScanProductCommandHandler(),
		Archive:  c.CreateArchiveCompletedCommandHandler(),
		Release:  c.CreateReleaseAllDocksCommandHandler(),
		Reset:    c.CreateResetEngineCommandHandler(),

		List:      c.CreateListLoadingsQueryHandler(),
		Checklist: c.CreateGetChecklistQueryHandler(),
		DockBoard: c.CreateGetDockBoardQueryHandler(),
		Stats:     c.CreateGetStatsQueryHandler(),
		Export:    c.CreateExportDayQueryHandler(),
	})
}

type FuncLoadingUoWFactory func() commands.LoadingUoW

func (f FuncLoadingUoWFactory) Create() commands.LoadingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
