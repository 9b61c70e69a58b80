package cmd

import (
	tshttp "tableside/internal/adapters/in/http"
	"tableside/internal/adapters/out/pdf"
	"tableside/internal/adapters/out/postgres"
	"tableside/internal/adapters/out/qrimg"
	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/codesheet"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sheet      codesheet.Config
	links      *tshttp.TableLinkResolver
	generator  *qrimg.Generator
	renderer   *pdf.Renderer
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	sheet := codesheet.DefaultConfig()
	if config.CodeSheetTotalTables > 0 {
		custom, err := codesheet.NewConfig(
			config.CodeSheetTotalTables,
			codesheet.DefaultPerPage,
			codesheet.DefaultCols,
			codesheet.DefaultRows,
		)
		if err == nil {
			sheet = custom
		}
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sheet:      sheet,
		links:      tshttp.NewTableLinkResolver(config.PublicBaseURL),
		generator:  qrimg.NewGenerator(),
		renderer:   pdf.NewRenderer(),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateArchiveOrderCommandHandler() commands.ArchiveOrderCommandHandler {
	return commands.NewArchiveOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateArchiveCompletedOrdersCommandHandler() commands.ArchiveCompletedOrdersCommandHandler {
	return commands.NewArchiveCompletedOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetArchivedOrdersQueryHandler() queries.GetArchivedOrdersQueryHandler {
	return queries.NewGetArchivedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTableOrdersQueryHandler() queries.GetTableOrdersQueryHandler {
	return queries.NewGetTableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportOrdersQueryHandler() queries.ExportOrdersQueryHandler {
	return queries.NewExportOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCodeSheetPageQueryHandler() (queries.GetCodeSheetPageQueryHandler, error) {
	return queries.NewGetCodeSheetPageQueryHandler(c.sheet)
}

func (c *CompositionRoot) CreateRenderCodeSheetQueryHandler() (queries.RenderCodeSheetQueryHandler, error) {
	return queries.NewRenderCodeSheetQueryHandler(c.sheet, c.links, c.generator, c.renderer)
}

func (c *CompositionRoot) TableLinkResolver() *tshttp.TableLinkResolver {
	return c.links
}

func (c *CompositionRoot) CodeImageGenerator() *qrimg.Generator {
	return c.generator
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
