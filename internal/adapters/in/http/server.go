// Package http exposes the ordering workflow over an Echo JSON API.
// Responses for the interactive views are positional tuples
// [id, table_id, order_date, items, status, special_notes] to keep the
// payloads compact for the polling front end.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// dateLayout is the timestamp format of order dates in JSON tuples.
const dateLayout = "2006-01-02 15:04:05"

// qrImagePx is the raster size of the single-table QR endpoint.
const qrImagePx = 256

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler       commands.PlaceOrderCommandHandler
	updateStatusHandler     commands.UpdateOrderStatusCommandHandler
	archiveOrderHandler     commands.ArchiveOrderCommandHandler
	archiveCompletedHandler commands.ArchiveCompletedOrdersCommandHandler

	// Query handlers
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getArchivedOrdersHandler queries.GetArchivedOrdersQueryHandler
	getTableOrdersHandler    queries.GetTableOrdersQueryHandler
	exportOrdersHandler      queries.ExportOrdersQueryHandler
	codeSheetPageHandler     queries.GetCodeSheetPageQueryHandler
	renderCodeSheetHandler   queries.RenderCodeSheetQueryHandler

	// Rendering collaborators for the single-table QR endpoint
	links     ports.TableLinkResolver
	generator ports.CodeImageGenerator
}

// NewServer creates an HTTP server with the required command and query
// handlers plus the QR rendering collaborators.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	archiveOrderHandler commands.ArchiveOrderCommandHandler,
	archiveCompletedHandler commands.ArchiveCompletedOrdersCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getArchivedOrdersHandler queries.GetArchivedOrdersQueryHandler,
	getTableOrdersHandler queries.GetTableOrdersQueryHandler,
	exportOrdersHandler queries.ExportOrdersQueryHandler,
	codeSheetPageHandler queries.GetCodeSheetPageQueryHandler,
	renderCodeSheetHandler queries.RenderCodeSheetQueryHandler,
	links ports.TableLinkResolver,
	generator ports.CodeImageGenerator,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		updateStatusHandler:      updateStatusHandler,
		archiveOrderHandler:      archiveOrderHandler,
		archiveCompletedHandler:  archiveCompletedHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getArchivedOrdersHandler: getArchivedOrdersHandler,
		getTableOrdersHandler:    getTableOrdersHandler,
		exportOrdersHandler:      exportOrdersHandler,
		codeSheetPageHandler:     codeSheetPageHandler,
		renderCodeSheetHandler:   renderCodeSheetHandler,
		links:                    links,
		generator:                generator,
	}
}

// RegisterRoutes wires the server's handlers into the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/order", s.PlaceOrder)
	e.PATCH("/order/update/:id", s.UpdateOrderStatus)
	e.PATCH("/order/archive/:id", s.ArchiveOrder)
	e.POST("/archive", s.ArchiveCompleted)

	e.GET("/orders", s.GetOrders)
	e.GET("/orders/table/:tid", s.GetTableOrders)
	e.GET("/archived/data", s.GetArchivedOrders)

	e.GET("/orders/export", s.ExportOrders)
	e.GET("/archived/export", s.ExportArchivedOrders)

	e.GET("/qrcodes", s.GetCodeSheetPage)
	e.GET("/qrcodes/pdf", s.GetCodeSheetPDF)
	e.GET("/qr_code/:table_id", s.GetTableQRCode)

	e.GET("/health", s.Health)
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// placeOrderRequest is the POST /order body. Items stays raw so both bare
// strings and {name, qty} objects pass through unchanged.
type placeOrderRequest struct {
	TableID      *int            `json:"table_id"`
	Items        json.RawMessage `json:"items"`
	SpecialNotes string          `json:"special_notes"`
}

// PlaceOrder handles POST /order - places a new order for a table.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req placeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}
	if req.TableID == nil || len(req.Items) == 0 {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Table and items required"})
	}

	tableID, err := kernel.NewTableID(*req.TableID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Table and items required"})
	}

	items, err := order.ParseItems(string(req.Items))
	if err != nil || len(items) == 0 {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Table and items required"})
	}

	cmd, err := commands.NewPlaceOrderCommand(tableID, items, req.SpecialNotes)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if _, err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, messageResponse{Message: "Sipariş başarıyla alındı!"})
}

type updateStatusRequest struct {
	Status *string `json:"status"`
}

// UpdateOrderStatus handles PATCH /order/update/:id - sets an order's status.
// A Completed status archives the order in the same write.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Order not found"})
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil || req.Status == nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Status required"})
	}

	status, err := order.NewStatus(*req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Status required"})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if _, err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Order %d updated", orderID.Int64()),
	})
}

// ArchiveOrder handles PATCH /order/archive/:id - archives one order.
func (s *Server) ArchiveOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Order not found"})
	}

	cmd, err := commands.NewArchiveOrderCommand(orderID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if _, err = s.archiveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Order %d archived", orderID.Int64()),
	})
}

// ArchiveCompleted handles POST /archive - archives all completed orders.
func (s *Server) ArchiveCompleted(ctx echo.Context) error {
	cmd := commands.NewArchiveCompletedOrdersCommand()

	count, err := s.archiveCompletedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("%d sipariş arşivlendi.", count),
	})
}

// GetOrders handles GET /orders - lists non-archived orders as tuples.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTuples(orders))
}

// GetArchivedOrders handles GET /archived/data - lists archived orders.
func (s *Server) GetArchivedOrders(ctx echo.Context) error {
	orders, err := s.getArchivedOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetArchivedOrdersQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTuples(orders))
}

// GetTableOrders handles GET /orders/table/:tid - one table's open orders,
// most recent first.
func (s *Server) GetTableOrders(ctx echo.Context) error {
	raw, err := strconv.Atoi(ctx.Param("tid"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid table id"})
	}

	tableID, err := kernel.NewTableID(raw)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid table id"})
	}

	query, err := queries.NewGetTableOrdersQuery(tableID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	orders, err := s.getTableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTuples(orders))
}

// ExportOrders handles GET /orders/export - active orders as a CSV download.
func (s *Server) ExportOrders(ctx echo.Context) error {
	return s.exportCSV(ctx, queries.ExportScopeActive, "orders.csv")
}

// ExportArchivedOrders handles GET /archived/export - archived orders as a
// CSV download.
func (s *Server) ExportArchivedOrders(ctx echo.Context) error {
	return s.exportCSV(ctx, queries.ExportScopeArchived, "archived_orders.csv")
}

func (s *Server) exportCSV(ctx echo.Context, scope queries.ExportScope, filename string) error {
	query, err := queries.NewExportOrdersQuery(scope)
	if err != nil {
		return s.renderError(ctx, err)
	}

	doc, err := s.exportOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment;filename="+filename)
	return ctx.Blob(http.StatusOK, "text/csv", doc)
}

type codeSheetPageResponse struct {
	TableIDs   []int `json:"table_ids"`
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
}

// GetCodeSheetPage handles GET /qrcodes - one page of the code-sheet index.
func (s *Server) GetCodeSheetPage(ctx echo.Context) error {
	page := pageParam(ctx)

	result, err := s.codeSheetPageHandler.Handle(ctx.Request().Context(), queries.NewGetCodeSheetPageQuery(page))
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, codeSheetPageResponse{
		TableIDs:   result.TableIDs,
		Page:       result.Page,
		TotalPages: result.TotalPages,
	})
}

// GetCodeSheetPDF handles GET /qrcodes/pdf - the printable sheet for one
// page of tables.
func (s *Server) GetCodeSheetPDF(ctx echo.Context) error {
	page := pageParam(ctx)

	doc, err := s.renderCodeSheetHandler.Handle(ctx.Request().Context(), queries.NewRenderCodeSheetQuery(page))
	if err != nil {
		return s.renderError(ctx, err)
	}

	filename := fmt.Sprintf("qrcodes_%d.pdf", page)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment;filename="+filename)
	return ctx.Blob(http.StatusOK, "application/pdf", doc)
}

// GetTableQRCode handles GET /qr_code/:table_id - a single table's QR PNG.
func (s *Server) GetTableQRCode(ctx echo.Context) error {
	raw, err := strconv.Atoi(ctx.Param("table_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid table id"})
	}

	tableID, err := kernel.NewTableID(raw)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid table id"})
	}

	png, err := s.generator.Generate(s.links.TableURL(tableID.Int()), qrImagePx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.Blob(http.StatusOK, "image/png", png)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// toTuples converts order responses to the positional tuple representation.
func toTuples(orders []queries.OrderResponse) [][]any {
	tuples := make([][]any, 0, len(orders))
	for _, o := range orders {
		tuples = append(tuples, []any{
			o.ID,
			o.TableID,
			o.OrderDate.Format(dateLayout),
			o.Items,
			o.Status,
			o.SpecialNotes,
		})
	}
	return tuples
}

func parseOrderID(raw string) (kernel.OrderID, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return kernel.OrderID(0), err
	}
	return kernel.NewOrderID(value)
}

// pageParam reads the ?page query parameter, defaulting to 1. Out-of-range
// values are clamped downstream.
func pageParam(ctx echo.Context) int {
	page, err := strconv.Atoi(ctx.QueryParam("page"))
	if err != nil {
		return 1
	}
	return page
}

// renderError maps domain error classes onto HTTP status codes.
func (s *Server) renderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Order not found"})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}
