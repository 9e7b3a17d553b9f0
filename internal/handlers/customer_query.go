package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rihla/customer-queries/internal/errors"
	"github.com/rihla/customer-queries/internal/listing"
	"github.com/rihla/customer-queries/internal/middleware"
	"github.com/rihla/customer-queries/internal/model"
	"github.com/rihla/customer-queries/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type listParams struct {
	Search string `query:"search"`
	SortBy string `query:"sortBy" validate:"omitempty,oneof=name number email city queryStatus quotationSend query remarks createdBy createdAt"`
	Order  string `query:"order" validate:"omitempty,oneof=asc desc"`
}

func (p listParams) listing() listing.Params {
	order := listing.Ascending
	if p.Order == string(listing.Descending) {
		order = listing.Descending
	}
	return listing.Params{Search: p.Search, SortBy: p.SortBy, Order: order}
}

type newCustomerQuery struct {
	Name          string `json:"name" validate:"required"`
	Number        string `json:"number" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	City          string `json:"city"`
	QueryStatus   string `json:"queryStatus" validate:"required"`
	QuotationSend string `json:"quotationSend" validate:"required"`
	Query         string `json:"query" validate:"required"`
	Remarks       string `json:"remarks"`
}

type updateCustomerQuery struct {
	ID            string `param:"id" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Number        string `json:"number" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	City          string `json:"city" validate:"required"`
	QueryStatus   string `json:"queryStatus" validate:"required"`
	QuotationSend string `json:"quotationSend" validate:"required"`
	Query         string `json:"query"`
	Remarks       string `json:"remarks"`
}

// CustomerQueryHandler is http handler for customer query endpoints
type CustomerQueryHandler struct {
	querySvc  service.CustomerQueryService
	exportSvc service.ExportService
}

// NewCustomerQueryHandler builds CustomerQueryHandler
func NewCustomerQueryHandler(querySvc service.CustomerQueryService, exportSvc service.ExportService) *CustomerQueryHandler {
	return &CustomerQueryHandler{querySvc: querySvc, exportSvc: exportSvc}
}

// List returns the filtered and sorted view of all customer queries
// @Summary     List customer queries
// @Description Fetches the full collection and applies free-text filter and column sort
// @Tags        queries
// @Produce     json
// @Param       search query    string false "Case-insensitive substring matched against all searchable fields"
// @Param       sortBy query    string false "Column key to sort by"
// @Param       order  query    string false "asc or desc"
// @Success     200    {array}  model.CustomerQuery
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Security    Bearer
// @Router      /api/v1/queries [get]
func (h *CustomerQueryHandler) List(c echo.Context) error {
	var params listParams
	if err := c.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&params); err != nil {
		return err
	}

	queries, err := h.querySvc.List(c.Request().Context(), params.listing())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, queries)
}

// Get returns single customer query by id
// @Summary     Get customer query
// @Description Returns single customer query by id
// @Tags        queries
// @Produce     json
// @Param       id     path     string true "Customer query id"
// @Success     200    {object} model.CustomerQuery
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Security    Bearer
// @Router      /api/v1/queries/{id} [get]
func (h *CustomerQueryHandler) Get(c echo.Context) error {
	id := c.Param("id")

	q, err := h.querySvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if q == nil {
		return errors.NewEntryNotFoundErr(fmt.Sprintf("customer query %s doesn't exist", id))
	}
	return c.JSON(http.StatusOK, q)
}

// Post creates new customer query record
// @Summary     Create customer query
// @Description Creates record, stamping createdBy and createdAt
// @Tags        queries
// @Accept      json
// @Produce     json
// @Param       query  body     newCustomerQuery true "New customer query"
// @Success     201    {object} model.CustomerQuery
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Security    Bearer
// @Router      /api/v1/queries [post]
func (h *CustomerQueryHandler) Post(c echo.Context) error {
	var nq newCustomerQuery
	if err := c.Bind(&nq); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nq); err != nil {
		return err
	}

	idn := middleware.IdentityFromContext(c)

	q, err := h.querySvc.Create(c.Request().Context(), idn, &model.CustomerQuery{
		Name:          nq.Name,
		Number:        nq.Number,
		Email:         nq.Email,
		City:          nq.City,
		QueryStatus:   model.QueryStatus(nq.QueryStatus),
		QuotationSend: model.QuotationSend(nq.QuotationSend),
		Query:         nq.Query,
		Remarks:       nq.Remarks,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, q)
}

// Put overwrites every editable field of the record
// @Summary     Update customer query
// @Description Full overwrite of editable fields, createdBy and createdAt stay untouched
// @Tags        queries
// @Accept      json
// @Produce     json
// @Param       id     path     string              true "Customer query id"
// @Param       query  body     updateCustomerQuery true "Updated fields"
// @Success     200    {object} model.CustomerQuery
// @Failure     400    {object} echo.HTTPError
// @Failure     403    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Security    Bearer
// @Router      /api/v1/queries/{id} [put]
func (h *CustomerQueryHandler) Put(c echo.Context) error {
	var uq updateCustomerQuery
	if err := c.Bind(&uq); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&uq); err != nil {
		return err
	}

	idn := middleware.IdentityFromContext(c)

	q, err := h.querySvc.Update(c.Request().Context(), idn, &model.CustomerQuery{
		ID:            uq.ID,
		Name:          uq.Name,
		Number:        uq.Number,
		Email:         uq.Email,
		City:          uq.City,
		QueryStatus:   model.QueryStatus(uq.QueryStatus),
		QuotationSend: model.QuotationSend(uq.QuotationSend),
		Query:         uq.Query,
		Remarks:       uq.Remarks,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, q)
}

// DeleteByID hard deletes the record
// @Summary     Delete customer query
// @Description Hard delete by id, administrator only
// @Tags        queries
// @Param       id     path     string true "Customer query id"
// @Success     204    "No content"
// @Failure     403    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Security    Bearer
// @Router      /api/v1/queries/{id} [delete]
func (h *CustomerQueryHandler) DeleteByID(c echo.Context) error {
	idn := middleware.IdentityFromContext(c)

	if err := h.querySvc.DeleteByID(c.Request().Context(), idn, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Export downloads the current view as an xlsx workbook
// @Summary     Export customer queries
// @Description Serializes the filtered and sorted view into CustomerData.xlsx
// @Tags        queries
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       search query    string false "Case-insensitive substring matched against all searchable fields"
// @Param       sortBy query    string false "Column key to sort by"
// @Param       order  query    string false "asc or desc"
// @Success     200    {file}   file
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Security    Bearer
// @Router      /api/v1/queries/export [get]
func (h *CustomerQueryHandler) Export(c echo.Context) error {
	var params listParams
	if err := c.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&params); err != nil {
		return err
	}

	workbook, err := h.exportSvc.Workbook(c.Request().Context(), params.listing())
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, service.ExportFilename))
	return c.Stream(http.StatusOK, xlsxContentType, bytes.NewReader(workbook))
}
