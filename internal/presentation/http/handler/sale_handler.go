package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kibetdev/salespulse-api/internal/application/service"
	"github.com/kibetdev/salespulse-api/internal/domain/repository"
	"github.com/kibetdev/salespulse-api/internal/presentation/http/dto/request"
	"github.com/kibetdev/salespulse-api/internal/presentation/http/dto/response"
	"github.com/kibetdev/salespulse-api/pkg/pagination"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles ingesting a sale record
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateSaleInput{
		SaleDate: req.SaleDate,
		Total:    req.Total,
		Profit:   req.Profit,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.CreateSaleItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", sale)
}

// Get handles retrieving a sale by ID
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// List handles listing sales with pagination and date filters
func (h *SaleHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if start := parseTimeParam(c.Query("start_date")); start != nil {
		params.StartDate = start
	}
	if end := parseTimeParam(c.Query("end_date")); end != nil {
		e := endOfDay(*end)
		params.EndDate = &e
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Delete handles removing a sale
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
