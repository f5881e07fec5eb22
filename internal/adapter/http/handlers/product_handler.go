package handlers

import (
	"context"
	"log"
	"net/http"
	request "seguro_xpto/internal/adapter/http/dto/request"
	response "seguro_xpto/internal/adapter/http/dto/response"
	"seguro_xpto/internal/domain/entities"
	"seguro_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProductHandler exposes the insurance product catalog.
type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// CreateProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body request.ProductCreateRequest true "Product"
// @Success 201 {object} response.ProductResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[product][handler] invalid payload err=%v", err)
		writeError(c, errInvalidPayload)
		return
	}

	product, err := h.usecase.CreateProduct(c.Request.Context(), payload.Code, payload.Name, payload.Premium)
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromProduct(product))
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} response.ProductResponse
// @Router /v1/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

// GetProduct godoc
// @Summary Get a product by code
// @Tags products
// @Produce json
// @Param code path string true "Product code"
// @Success 200 {object} response.ProductResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/products/{code} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}

// UpdateProduct godoc
// @Summary Update name and/or premium of a product
// @Tags products
// @Accept json
// @Produce json
// @Param code path string true "Product code"
// @Param product body request.ProductUpdateRequest true "Fields to change"
// @Success 200 {object} response.ProductResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/products/{code} [patch]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[product][handler] invalid update payload code=%s err=%v", c.Param("code"), err)
		writeError(c, errInvalidPayload)
		return
	}

	product, err := h.usecase.UpdateProduct(c.Request.Context(), c.Param("code"), payload.ToUpdate())
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}

// SuspendProduct godoc
// @Summary Suspend a product
// @Tags products
// @Produce json
// @Param code path string true "Product code"
// @Success 200 {object} response.ProductResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/products/{code}/suspend [patch]
func (h *ProductHandler) SuspendProduct(c *gin.Context) {
	h.patchStatus(c, h.usecase.Suspend)
}

// ReactivateProduct godoc
// @Summary Reactivate a product
// @Tags products
// @Produce json
// @Param code path string true "Product code"
// @Success 200 {object} response.ProductResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/products/{code}/reactivate [patch]
func (h *ProductHandler) ReactivateProduct(c *gin.Context) {
	h.patchStatus(c, h.usecase.Reactivate)
}

func (h *ProductHandler) patchStatus(c *gin.Context, updater func(ctx context.Context, code string) (entities.Product, error)) {
	product, err := updater(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}
