package handler

import (
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ТОВАРЫ И УСЛУГИ ============

func productToDTO(product *ds.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Unit:        product.Unit,
	}
}

// GetProducts получает список товаров
// @Summary Получение списка товаров
// @Description Возвращает список товаров и услуг с возможностью поиска по названию
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param query query string false "Поиск по названию товара"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/products [get]
func (h *APIHandler) GetProducts(c *gin.Context) {
	searchQuery := c.Query("query")

	var products []ds.Product
	var err error

	if searchQuery == "" {
		products, err = h.Repository.GetAllProducts()
	} else {
		products, err = h.Repository.SearchProductsByName(searchQuery)
	}

	if err != nil {
		logrus.Error("Error getting products: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения товаров")
		return
	}

	dtoProducts := make([]dto.ProductResponse, len(products))
	for i := range products {
		dtoProducts[i] = productToDTO(&products[i])
	}

	c.JSON(http.StatusOK, dto.ProductListResponse{
		Products: dtoProducts,
		Total:    len(dtoProducts),
	})
}

// GetProduct получает один товар
// @Summary Получение товара по ID
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [get]
func (h *APIHandler) GetProduct(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID товара")
		return
	}

	product, err := h.Repository.GetProductByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Товар не найден")
		return
	}

	c.JSON(http.StatusOK, productToDTO(product))
}

// CreateProduct создает новый товар
// @Summary Создание товара
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProductRequest true "Данные товара"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/products [post]
func (h *APIHandler) CreateProduct(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	product := ds.Product{
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		Unit:        request.Unit,
	}

	if err := h.Repository.CreateProduct(&product); err != nil {
		logrus.Error("Error creating product: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания товара")
		return
	}

	c.JSON(http.StatusCreated, productToDTO(&product))
}

// UpdateProduct изменяет товар
// @Summary Изменение товара
// @Description Частичное обновление: пустые поля не меняются
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Param request body dto.UpdateProductRequest true "Новые данные товара"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [put]
func (h *APIHandler) UpdateProduct(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID товара")
		return
	}

	var request dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	var name, description, unit *string
	var price *float64
	if request.Name != "" {
		name = &request.Name
	}
	if request.Description != "" {
		description = &request.Description
	}
	if request.Unit != "" {
		unit = &request.Unit
	}
	if request.Price > 0 {
		price = &request.Price
	}

	if err := h.Repository.UpdateProduct(id, name, description, unit, price); err != nil {
		logrus.Error("Error updating product: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка изменения товара")
		return
	}

	product, err := h.Repository.GetProductByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Товар не найден")
		return
	}

	c.JSON(http.StatusOK, productToDTO(product))
}

// DeleteProduct удаляет товар (логически)
// @Summary Удаление товара
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [delete]
func (h *APIHandler) DeleteProduct(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID товара")
		return
	}

	if err := h.Repository.DeleteProduct(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Товар успешно удален", nil)
}
