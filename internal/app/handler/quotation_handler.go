package handler

import (
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН КОММЕРЧЕСКИЕ ПРЕДЛОЖЕНИЯ ============

// GetQuotations получает список КП
// @Summary Получение списка КП
// @Description Возвращает коммерческие предложения с фильтрацией по статусу и датам
// @Tags Quotations
// @Produce json
// @Security BearerAuth
// @Param status query string false "Статус КП (черновик, отправлено, принято, отклонено)"
// @Param date_from query string false "Создано с даты (ГГГГ-ММ-ДД)"
// @Param date_to query string false "Создано по дату (ГГГГ-ММ-ДД)"
// @Success 200 {object} dto.QuotationListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quotations [get]
func (h *APIHandler) GetQuotations(c *gin.Context) {
	status := c.Query("status")

	dateFrom, err := parseDateFilter(c, "date_from")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	dateTo, err := parseDateFilter(c, "date_to")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	quotations, err := h.Repository.GetQuotations(status, dateFrom, dateTo, nil)
	if err != nil {
		logrus.Error("Error getting quotations: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения КП")
		return
	}

	dtoQuotations := make([]dto.QuotationResponse, len(quotations))
	for i := range quotations {
		dtoQuotations[i] = quotationToDTO(&quotations[i], false)
	}

	c.JSON(http.StatusOK, dto.QuotationListResponse{
		Quotations: dtoQuotations,
		Total:      len(dtoQuotations),
	})
}

// GetQuotation получает одно КП со строками
// @Summary Получение КП по ID
// @Tags Quotations
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID КП"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quotations/{id} [get]
func (h *APIHandler) GetQuotation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID КП")
		return
	}

	quotation, err := h.Repository.GetQuotationByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "КП не найдено")
		return
	}

	c.JSON(http.StatusOK, quotationToDTO(quotation, true))
}

// CreateQuotation создает черновик КП
// @Summary Создание КП
// @Description Создает черновик коммерческого предложения. Итоги сервер считает сам
// @Tags Quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuotationRequest true "Данные КП"
// @Success 201 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quotations [post]
func (h *APIHandler) CreateQuotation(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Пользователь не авторизован")
		return
	}

	var request dto.CreateQuotationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	exists, _ := h.Repository.ClientExists(request.ClientID)
	if !exists {
		h.errorResponse(c, http.StatusBadRequest, "Клиент не найден")
		return
	}

	computed, totals, err := h.computeDocumentItems(request.Items)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]ds.QuotationItem, len(computed))
	for i, ci := range computed {
		items[i] = ds.QuotationItem{
			ProductID: ci.ProductID,
			TaxID:     ci.TaxID,
			Quantity:  ci.Quantity,
			UnitPrice: ci.UnitPrice,
			SubTotal:  ci.Totals.SubTotal,
			TaxAmount: ci.Totals.Tax,
			Total:     ci.Totals.Total,
		}
	}

	quotation := ds.Quotation{
		ClientID:   request.ClientID,
		CreatorID:  userID,
		ValidUntil: request.ValidUntil,
		Notes:      request.Notes,
		SubTotal:   totals.SubTotal,
		TaxTotal:   totals.TaxTotal,
		GrandTotal: totals.GrandTotal,
		Items:      items,
	}

	if err := h.Repository.CreateQuotation(&quotation); err != nil {
		logrus.Error("Error creating quotation: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания КП")
		return
	}

	created, err := h.Repository.GetQuotationByID(quotation.ID)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения созданного КП")
		return
	}

	c.JSON(http.StatusCreated, quotationToDTO(created, true))
}

// UpdateQuotation изменяет черновик КП
// @Summary Изменение КП
// @Description Полная замена строк черновика с пересчетом итогов на сервере
// @Tags Quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID КП"
// @Param request body dto.UpdateQuotationRequest true "Новые данные КП"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quotations/{id} [put]
func (h *APIHandler) UpdateQuotation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID КП")
		return
	}

	var request dto.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	if request.ClientID != nil {
		exists, _ := h.Repository.ClientExists(*request.ClientID)
		if !exists {
			h.errorResponse(c, http.StatusBadRequest, "Клиент не найден")
			return
		}
	}

	computed, totals, err := h.computeDocumentItems(request.Items)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]ds.QuotationItem, len(computed))
	for i, ci := range computed {
		items[i] = ds.QuotationItem{
			ProductID: ci.ProductID,
			TaxID:     ci.TaxID,
			Quantity:  ci.Quantity,
			UnitPrice: ci.UnitPrice,
			SubTotal:  ci.Totals.SubTotal,
			TaxAmount: ci.Totals.Tax,
			Total:     ci.Totals.Total,
		}
	}

	err = h.Repository.UpdateQuotation(id, request.ClientID, request.Notes, request.ValidUntil, items, totals.SubTotal, totals.TaxTotal, totals.GrandTotal)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.Repository.GetQuotationByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "КП не найдено")
		return
	}

	c.JSON(http.StatusOK, quotationToDTO(updated, true))
}

// SendQuotation отправляет КП клиенту
// @Summary Отправка КП
// @Description Переводит черновик в статус отправлено
// @Tags Quotations
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID КП"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/quotations/{id}/send [put]
func (h *APIHandler) SendQuotation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID КП")
		return
	}

	if err := h.Repository.SendQuotation(id); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "КП отправлено", nil)
}

// AcceptQuotation фиксирует принятие КП клиентом
// @Summary Принятие КП
// @Tags Quotations
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID КП"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/quotations/{id}/accept [put]
func (h *APIHandler) AcceptQuotation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID КП")
		return
	}

	if err := h.Repository.DecideQuotation(id, true); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "КП принято", nil)
}

// RejectQuotation фиксирует отклонение КП клиентом
// @Summary Отклонение КП
// @Tags Quotations
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID КП"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/quotations/{id}/reject [put]
func (h *APIHandler) RejectQuotation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID КП")
		return
	}

	if err := h.Repository.DecideQuotation(id, false); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "КП отклонено", nil)
}

// ConvertQuotation создает счет из принятого КП
// @Summary Конвертация КП в счет
// @Description Создает черновик счета со строками и итогами принятого КП
// @Tags Quotations
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID КП"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/quotations/{id}/convert [post]
func (h *APIHandler) ConvertQuotation(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Пользователь не авторизован")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID КП")
		return
	}

	invoice, err := h.Repository.ConvertQuotationToInvoice(id, userID)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.Repository.GetInvoiceByID(invoice.ID)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения созданного счета")
		return
	}

	c.JSON(http.StatusCreated, invoiceToDTO(created, true))
}

// DeleteQuotation удаляет черновик КП (логически)
// @Summary Удаление КП
// @Tags Quotations
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID КП"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/quotations/{id} [delete]
func (h *APIHandler) DeleteQuotation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID КП")
		return
	}

	if err := h.Repository.DeleteQuotation(id); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "КП удалено", nil)
}
