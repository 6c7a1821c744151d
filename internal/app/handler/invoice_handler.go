package handler

import (
	"fmt"
	"net/http"
	"time"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/export"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН СЧЕТА ============

// parseDateFilter разбирает query-параметр даты в формате 2006-01-02
func parseDateFilter(c *gin.Context, name string) (*time.Time, error) {
	value := c.Query(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("неверный формат даты %s, ожидается ГГГГ-ММ-ДД", name)
	}
	return &parsed, nil
}

// GetInvoices получает список счетов
// @Summary Получение списка счетов
// @Description Возвращает счета с фильтрацией по статусу и диапазону дат создания
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param status query string false "Статус счета (черновик, выставлен, оплачен, отменён)"
// @Param date_from query string false "Создан с даты (ГГГГ-ММ-ДД)"
// @Param date_to query string false "Создан по дату (ГГГГ-ММ-ДД)"
// @Success 200 {object} dto.InvoiceListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/invoices [get]
func (h *APIHandler) GetInvoices(c *gin.Context) {
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

	invoices, err := h.Repository.GetInvoices(status, dateFrom, dateTo, nil)
	if err != nil {
		logrus.Error("Error getting invoices: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения счетов")
		return
	}

	dtoInvoices := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		dtoInvoices[i] = invoiceToDTO(&invoices[i], false)
	}

	c.JSON(http.StatusOK, dto.InvoiceListResponse{
		Invoices: dtoInvoices,
		Total:    len(dtoInvoices),
	})
}

// GetInvoice получает один счет со строками
// @Summary Получение счета по ID
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID счета"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/invoices/{id} [get]
func (h *APIHandler) GetInvoice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID счета")
		return
	}

	invoice, err := h.Repository.GetInvoiceByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Счет не найден")
		return
	}

	c.JSON(http.StatusOK, invoiceToDTO(invoice, true))
}

// CreateInvoice создает черновик счета
// @Summary Создание счета
// @Description Создает черновик счета. Итоги по строкам и документу сервер считает сам
// @Tags Invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInvoiceRequest true "Данные счета"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/invoices [post]
func (h *APIHandler) CreateInvoice(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Пользователь не авторизован")
		return
	}

	var request dto.CreateInvoiceRequest
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

	items := make([]ds.InvoiceItem, len(computed))
	for i, ci := range computed {
		items[i] = ds.InvoiceItem{
			ProductID: ci.ProductID,
			TaxID:     ci.TaxID,
			Quantity:  ci.Quantity,
			UnitPrice: ci.UnitPrice,
			SubTotal:  ci.Totals.SubTotal,
			TaxAmount: ci.Totals.Tax,
			Total:     ci.Totals.Total,
		}
	}

	invoice := ds.Invoice{
		ClientID:   request.ClientID,
		CreatorID:  userID,
		DueAt:      request.DueAt,
		Notes:      request.Notes,
		SubTotal:   totals.SubTotal,
		TaxTotal:   totals.TaxTotal,
		GrandTotal: totals.GrandTotal,
		Items:      items,
	}

	if err := h.Repository.CreateInvoice(&invoice); err != nil {
		logrus.Error("Error creating invoice: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания счета")
		return
	}

	created, err := h.Repository.GetInvoiceByID(invoice.ID)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения созданного счета")
		return
	}

	c.JSON(http.StatusCreated, invoiceToDTO(created, true))
}

// UpdateInvoice изменяет черновик счета
// @Summary Изменение счета
// @Description Полная замена строк черновика с пересчетом итогов на сервере
// @Tags Invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID счета"
// @Param request body dto.UpdateInvoiceRequest true "Новые данные счета"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/invoices/{id} [put]
func (h *APIHandler) UpdateInvoice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID счета")
		return
	}

	var request dto.UpdateInvoiceRequest
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

	items := make([]ds.InvoiceItem, len(computed))
	for i, ci := range computed {
		items[i] = ds.InvoiceItem{
			ProductID: ci.ProductID,
			TaxID:     ci.TaxID,
			Quantity:  ci.Quantity,
			UnitPrice: ci.UnitPrice,
			SubTotal:  ci.Totals.SubTotal,
			TaxAmount: ci.Totals.Tax,
			Total:     ci.Totals.Total,
		}
	}

	err = h.Repository.UpdateInvoice(id, request.ClientID, request.Notes, request.DueAt, items, totals.SubTotal, totals.TaxTotal, totals.GrandTotal)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.Repository.GetInvoiceByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Счет не найден")
		return
	}

	c.JSON(http.StatusOK, invoiceToDTO(updated, true))
}

// IssueInvoice выставляет счет клиенту
// @Summary Выставление счета
// @Description Переводит черновик в статус выставлен
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID счета"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/invoices/{id}/issue [put]
func (h *APIHandler) IssueInvoice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID счета")
		return
	}

	if err := h.Repository.IssueInvoice(id); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Счет выставлен", nil)
}

// PayInvoice отмечает счет оплаченным
// @Summary Оплата счета
// @Description Переводит выставленный счет в статус оплачен
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID счета"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/invoices/{id}/pay [put]
func (h *APIHandler) PayInvoice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID счета")
		return
	}

	if err := h.Repository.PayInvoice(id); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Счет оплачен", nil)
}

// CancelInvoice отменяет счет
// @Summary Отмена счета
// @Description Отменяет черновик или выставленный счет
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID счета"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/invoices/{id}/cancel [put]
func (h *APIHandler) CancelInvoice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID счета")
		return
	}

	if err := h.Repository.CancelInvoice(id); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Счет отменен", nil)
}

// DeleteInvoice удаляет черновик счета (логически)
// @Summary Удаление счета
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID счета"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/invoices/{id} [delete]
func (h *APIHandler) DeleteInvoice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID счета")
		return
	}

	if err := h.Repository.DeleteInvoice(id); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Счет удален", nil)
}

// ExportInvoicePDF выгружает счет в PDF
// @Summary Выгрузка счета в PDF
// @Tags Invoices
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "ID счета"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/invoices/{id}/pdf [get]
func (h *APIHandler) ExportInvoicePDF(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID счета")
		return
	}

	invoice, err := h.Repository.GetInvoiceByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Счет не найден")
		return
	}

	pdfBytes, err := export.InvoicePDF(invoice, h.Config.CurrencySymbol)
	if err != nil {
		logrus.Error("Error generating invoice PDF: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка генерации PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", invoice.Number))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// ExportInvoicesXLSX выгружает реестр счетов в Excel
// @Summary Выгрузка реестра счетов в Excel
// @Description Применяются те же фильтры, что и в списке счетов
// @Tags Invoices
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param status query string false "Статус счета"
// @Param date_from query string false "Создан с даты (ГГГГ-ММ-ДД)"
// @Param date_to query string false "Создан по дату (ГГГГ-ММ-ДД)"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/invoices/export [get]
func (h *APIHandler) ExportInvoicesXLSX(c *gin.Context) {
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

	invoices, err := h.Repository.GetInvoices(status, dateFrom, dateTo, nil)
	if err != nil {
		logrus.Error("Error getting invoices for export: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения счетов")
		return
	}

	xlsxBytes, err := export.InvoiceRegisterXLSX(invoices, h.Config.CurrencySymbol)
	if err != nil {
		logrus.Error("Error generating invoice register: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка генерации Excel")
		return
	}

	filename := fmt.Sprintf("invoices_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsxBytes)
}
