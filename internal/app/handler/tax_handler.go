package handler

import (
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН НАЛОГИ ============

func taxToDTO(tax *ds.Tax) dto.TaxResponse {
	return dto.TaxResponse{
		ID:    tax.ID,
		Label: tax.Label,
		Price: tax.Price,
	}
}

// GetTaxes получает список налогов
// @Summary Получение списка налогов
// @Tags Taxes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TaxListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/taxes [get]
func (h *APIHandler) GetTaxes(c *gin.Context) {
	taxes, err := h.Repository.GetAllTaxes()
	if err != nil {
		logrus.Error("Error getting taxes: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения налогов")
		return
	}

	dtoTaxes := make([]dto.TaxResponse, len(taxes))
	for i := range taxes {
		dtoTaxes[i] = taxToDTO(&taxes[i])
	}

	c.JSON(http.StatusOK, dto.TaxListResponse{
		Taxes: dtoTaxes,
		Total: len(dtoTaxes),
	})
}

// GetTaxOptions получает налоги в формате выпадающего списка для форм
// @Summary Справочник налогов для форм документов
// @Description Возвращает налоги в том виде, в котором их потребляет расчет итогов
// @Tags Taxes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/taxes/options [get]
func (h *APIHandler) GetTaxOptions(c *gin.Context) {
	options, err := h.Repository.GetTaxOptions()
	if err != nil {
		logrus.Error("Error getting tax options: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения налогов")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"options": options,
	})
}

// CreateTax создает новый налог
// @Summary Создание налога
// @Description Ставка указывается числом в поле price; ставка в скобках метки, например "НДС (20%)", используется как запасной вариант
// @Tags Taxes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTaxRequest true "Данные налога"
// @Success 201 {object} dto.TaxResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/taxes [post]
func (h *APIHandler) CreateTax(c *gin.Context) {
	var request dto.CreateTaxRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	tax := ds.Tax{
		Label: request.Label,
		Price: request.Price,
	}

	if err := h.Repository.CreateTax(&tax); err != nil {
		logrus.Error("Error creating tax: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания налога")
		return
	}

	c.JSON(http.StatusCreated, taxToDTO(&tax))
}

// UpdateTax изменяет налог
// @Summary Изменение налога
// @Tags Taxes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID налога"
// @Param request body dto.UpdateTaxRequest true "Новые данные налога"
// @Success 200 {object} dto.TaxResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/taxes/{id} [put]
func (h *APIHandler) UpdateTax(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID налога")
		return
	}

	var request dto.UpdateTaxRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	var label *string
	if request.Label != "" {
		label = &request.Label
	}

	if err := h.Repository.UpdateTax(id, label, request.Price); err != nil {
		logrus.Error("Error updating tax: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка изменения налога")
		return
	}

	tax, err := h.Repository.GetTaxByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Налог не найден")
		return
	}

	c.JSON(http.StatusOK, taxToDTO(tax))
}

// DeleteTax удаляет налог (логически)
// @Summary Удаление налога
// @Tags Taxes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID налога"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/taxes/{id} [delete]
func (h *APIHandler) DeleteTax(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID налога")
		return
	}

	if err := h.Repository.DeleteTax(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Налог успешно удален", nil)
}
