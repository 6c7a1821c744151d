package handler

import (
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН КЛИЕНТЫ ============

func clientToDTO(client *ds.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		Address:   client.Address,
		TaxNumber: client.TaxNumber,
	}
}

// GetClients получает список клиентов
// @Summary Получение списка клиентов
// @Description Возвращает список клиентов с возможностью поиска по имени
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param query query string false "Поиск по имени клиента"
// @Success 200 {object} dto.ClientListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/clients [get]
func (h *APIHandler) GetClients(c *gin.Context) {
	searchQuery := c.Query("query")

	var clients []ds.Client
	var err error

	if searchQuery == "" {
		clients, err = h.Repository.GetAllClients()
	} else {
		clients, err = h.Repository.SearchClientsByName(searchQuery)
	}

	if err != nil {
		logrus.Error("Error getting clients: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения клиентов")
		return
	}

	dtoClients := make([]dto.ClientResponse, len(clients))
	for i := range clients {
		dtoClients[i] = clientToDTO(&clients[i])
	}

	c.JSON(http.StatusOK, dto.ClientListResponse{
		Clients: dtoClients,
		Total:   len(dtoClients),
	})
}

// GetClient получает одного клиента
// @Summary Получение клиента по ID
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID клиента"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/{id} [get]
func (h *APIHandler) GetClient(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID клиента")
		return
	}

	client, err := h.Repository.GetClientByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Клиент не найден")
		return
	}

	c.JSON(http.StatusOK, clientToDTO(client))
}

// CreateClient создает нового клиента
// @Summary Создание клиента
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClientRequest true "Данные клиента"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/clients [post]
func (h *APIHandler) CreateClient(c *gin.Context) {
	var request dto.CreateClientRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	client := ds.Client{
		Name:      request.Name,
		Email:     request.Email,
		Phone:     request.Phone,
		Address:   request.Address,
		TaxNumber: request.TaxNumber,
	}

	if err := h.Repository.CreateClient(&client); err != nil {
		logrus.Error("Error creating client: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания клиента")
		return
	}

	c.JSON(http.StatusCreated, clientToDTO(&client))
}

// UpdateClient изменяет клиента
// @Summary Изменение клиента
// @Description Частичное обновление: пустые поля не меняются
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID клиента"
// @Param request body dto.UpdateClientRequest true "Новые данные клиента"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/{id} [put]
func (h *APIHandler) UpdateClient(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID клиента")
		return
	}

	var request dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	var name, email, phone, address, taxNumber *string
	if request.Name != "" {
		name = &request.Name
	}
	if request.Email != "" {
		email = &request.Email
	}
	if request.Phone != "" {
		phone = &request.Phone
	}
	if request.Address != "" {
		address = &request.Address
	}
	if request.TaxNumber != "" {
		taxNumber = &request.TaxNumber
	}

	if err := h.Repository.UpdateClient(id, name, email, phone, address, taxNumber); err != nil {
		logrus.Error("Error updating client: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка изменения клиента")
		return
	}

	client, err := h.Repository.GetClientByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Клиент не найден")
		return
	}

	c.JSON(http.StatusOK, clientToDTO(client))
}

// DeleteClient удаляет клиента (логически)
// @Summary Удаление клиента
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID клиента"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/{id} [delete]
func (h *APIHandler) DeleteClient(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID клиента")
		return
	}

	if err := h.Repository.DeleteClient(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Клиент успешно удален", nil)
}
