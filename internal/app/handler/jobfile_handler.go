package handler

import (
	"io"
	"net/http"
	"strconv"

	"backend/internal/app/ds"
	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ДЕЛА (JOB FILES) ============

// Предел размера вложения - 10 МБ
const maxAttachmentSize = 10 << 20

func (h *APIHandler) jobFileToDTO(jobFile *ds.JobFile) dto.JobFileResponse {
	response := dto.JobFileResponse{
		ID:          jobFile.ID,
		Title:       jobFile.Title,
		Status:      jobFile.Status,
		ClientID:    jobFile.ClientID,
		ClientName:  jobFile.Client.Name,
		CreatedAt:   jobFile.CreatedAt,
		Description: jobFile.Description,
	}
	if jobFile.Attachment != nil {
		response.Attachment = *jobFile.Attachment
		// MinIO может быть не настроен - тогда отдаем имя файла без ссылки
		if h.MinIOClient != nil {
			url, err := h.MinIOClient.GetFileURL(*jobFile.Attachment)
			if err != nil {
				logrus.Warnf("Не удалось получить ссылку на вложение %s: %v", *jobFile.Attachment, err)
			} else {
				response.AttachmentURL = url
			}
		}
	}
	return response
}

// GetJobFiles получает список дел
// @Summary Получение списка дел
// @Description Возвращает дела с фильтрацией по клиенту и статусу
// @Tags JobFiles
// @Produce json
// @Security BearerAuth
// @Param client_id query int false "ID клиента"
// @Param status query string false "Статус дела (открыт, в работе, закрыт)"
// @Success 200 {object} dto.JobFileListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/job-files [get]
func (h *APIHandler) GetJobFiles(c *gin.Context) {
	status := c.Query("status")

	var clientID *uint
	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		parsed, err := strconv.ParseUint(clientIDStr, 10, 32)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Неверный ID клиента")
			return
		}
		id := uint(parsed)
		clientID = &id
	}

	jobFiles, err := h.Repository.GetJobFiles(clientID, status)
	if err != nil {
		logrus.Error("Error getting job files: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения дел")
		return
	}

	dtoJobFiles := make([]dto.JobFileResponse, len(jobFiles))
	for i := range jobFiles {
		dtoJobFiles[i] = h.jobFileToDTO(&jobFiles[i])
	}

	c.JSON(http.StatusOK, dto.JobFileListResponse{
		JobFiles: dtoJobFiles,
		Total:    len(dtoJobFiles),
	})
}

// GetJobFile получает одно дело
// @Summary Получение дела по ID
// @Tags JobFiles
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID дела"
// @Success 200 {object} dto.JobFileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/job-files/{id} [get]
func (h *APIHandler) GetJobFile(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID дела")
		return
	}

	jobFile, err := h.Repository.GetJobFileByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Дело не найдено")
		return
	}

	c.JSON(http.StatusOK, h.jobFileToDTO(jobFile))
}

// CreateJobFile создает новое дело
// @Summary Создание дела
// @Tags JobFiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobFileRequest true "Данные дела"
// @Success 201 {object} dto.JobFileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/job-files [post]
func (h *APIHandler) CreateJobFile(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Пользователь не авторизован")
		return
	}

	var request dto.CreateJobFileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	exists, _ := h.Repository.ClientExists(request.ClientID)
	if !exists {
		h.errorResponse(c, http.StatusBadRequest, "Клиент не найден")
		return
	}

	jobFile := ds.JobFile{
		Title:       request.Title,
		ClientID:    request.ClientID,
		CreatorID:   userID,
		Description: request.Description,
	}

	if err := h.Repository.CreateJobFile(&jobFile); err != nil {
		logrus.Error("Error creating job file: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания дела")
		return
	}

	created, err := h.Repository.GetJobFileByID(jobFile.ID)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения созданного дела")
		return
	}

	c.JSON(http.StatusCreated, h.jobFileToDTO(created))
}

// UpdateJobFile изменяет дело
// @Summary Изменение дела
// @Description Частичное обновление: пустые поля не меняются
// @Tags JobFiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID дела"
// @Param request body dto.UpdateJobFileRequest true "Новые данные дела"
// @Success 200 {object} dto.JobFileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/job-files/{id} [put]
func (h *APIHandler) UpdateJobFile(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID дела")
		return
	}

	var request dto.UpdateJobFileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	var title, description, status *string
	if request.Title != "" {
		title = &request.Title
	}
	if request.Description != "" {
		description = &request.Description
	}
	if request.Status != "" {
		status = &request.Status
	}

	if err := h.Repository.UpdateJobFile(id, title, description, status); err != nil {
		logrus.Error("Error updating job file: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка изменения дела")
		return
	}

	jobFile, err := h.Repository.GetJobFileByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Дело не найдено")
		return
	}

	c.JSON(http.StatusOK, h.jobFileToDTO(jobFile))
}

// UploadJobFileAttachment загружает вложение дела в MinIO
// @Summary Загрузка вложения дела
// @Description Принимает файл (pdf, doc, xls, изображения) и привязывает его к делу. Старое вложение удаляется
// @Tags JobFiles
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID дела"
// @Param file formData file true "Файл вложения"
// @Success 200 {object} dto.JobFileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/job-files/{id}/attachment [post]
func (h *APIHandler) UploadJobFileAttachment(c *gin.Context) {
	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "Хранилище вложений недоступно")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID дела")
		return
	}

	jobFile, err := h.Repository.GetJobFileByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Дело не найдено")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Файл не передан")
		return
	}
	if fileHeader.Size > maxAttachmentSize {
		h.errorResponse(c, http.StatusBadRequest, "Файл слишком большой (максимум 10 МБ)")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}

	filename, err := h.MinIOClient.UploadFile(fileData, fileHeader.Filename)
	if err != nil {
		logrus.Error("Error uploading attachment: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки вложения")
		return
	}

	// Старое вложение убираем из хранилища
	if jobFile.Attachment != nil {
		if err := h.MinIOClient.DeleteFile(*jobFile.Attachment); err != nil {
			logrus.Warnf("Не удалось удалить старое вложение %s: %v", *jobFile.Attachment, err)
		}
	}

	if err := h.Repository.UpdateJobFileAttachment(id, &filename); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения вложения")
		return
	}

	updated, err := h.Repository.GetJobFileByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Дело не найдено")
		return
	}

	c.JSON(http.StatusOK, h.jobFileToDTO(updated))
}

// DownloadJobFileAttachment отдает вложение дела
// @Summary Скачивание вложения дела
// @Tags JobFiles
// @Produce application/octet-stream
// @Security BearerAuth
// @Param id path int true "ID дела"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/job-files/{id}/attachment [get]
func (h *APIHandler) DownloadJobFileAttachment(c *gin.Context) {
	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "Хранилище вложений недоступно")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID дела")
		return
	}

	jobFile, err := h.Repository.GetJobFileByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Дело не найдено")
		return
	}
	if jobFile.Attachment == nil {
		h.errorResponse(c, http.StatusNotFound, "У дела нет вложения")
		return
	}

	fileData, err := h.MinIOClient.DownloadFile(*jobFile.Attachment)
	if err != nil {
		logrus.Error("Error downloading attachment: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка скачивания вложения")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+*jobFile.Attachment)
	c.Data(http.StatusOK, "application/octet-stream", fileData)
}

// DeleteJobFileAttachment удаляет вложение дела
// @Summary Удаление вложения дела
// @Tags JobFiles
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID дела"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/job-files/{id}/attachment [delete]
func (h *APIHandler) DeleteJobFileAttachment(c *gin.Context) {
	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "Хранилище вложений недоступно")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID дела")
		return
	}

	jobFile, err := h.Repository.GetJobFileByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Дело не найдено")
		return
	}
	if jobFile.Attachment == nil {
		h.errorResponse(c, http.StatusNotFound, "У дела нет вложения")
		return
	}

	if err := h.MinIOClient.DeleteFile(*jobFile.Attachment); err != nil {
		logrus.Warnf("Не удалось удалить вложение %s из хранилища: %v", *jobFile.Attachment, err)
	}

	if err := h.Repository.UpdateJobFileAttachment(id, nil); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка удаления вложения")
		return
	}

	h.successResponse(c, http.StatusOK, "Вложение удалено", nil)
}

// DeleteJobFile удаляет дело (логически)
// @Summary Удаление дела
// @Tags JobFiles
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID дела"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/job-files/{id} [delete]
func (h *APIHandler) DeleteJobFile(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID дела")
		return
	}

	if err := h.Repository.DeleteJobFile(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Дело удалено", nil)
}
