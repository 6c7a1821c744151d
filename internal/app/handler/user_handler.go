package handler

import (
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ПОЛЬЗОВАТЕЛИ (администрирование) ============

func userToDTO(user *ds.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		Login:    user.Login,
		FullName: user.FullName,
		Email:    user.Email,
		RoleID:   user.RoleID,
		RoleSlug: user.Role.Slug,
		RoleName: user.Role.Name,
	}
}

// GetUsers получает список пользователей
// @Summary Получение списка пользователей
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/users [get]
func (h *APIHandler) GetUsers(c *gin.Context) {
	users, err := h.Repository.GetUsers()
	if err != nil {
		logrus.Error("Error getting users: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения пользователей")
		return
	}

	dtoUsers := make([]dto.UserResponse, len(users))
	for i := range users {
		dtoUsers[i] = userToDTO(&users[i])
	}

	c.JSON(http.StatusOK, dto.UserListResponse{
		Users: dtoUsers,
		Total: len(dtoUsers),
	})
}

// GetUser получает одного пользователя
// @Summary Получение пользователя по ID
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id} [get]
func (h *APIHandler) GetUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	user, err := h.Repository.GetUserByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Пользователь не найден")
		return
	}

	c.JSON(http.StatusOK, userToDTO(user))
}

// UpdateUser изменяет данные пользователя
// @Summary Изменение пользователя
// @Description Частичное обновление: пустые поля не меняются. Пароль хешируется
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Param request body dto.UpdateUserRequest true "Новые данные пользователя"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id} [put]
func (h *APIHandler) UpdateUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	var request dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	var fullName, email, password *string
	if request.FullName != "" {
		fullName = &request.FullName
	}
	if request.Email != "" {
		email = &request.Email
	}
	if request.Password != "" {
		hashed := generateHashString(request.Password)
		password = &hashed
	}

	if err := h.Repository.UpdateUser(id, fullName, email, password); err != nil {
		logrus.Error("Error updating user: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка изменения пользователя")
		return
	}

	user, err := h.Repository.GetUserByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Пользователь не найден")
		return
	}

	c.JSON(http.StatusOK, userToDTO(user))
}

// SetUserRole назначает пользователю роль
// @Summary Назначение роли пользователю
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Param request body dto.SetUserRoleRequest true "Новая роль"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id}/role [put]
func (h *APIHandler) SetUserRole(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	var request dto.SetUserRoleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	if _, err := h.Repository.GetRoleByID(request.RoleID); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Роль не найдена")
		return
	}

	if err := h.Repository.SetUserRole(id, request.RoleID); err != nil {
		logrus.Error("Error setting user role: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка назначения роли")
		return
	}

	user, err := h.Repository.GetUserByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Пользователь не найден")
		return
	}

	c.JSON(http.StatusOK, userToDTO(user))
}

// DeleteUser удаляет пользователя (логически)
// @Summary Удаление пользователя
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id} [delete]
func (h *APIHandler) DeleteUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	if err := h.Repository.DeleteUser(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Пользователь удален", nil)
}
