package handler

import (
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН РОЛИ И ПРАВА ============

// GetRoles получает список ролей
// @Summary Получение списка ролей
// @Tags RBAC
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.RoleResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/roles [get]
func (h *APIHandler) GetRoles(c *gin.Context) {
	roles, err := h.Repository.GetRoles()
	if err != nil {
		logrus.Error("Error getting roles: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения ролей")
		return
	}

	dtoRoles := make([]dto.RoleResponse, len(roles))
	for i, role := range roles {
		dtoRoles[i] = dto.RoleResponse{ID: role.ID, Name: role.Name, Slug: role.Slug}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"roles":  dtoRoles,
	})
}

// CreateRole создает новую роль
// @Summary Создание роли
// @Tags RBAC
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRoleRequest true "Данные роли"
// @Success 201 {object} dto.RoleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/roles [post]
func (h *APIHandler) CreateRole(c *gin.Context) {
	var request dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	role := ds.Role{Name: request.Name, Slug: request.Slug}
	if err := h.Repository.CreateRole(&role); err != nil {
		logrus.Error("Error creating role: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания роли")
		return
	}

	c.JSON(http.StatusCreated, dto.RoleResponse{ID: role.ID, Name: role.Name, Slug: role.Slug})
}

// UpdateRole изменяет роль
// @Summary Изменение роли
// @Tags RBAC
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID роли"
// @Param request body dto.UpdateRoleRequest true "Новые данные роли"
// @Success 200 {object} dto.RoleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/roles/{id} [put]
func (h *APIHandler) UpdateRole(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID роли")
		return
	}

	var request dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	var name, slug *string
	if request.Name != "" {
		name = &request.Name
	}
	if request.Slug != "" {
		slug = &request.Slug
	}

	if err := h.Repository.UpdateRole(id, name, slug); err != nil {
		logrus.Error("Error updating role: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка изменения роли")
		return
	}

	role, err := h.Repository.GetRoleByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Роль не найдена")
		return
	}

	c.JSON(http.StatusOK, dto.RoleResponse{ID: role.ID, Name: role.Name, Slug: role.Slug})
}

// DeleteRole удаляет роль
// @Summary Удаление роли
// @Description Роль нельзя удалить, пока она назначена пользователям
// @Tags RBAC
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID роли"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/roles/{id} [delete]
func (h *APIHandler) DeleteRole(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID роли")
		return
	}

	if err := h.Repository.DeleteRole(id); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	// Каталог удаленной роли больше не нужен
	if err := h.RedisClient.DropCatalogue(c.Request.Context(), id); err != nil {
		logrus.Warnf("Не удалось сбросить кеш каталога роли %d: %v", id, err)
	}

	h.successResponse(c, http.StatusOK, "Роль удалена", nil)
}

// GetModules получает модули системы с их правами
// @Summary Получение модулей с правами
// @Description Возвращает дерево модулей и прав для экрана настройки ролей
// @Tags RBAC
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ModuleResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/modules [get]
func (h *APIHandler) GetModules(c *gin.Context) {
	modules, err := h.Repository.GetModulesWithPermissions()
	if err != nil {
		logrus.Error("Error getting modules: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения модулей")
		return
	}

	dtoModules := make([]dto.ModuleResponse, len(modules))
	for i, module := range modules {
		perms := make([]dto.PermissionResponse, len(module.Permissions))
		for j, perm := range module.Permissions {
			perms[j] = dto.PermissionResponse{ID: perm.ID, Route: perm.Route, Title: perm.Title}
		}
		dtoModules[i] = dto.ModuleResponse{
			ID:          module.ID,
			ModuleName:  module.ModuleName,
			ModuleSlug:  module.ModuleSlug,
			Permissions: perms,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"modules": dtoModules,
	})
}

// CreateModule создает модуль системы
// @Summary Создание модуля
// @Tags RBAC
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateModuleRequest true "Данные модуля"
// @Success 201 {object} dto.ModuleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/modules [post]
func (h *APIHandler) CreateModule(c *gin.Context) {
	var request dto.CreateModuleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	module := ds.Module{
		ModuleName: request.ModuleName,
		ModuleSlug: request.ModuleSlug,
		SortOrder:  request.SortOrder,
	}
	if err := h.Repository.CreateModule(&module); err != nil {
		logrus.Error("Error creating module: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания модуля")
		return
	}

	c.JSON(http.StatusCreated, dto.ModuleResponse{
		ID:          module.ID,
		ModuleName:  module.ModuleName,
		ModuleSlug:  module.ModuleSlug,
		Permissions: []dto.PermissionResponse{},
	})
}

// CreatePermission создает право внутри модуля
// @Summary Создание права
// @Description Ключ маршрута уникален и задает иерархию: право на "invoices/update" покрывает "invoices/update/123"
// @Tags RBAC
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePermissionRequest true "Данные права"
// @Success 201 {object} dto.PermissionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/permissions [post]
func (h *APIHandler) CreatePermission(c *gin.Context) {
	var request dto.CreatePermissionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	perm := ds.Permission{
		ModuleID: request.ModuleID,
		Route:    request.Route,
		Title:    request.Title,
	}
	if err := h.Repository.CreatePermission(&perm); err != nil {
		logrus.Error("Error creating permission: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания права")
		return
	}

	c.JSON(http.StatusCreated, dto.PermissionResponse{ID: perm.ID, Route: perm.Route, Title: perm.Title})
}

// GetRoleCatalogue получает каталог прав роли
// @Summary Каталог прав роли
// @Description Возвращает каталог в том виде, в котором он отдается фронтенду при логине
// @Tags RBAC
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID роли"
// @Success 200 {object} dto.CatalogueResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/roles/{id}/catalogue [get]
func (h *APIHandler) GetRoleCatalogue(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID роли")
		return
	}

	if _, err := h.Repository.GetRoleByID(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, "Роль не найдена")
		return
	}

	catalogue, err := h.Repository.GetPermissionCatalogue(id)
	if err != nil {
		logrus.Error("Error getting permission catalogue: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения каталога прав")
		return
	}

	c.JSON(http.StatusOK, dto.CatalogueResponse{RoleID: id, Catalogue: catalogue})
}

// SetRoleGrants выставляет гранты роли на права
// @Summary Настройка прав роли
// @Description Массовое выставление грантов. Кеш каталога роли сбрасывается
// @Tags RBAC
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID роли"
// @Param request body dto.SetRoleGrantsRequest true "Гранты роли"
// @Success 200 {object} dto.CatalogueResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/roles/{id}/grants [put]
func (h *APIHandler) SetRoleGrants(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID роли")
		return
	}

	if _, err := h.Repository.GetRoleByID(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, "Роль не найдена")
		return
	}

	var request dto.SetRoleGrantsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	for _, grant := range request.Grants {
		err := h.Repository.SetRolePermission(id, grant.PermissionID, grant.IsAllowed, grant.IsShowInMenu)
		if err != nil {
			logrus.Error("Error setting role permission: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения грантов")
			return
		}
	}

	// Кеш каталога устарел - сбрасываем, следующий запрос соберет заново
	if err := h.RedisClient.DropCatalogue(c.Request.Context(), id); err != nil {
		logrus.Warnf("Не удалось сбросить кеш каталога роли %d: %v", id, err)
	}

	catalogue, err := h.Repository.GetPermissionCatalogue(id)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения каталога прав")
		return
	}

	c.JSON(http.StatusOK, dto.CatalogueResponse{RoleID: id, Catalogue: catalogue})
}
