package handler

import (
	"backend/internal/app/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией.
// Ключи прав иерархические: грант на "invoices" покрывает "invoices/create",
// "invoices/update/123" и т.д. (см. пакет authz).
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser) // POST регистрация
		auth.POST("/login", h.AuthHandler.LoginUser)       // POST аутентификация JWT + каталог прав

		// Защищенные эндпоинты
		auth.GET("/profile", authMiddleware.WithAuthCheck(), h.AuthHandler.GetUserProfile)
		auth.PUT("/profile", authMiddleware.WithAuthCheck(), h.AuthHandler.UpdateProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(), h.AuthHandler.LogoutUser)
	}

	// ============ Клиенты (Clients) ============
	clients := api.Group("/clients")
	clients.Use(authMiddleware.WithAuthCheck())
	{
		clients.GET("", authMiddleware.RequirePermission("clients/view"), h.GetClients)
		clients.GET("/:id", authMiddleware.RequirePermission("clients/view"), h.GetClient)
		clients.POST("", authMiddleware.RequirePermission("clients/create"), h.CreateClient)
		clients.PUT("/:id", authMiddleware.RequirePermission("clients/update"), h.UpdateClient)
		clients.DELETE("/:id", authMiddleware.RequirePermission("clients/delete"), h.DeleteClient)
	}

	// ============ Товары и услуги (Products) ============
	products := api.Group("/products")
	products.Use(authMiddleware.WithAuthCheck())
	{
		products.GET("", authMiddleware.RequirePermission("products/view"), h.GetProducts)
		products.GET("/:id", authMiddleware.RequirePermission("products/view"), h.GetProduct)
		products.POST("", authMiddleware.RequirePermission("products/create"), h.CreateProduct)
		products.PUT("/:id", authMiddleware.RequirePermission("products/update"), h.UpdateProduct)
		products.DELETE("/:id", authMiddleware.RequirePermission("products/delete"), h.DeleteProduct)
	}

	// ============ Налоги (Taxes) ============
	taxes := api.Group("/taxes")
	taxes.Use(authMiddleware.WithAuthCheck())
	{
		taxes.GET("", authMiddleware.RequirePermission("taxes/view"), h.GetTaxes)
		taxes.GET("/options", authMiddleware.RequirePermission("taxes/view"), h.GetTaxOptions)
		taxes.POST("", authMiddleware.RequirePermission("taxes/create"), h.CreateTax)
		taxes.PUT("/:id", authMiddleware.RequirePermission("taxes/update"), h.UpdateTax)
		taxes.DELETE("/:id", authMiddleware.RequirePermission("taxes/delete"), h.DeleteTax)
	}

	// ============ Счета (Invoices) ============
	invoices := api.Group("/invoices")
	invoices.Use(authMiddleware.WithAuthCheck())
	{
		invoices.GET("", authMiddleware.RequirePermission("invoices/view"), h.GetInvoices)
		invoices.GET("/export", authMiddleware.RequirePermission("invoices/export"), h.ExportInvoicesXLSX)
		invoices.GET("/:id", authMiddleware.RequirePermission("invoices/view"), h.GetInvoice)
		invoices.GET("/:id/pdf", authMiddleware.RequirePermission("invoices/export"), h.ExportInvoicePDF)
		invoices.POST("", authMiddleware.RequirePermission("invoices/create"), h.CreateInvoice)
		invoices.PUT("/:id", authMiddleware.RequirePermission("invoices/update"), h.UpdateInvoice)
		invoices.PUT("/:id/issue", authMiddleware.RequirePermission("invoices/issue"), h.IssueInvoice)
		invoices.PUT("/:id/pay", authMiddleware.RequirePermission("invoices/pay"), h.PayInvoice)
		invoices.PUT("/:id/cancel", authMiddleware.RequirePermission("invoices/cancel"), h.CancelInvoice)
		invoices.DELETE("/:id", authMiddleware.RequirePermission("invoices/delete"), h.DeleteInvoice)
	}

	// ============ Коммерческие предложения (Quotations) ============
	quotations := api.Group("/quotations")
	quotations.Use(authMiddleware.WithAuthCheck())
	{
		quotations.GET("", authMiddleware.RequirePermission("quotations/view"), h.GetQuotations)
		quotations.GET("/:id", authMiddleware.RequirePermission("quotations/view"), h.GetQuotation)
		quotations.POST("", authMiddleware.RequirePermission("quotations/create"), h.CreateQuotation)
		quotations.PUT("/:id", authMiddleware.RequirePermission("quotations/update"), h.UpdateQuotation)
		quotations.PUT("/:id/send", authMiddleware.RequirePermission("quotations/send"), h.SendQuotation)
		quotations.PUT("/:id/accept", authMiddleware.RequirePermission("quotations/decide"), h.AcceptQuotation)
		quotations.PUT("/:id/reject", authMiddleware.RequirePermission("quotations/decide"), h.RejectQuotation)
		quotations.POST("/:id/convert", authMiddleware.RequirePermission("quotations/convert"), h.ConvertQuotation)
		quotations.DELETE("/:id", authMiddleware.RequirePermission("quotations/delete"), h.DeleteQuotation)
	}

	// ============ Дела (Job Files) ============
	jobFiles := api.Group("/job-files")
	jobFiles.Use(authMiddleware.WithAuthCheck())
	{
		jobFiles.GET("", authMiddleware.RequirePermission("job-files/view"), h.GetJobFiles)
		jobFiles.GET("/:id", authMiddleware.RequirePermission("job-files/view"), h.GetJobFile)
		jobFiles.POST("", authMiddleware.RequirePermission("job-files/create"), h.CreateJobFile)
		jobFiles.PUT("/:id", authMiddleware.RequirePermission("job-files/update"), h.UpdateJobFile)
		jobFiles.DELETE("/:id", authMiddleware.RequirePermission("job-files/delete"), h.DeleteJobFile)

		// Вложения
		jobFiles.POST("/:id/attachment", authMiddleware.RequirePermission("job-files/update"), h.UploadJobFileAttachment)
		jobFiles.GET("/:id/attachment", authMiddleware.RequirePermission("job-files/view"), h.DownloadJobFileAttachment)
		jobFiles.DELETE("/:id/attachment", authMiddleware.RequirePermission("job-files/update"), h.DeleteJobFileAttachment)
	}

	// ============ Администрирование (только admin через RequirePermission) ============
	roles := api.Group("/roles")
	roles.Use(authMiddleware.WithAuthCheck())
	{
		roles.GET("", authMiddleware.RequirePermission("settings/roles"), h.GetRoles)
		roles.POST("", authMiddleware.RequirePermission("settings/roles"), h.CreateRole)
		roles.PUT("/:id", authMiddleware.RequirePermission("settings/roles"), h.UpdateRole)
		roles.DELETE("/:id", authMiddleware.RequirePermission("settings/roles"), h.DeleteRole)
		roles.GET("/:id/catalogue", authMiddleware.RequirePermission("settings/roles"), h.GetRoleCatalogue)
		roles.PUT("/:id/grants", authMiddleware.RequirePermission("settings/roles"), h.SetRoleGrants)
	}

	modules := api.Group("/modules")
	modules.Use(authMiddleware.WithAuthCheck())
	{
		modules.GET("", authMiddleware.RequirePermission("settings/roles"), h.GetModules)
		modules.POST("", authMiddleware.RequirePermission("settings/modules"), h.CreateModule)
	}

	api.POST("/permissions", authMiddleware.WithAuthCheck(), authMiddleware.RequirePermission("settings/modules"), h.CreatePermission)

	users := api.Group("/users")
	users.Use(authMiddleware.WithAuthCheck())
	{
		users.GET("", authMiddleware.RequirePermission("settings/users"), h.GetUsers)
		users.GET("/:id", authMiddleware.RequirePermission("settings/users"), h.GetUser)
		users.PUT("/:id", authMiddleware.RequirePermission("settings/users"), h.UpdateUser)
		users.PUT("/:id/role", authMiddleware.RequirePermission("settings/users"), h.SetUserRole)
		users.DELETE("/:id", authMiddleware.RequirePermission("settings/users"), h.DeleteUser)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
