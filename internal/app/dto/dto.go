package dto

import (
	"time"

	"backend/internal/app/authz"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID       uint   `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	RoleID   uint   `json:"role_id"`
	RoleSlug string `json:"role_slug"`
	RoleName string `json:"role_name"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	RoleID   uint   `json:"role_id"`
}

type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

type SetUserRoleRequest struct {
	RoleID uint `json:"role_id" binding:"required"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ============ Роли и права (RBAC) ============

type RoleResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CreateRoleRequest struct {
	Name string `json:"name" binding:"required,max=50"`
	Slug string `json:"slug" binding:"required,max=50"`
}

type UpdateRoleRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type PermissionResponse struct {
	ID    uint   `json:"id"`
	Route string `json:"route"`
	Title string `json:"title"`
}

type ModuleResponse struct {
	ID          uint                 `json:"id"`
	ModuleName  string               `json:"module_name"`
	ModuleSlug  string               `json:"module_slug"`
	Permissions []PermissionResponse `json:"permissions"`
}

type CreateModuleRequest struct {
	ModuleName string `json:"module_name" binding:"required,max=100"`
	ModuleSlug string `json:"module_slug" binding:"required,max=100"`
	SortOrder  int    `json:"sort_order"`
}

type CreatePermissionRequest struct {
	ModuleID uint   `json:"module_id" binding:"required"`
	Route    string `json:"route" binding:"required,max=100"`
	Title    string `json:"title" binding:"max=100"`
}

// Один грант роли на право
type RoleGrant struct {
	PermissionID uint `json:"permission_id" binding:"required"`
	IsAllowed    bool `json:"is_allowed"`
	IsShowInMenu bool `json:"is_show_in_menu"`
}

type SetRoleGrantsRequest struct {
	Grants []RoleGrant `json:"grants" binding:"required,dive"`
}

type CatalogueResponse struct {
	RoleID    uint            `json:"role_id"`
	Catalogue authz.Catalogue `json:"catalogue"`
}

// ============ Клиенты (Clients) ============

type ClientResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	TaxNumber string `json:"tax_number"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

type CreateClientRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"max=30"`
	Address   string `json:"address"`
	TaxNumber string `json:"tax_number" binding:"max=50"`
}

type UpdateClientRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"max=30"`
	Address   string `json:"address"`
	TaxNumber string `json:"tax_number" binding:"max=50"`
}

// ============ Товары (Products) ============

type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Unit        string  `json:"unit" binding:"max=20"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"omitempty,gt=0"`
	Unit        string  `json:"unit" binding:"max=20"`
}

// ============ Налоги (Taxes) ============

type TaxResponse struct {
	ID    uint     `json:"id"`
	Label string   `json:"label"`
	Price *float64 `json:"price,omitempty"`
}

type TaxListResponse struct {
	Taxes []TaxResponse `json:"taxes"`
	Total int           `json:"total"`
}

type CreateTaxRequest struct {
	Label string   `json:"label" binding:"required,max=100"`
	Price *float64 `json:"price" binding:"omitempty,gte=0,lte=100"`
}

type UpdateTaxRequest struct {
	Label string   `json:"label"`
	Price *float64 `json:"price" binding:"omitempty,gte=0,lte=100"`
}

// ============ Строки документов (счета и КП) ============

// Строка на входе: только сырые данные, итоги сервер считает сам.
// UnitPrice 0 означает "подставить цену товара из справочника".
type DocumentItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	TaxID     *uint   `json:"tax_id"`
	Quantity  float64 `json:"quantity" binding:"gte=0"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
}

type DocumentItemResponse struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	TaxID       *uint   `json:"tax_id,omitempty"`
	TaxLabel    string  `json:"tax_label,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	SubTotal    float64 `json:"subtotal"`
	TaxAmount   float64 `json:"tax_amount"`
	Total       float64 `json:"total"`
}

// ============ Счета (Invoices) ============

type CreateInvoiceRequest struct {
	ClientID uint                  `json:"client_id" binding:"required"`
	DueAt    *time.Time            `json:"due_at"`
	Notes    string                `json:"notes"`
	Items    []DocumentItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateInvoiceRequest struct {
	ClientID *uint                 `json:"client_id"`
	DueAt    *time.Time            `json:"due_at"`
	Notes    *string               `json:"notes"`
	Items    []DocumentItemRequest `json:"items" binding:"required,min=1,dive"`
}

type InvoiceResponse struct {
	ID         uint                   `json:"id"`
	Number     string                 `json:"number"`
	Status     string                 `json:"status"`
	ClientID   uint                   `json:"client_id"`
	ClientName string                 `json:"client_name"`
	Creator    string                 `json:"creator,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	IssuedAt   *time.Time             `json:"issued_at,omitempty"`
	PaidAt     *time.Time             `json:"paid_at,omitempty"`
	DueAt      *time.Time             `json:"due_at,omitempty"`
	Notes      string                 `json:"notes,omitempty"`
	SubTotal   float64                `json:"subtotal"`
	TaxTotal   float64                `json:"tax_total"`
	GrandTotal float64                `json:"grand_total"`
	Items      []DocumentItemResponse `json:"items,omitempty"` // Только для GET одного счета
}

type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int               `json:"total"`
}

// ============ Коммерческие предложения (Quotations) ============

type CreateQuotationRequest struct {
	ClientID   uint                  `json:"client_id" binding:"required"`
	ValidUntil *time.Time            `json:"valid_until"`
	Notes      string                `json:"notes"`
	Items      []DocumentItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateQuotationRequest struct {
	ClientID   *uint                 `json:"client_id"`
	ValidUntil *time.Time            `json:"valid_until"`
	Notes      *string               `json:"notes"`
	Items      []DocumentItemRequest `json:"items" binding:"required,min=1,dive"`
}

type QuotationResponse struct {
	ID         uint                   `json:"id"`
	Number     string                 `json:"number"`
	Status     string                 `json:"status"`
	ClientID   uint                   `json:"client_id"`
	ClientName string                 `json:"client_name"`
	Creator    string                 `json:"creator,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	SentAt     *time.Time             `json:"sent_at,omitempty"`
	DecidedAt  *time.Time             `json:"decided_at,omitempty"`
	ValidUntil *time.Time             `json:"valid_until,omitempty"`
	Notes      string                 `json:"notes,omitempty"`
	InvoiceID  *uint                  `json:"invoice_id,omitempty"`
	SubTotal   float64                `json:"subtotal"`
	TaxTotal   float64                `json:"tax_total"`
	GrandTotal float64                `json:"grand_total"`
	Items      []DocumentItemResponse `json:"items,omitempty"`
}

type QuotationListResponse struct {
	Quotations []QuotationResponse `json:"quotations"`
	Total      int                 `json:"total"`
}

// ============ Дела (Job Files) ============

type JobFileResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	ClientID      uint      `json:"client_id"`
	ClientName    string    `json:"client_name"`
	CreatedAt     time.Time `json:"created_at"`
	Description   string    `json:"description,omitempty"`
	Attachment    string    `json:"attachment,omitempty"`
	AttachmentURL string    `json:"attachment_url,omitempty"`
}

type JobFileListResponse struct {
	JobFiles []JobFileResponse `json:"job_files"`
	Total    int               `json:"total"`
}

type CreateJobFileRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	ClientID    uint   `json:"client_id" binding:"required"`
	Description string `json:"description"`
}

type UpdateJobFileRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=открыт 'в работе' закрыт"`
}
