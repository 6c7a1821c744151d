package handler

import (
	"errors"
	"fmt"
	"strconv"

	"backend/internal/app/billing"
	"backend/internal/app/config"
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/redis"
	"backend/internal/app/repository"
	"backend/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	RedisClient *redis.Client
	MinIOClient *storage.MinIOClient
	Config      *config.Config
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, redisClient *redis.Client, minioClient *storage.MinIOClient, cfg *config.Config, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		RedisClient: redisClient,
		MinIOClient: minioClient,
		Config:      cfg,
		AuthHandler: authHandler,
	}
}

// Получение текущего пользователя из контекста
func (h *APIHandler) getUserFromContext(c *gin.Context) (uint, string, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return 0, "", fmt.Errorf("user not authenticated")
	}

	roleSlug := c.GetString("roleSlug")

	id, ok := userID.(uint)
	if !ok {
		logrus.Errorf("getUserFromContext: invalid userID type: %T", userID)
		return 0, roleSlug, fmt.Errorf("invalid user ID")
	}

	return id, roleSlug, nil
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// parseIDParam разбирает числовой :id из пути
func parseIDParam(c *gin.Context, name string) (uint, error) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("неверный ID")
	}
	return uint(id), nil
}

// ============ Расчет строк документов ============

// computedItem - строка документа после серверного пересчета итогов
type computedItem struct {
	ProductID uint
	TaxID     *uint
	Quantity  float64
	UnitPrice float64
	Totals    billing.LineTotals
}

// computeDocumentItems пересчитывает строки счета/КП на сервере.
// Клиентские итоги игнорируются: цена берется из запроса (или из
// справочника товаров при нулевой), ставка - из справочника налогов.
func (h *APIHandler) computeDocumentItems(reqItems []dto.DocumentItemRequest) ([]computedItem, billing.Totals, error) {
	taxes, err := h.Repository.GetTaxOptions()
	if err != nil {
		return nil, billing.Totals{}, errors.New("ошибка загрузки справочника налогов")
	}

	computed := make([]computedItem, 0, len(reqItems))
	lines := make([]billing.Line, 0, len(reqItems))

	for _, item := range reqItems {
		product, err := h.Repository.GetProductByID(item.ProductID)
		if err != nil {
			return nil, billing.Totals{}, fmt.Errorf("товар %d не найден", item.ProductID)
		}

		unitPrice := item.UnitPrice
		if unitPrice == 0 {
			unitPrice = product.Price
		}

		taxID := ""
		if item.TaxID != nil {
			if _, err := h.Repository.GetTaxByID(*item.TaxID); err != nil {
				return nil, billing.Totals{}, fmt.Errorf("налог %d не найден", *item.TaxID)
			}
			taxID = strconv.FormatUint(uint64(*item.TaxID), 10)
		}

		line := billing.Line{
			Qty:   item.Quantity,
			Price: unitPrice,
			TaxID: taxID,
		}
		lines = append(lines, line)
		computed = append(computed, computedItem{
			ProductID: item.ProductID,
			TaxID:     item.TaxID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			Totals:    billing.ComputeLine(line, taxes),
		})
	}

	return computed, billing.ComputeTotals(lines, taxes), nil
}

// ============ Преобразование моделей в DTO ============

func invoiceItemsToDTO(items []ds.InvoiceItem) []dto.DocumentItemResponse {
	result := make([]dto.DocumentItemResponse, len(items))
	for i, item := range items {
		result[i] = dto.DocumentItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			TaxID:     item.TaxID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			SubTotal:  item.SubTotal,
			TaxAmount: item.TaxAmount,
			Total:     item.Total,
		}
		if item.Product.ID != 0 {
			result[i].ProductName = item.Product.Name
		}
		if item.Tax != nil {
			result[i].TaxLabel = item.Tax.Label
		}
	}
	return result
}

func quotationItemsToDTO(items []ds.QuotationItem) []dto.DocumentItemResponse {
	result := make([]dto.DocumentItemResponse, len(items))
	for i, item := range items {
		result[i] = dto.DocumentItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			TaxID:     item.TaxID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			SubTotal:  item.SubTotal,
			TaxAmount: item.TaxAmount,
			Total:     item.Total,
		}
		if item.Product.ID != 0 {
			result[i].ProductName = item.Product.Name
		}
		if item.Tax != nil {
			result[i].TaxLabel = item.Tax.Label
		}
	}
	return result
}

func invoiceToDTO(invoice *ds.Invoice, withItems bool) dto.InvoiceResponse {
	response := dto.InvoiceResponse{
		ID:         invoice.ID,
		Number:     invoice.Number,
		Status:     invoice.Status,
		ClientID:   invoice.ClientID,
		ClientName: invoice.Client.Name,
		Creator:    invoice.Creator.FullName,
		CreatedAt:  invoice.CreatedAt,
		IssuedAt:   invoice.IssuedAt,
		PaidAt:     invoice.PaidAt,
		DueAt:      invoice.DueAt,
		Notes:      invoice.Notes,
		SubTotal:   invoice.SubTotal,
		TaxTotal:   invoice.TaxTotal,
		GrandTotal: invoice.GrandTotal,
	}
	if withItems {
		response.Items = invoiceItemsToDTO(invoice.Items)
	}
	return response
}

func quotationToDTO(quotation *ds.Quotation, withItems bool) dto.QuotationResponse {
	response := dto.QuotationResponse{
		ID:         quotation.ID,
		Number:     quotation.Number,
		Status:     quotation.Status,
		ClientID:   quotation.ClientID,
		ClientName: quotation.Client.Name,
		Creator:    quotation.Creator.FullName,
		CreatedAt:  quotation.CreatedAt,
		SentAt:     quotation.SentAt,
		DecidedAt:  quotation.DecidedAt,
		ValidUntil: quotation.ValidUntil,
		Notes:      quotation.Notes,
		InvoiceID:  quotation.InvoiceID,
		SubTotal:   quotation.SubTotal,
		TaxTotal:   quotation.TaxTotal,
		GrandTotal: quotation.GrandTotal,
	}
	if withItems {
		response.Items = quotationItemsToDTO(quotation.Items)
	}
	return response
}
