package repository

import (
	"errors"
	"fmt"
	"time"

	"backend/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Методы для счетов

// Статусы счета
const (
	InvoiceStatusDraft     = "черновик"
	InvoiceStatusIssued    = "выставлен"
	InvoiceStatusPaid      = "оплачен"
	InvoiceStatusCancelled = "отменён"
	InvoiceStatusDeleted   = "удалён"
)

// GetInvoices возвращает счета с фильтрацией по статусу и датам.
// creatorID != nil ограничивает выборку счетами автора.
func (r *Repository) GetInvoices(status string, dateFrom, dateTo *time.Time, creatorID *uint) ([]ds.Invoice, error) {
	query := r.db.Preload("Client").Where("status != ?", InvoiceStatusDeleted)

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if dateFrom != nil {
		query = query.Where("created_at >= ?", *dateFrom)
	}
	if dateTo != nil {
		query = query.Where("created_at <= ?", *dateTo)
	}
	if creatorID != nil {
		query = query.Where("creator_id = ?", *creatorID)
	}

	var invoices []ds.Invoice
	err := query.Order("id DESC").Find(&invoices).Error
	return invoices, err
}

// Получить счет по ID (только если он не удалён), со строками и справочниками
func (r *Repository) GetInvoiceByID(id uint) (*ds.Invoice, error) {
	var invoice ds.Invoice
	err := r.db.
		Preload("Client").
		Preload("Creator").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Tax").
		Where("id = ? AND status != ?", id, InvoiceStatusDeleted).
		First(&invoice).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// CreateInvoice создает счет вместе со строками одной транзакцией.
// Итоги должны быть уже рассчитаны вызывающей стороной (пакет billing).
func (r *Repository) CreateInvoice(invoice *ds.Invoice) error {
	if invoice.Number == "" {
		invoice.Number = generateDocumentNumber("INV")
	}
	invoice.Status = InvoiceStatusDraft
	invoice.CreatedAt = time.Now()

	return r.db.Create(invoice).Error
}

// UpdateInvoice заменяет строки и поля черновика одной транзакцией
func (r *Repository) UpdateInvoice(id uint, clientID *uint, notes *string, dueAt *time.Time, items []ds.InvoiceItem, subTotal, taxTotal, grandTotal float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var invoice ds.Invoice
		err := tx.Where("id = ? AND status = ?", id, InvoiceStatusDraft).First(&invoice).Error
		if err != nil {
			return errors.New("счет не найден или не в статусе черновик")
		}

		// Полная замена строк
		if err := tx.Where("invoice_id = ?", id).Delete(&ds.InvoiceItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].InvoiceID = id
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"sub_total":   subTotal,
			"tax_total":   taxTotal,
			"grand_total": grandTotal,
		}
		if clientID != nil {
			updates["client_id"] = *clientID
		}
		if notes != nil {
			updates["notes"] = *notes
		}
		if dueAt != nil {
			updates["due_at"] = *dueAt
		}

		return tx.Model(&ds.Invoice{}).Where("id = ?", id).Updates(updates).Error
	})
}

// Перевод черновика в статус выставлен
func (r *Repository) IssueInvoice(id uint) error {
	now := time.Now()
	result := r.db.Model(&ds.Invoice{}).
		Where("id = ? AND status = ?", id, InvoiceStatusDraft).
		Updates(map[string]interface{}{"status": InvoiceStatusIssued, "issued_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("счет нельзя выставить - неверный статус или ID")
	}
	return nil
}

// Отметка об оплате выставленного счета
func (r *Repository) PayInvoice(id uint) error {
	now := time.Now()
	result := r.db.Model(&ds.Invoice{}).
		Where("id = ? AND status = ?", id, InvoiceStatusIssued).
		Updates(map[string]interface{}{"status": InvoiceStatusPaid, "paid_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("оплатить можно только выставленный счет")
	}
	return nil
}

// Отмена черновика или выставленного счета
func (r *Repository) CancelInvoice(id uint) error {
	result := r.db.Model(&ds.Invoice{}).
		Where("id = ? AND status IN ?", id, []string{InvoiceStatusDraft, InvoiceStatusIssued}).
		Update("status", InvoiceStatusCancelled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("счет нельзя отменить - неверный статус или ID")
	}
	return nil
}

// SQL операция для логического удаления (только черновики)
func (r *Repository) DeleteInvoice(id uint) error {
	result := r.db.Exec("UPDATE invoices SET status = 'удалён' WHERE id = ? AND status = 'черновик'", id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("счет нельзя удалить - неверный статус или ID")
	}

	return nil
}

// Номер документа: префикс + дата + короткий uuid, например INV-20260830-a1b2c3d4
func generateDocumentNumber(prefix string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().Format("20060102"), uuid.New().String()[:8])
}
