package repository

import (
	"errors"
	"time"

	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для коммерческих предложений

// Статусы КП
const (
	QuotationStatusDraft    = "черновик"
	QuotationStatusSent     = "отправлено"
	QuotationStatusAccepted = "принято"
	QuotationStatusRejected = "отклонено"
	QuotationStatusDeleted  = "удалён"
)

func (r *Repository) GetQuotations(status string, dateFrom, dateTo *time.Time, creatorID *uint) ([]ds.Quotation, error) {
	query := r.db.Preload("Client").Where("status != ?", QuotationStatusDeleted)

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

	var quotations []ds.Quotation
	err := query.Order("id DESC").Find(&quotations).Error
	return quotations, err
}

func (r *Repository) GetQuotationByID(id uint) (*ds.Quotation, error) {
	var quotation ds.Quotation
	err := r.db.
		Preload("Client").
		Preload("Creator").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Tax").
		Where("id = ? AND status != ?", id, QuotationStatusDeleted).
		First(&quotation).Error
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

func (r *Repository) CreateQuotation(quotation *ds.Quotation) error {
	if quotation.Number == "" {
		quotation.Number = generateDocumentNumber("QUO")
	}
	quotation.Status = QuotationStatusDraft
	quotation.CreatedAt = time.Now()

	return r.db.Create(quotation).Error
}

// UpdateQuotation заменяет строки и поля черновика одной транзакцией
func (r *Repository) UpdateQuotation(id uint, clientID *uint, notes *string, validUntil *time.Time, items []ds.QuotationItem, subTotal, taxTotal, grandTotal float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var quotation ds.Quotation
		err := tx.Where("id = ? AND status = ?", id, QuotationStatusDraft).First(&quotation).Error
		if err != nil {
			return errors.New("КП не найдено или не в статусе черновик")
		}

		if err := tx.Where("quotation_id = ?", id).Delete(&ds.QuotationItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].QuotationID = id
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
		if validUntil != nil {
			updates["valid_until"] = *validUntil
		}

		return tx.Model(&ds.Quotation{}).Where("id = ?", id).Updates(updates).Error
	})
}

// Отправка КП клиенту (черновик -> отправлено)
func (r *Repository) SendQuotation(id uint) error {
	now := time.Now()
	result := r.db.Model(&ds.Quotation{}).
		Where("id = ? AND status = ?", id, QuotationStatusDraft).
		Updates(map[string]interface{}{"status": QuotationStatusSent, "sent_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("КП нельзя отправить - неверный статус или ID")
	}
	return nil
}

// Решение клиента по отправленному КП
func (r *Repository) DecideQuotation(id uint, accepted bool) error {
	status := QuotationStatusRejected
	if accepted {
		status = QuotationStatusAccepted
	}

	now := time.Now()
	result := r.db.Model(&ds.Quotation{}).
		Where("id = ? AND status = ?", id, QuotationStatusSent).
		Updates(map[string]interface{}{"status": status, "decided_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("решение возможно только по отправленному КП")
	}
	return nil
}

// SQL операция для логического удаления (только черновики)
func (r *Repository) DeleteQuotation(id uint) error {
	result := r.db.Exec("UPDATE quotations SET status = 'удалён' WHERE id = ? AND status = 'черновик'", id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("КП нельзя удалить - неверный статус или ID")
	}

	return nil
}

// ConvertQuotationToInvoice создает черновик счета из принятого КП.
// Строки и итоги копируются как есть, КП получает ссылку на счет.
func (r *Repository) ConvertQuotationToInvoice(id uint, creatorID uint) (*ds.Invoice, error) {
	var invoice *ds.Invoice

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var quotation ds.Quotation
		err := tx.Preload("Items").
			Where("id = ? AND status = ?", id, QuotationStatusAccepted).
			First(&quotation).Error
		if err != nil {
			return errors.New("конвертировать можно только принятое КП")
		}
		if quotation.InvoiceID != nil {
			return errors.New("по этому КП счет уже создан")
		}

		items := make([]ds.InvoiceItem, len(quotation.Items))
		for i, qi := range quotation.Items {
			items[i] = ds.InvoiceItem{
				ProductID: qi.ProductID,
				TaxID:     qi.TaxID,
				Quantity:  qi.Quantity,
				UnitPrice: qi.UnitPrice,
				SubTotal:  qi.SubTotal,
				TaxAmount: qi.TaxAmount,
				Total:     qi.Total,
			}
		}

		invoice = &ds.Invoice{
			Number:     generateDocumentNumber("INV"),
			Status:     InvoiceStatusDraft,
			ClientID:   quotation.ClientID,
			CreatorID:  creatorID,
			CreatedAt:  time.Now(),
			Notes:      quotation.Notes,
			SubTotal:   quotation.SubTotal,
			TaxTotal:   quotation.TaxTotal,
			GrandTotal: quotation.GrandTotal,
			Items:      items,
		}
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}

		return tx.Model(&ds.Quotation{}).Where("id = ?", id).Update("invoice_id", invoice.ID).Error
	})

	if err != nil {
		return nil, err
	}
	return invoice, nil
}
