package repository

import (
	"errors"
	"strconv"

	"backend/internal/app/billing"
	"backend/internal/app/ds"
)

// Методы для налогов

func (r *Repository) GetAllTaxes() ([]ds.Tax, error) {
	var taxes []ds.Tax
	err := r.db.Where("is_deleted = ?", false).Order("id").Find(&taxes).Error
	return taxes, err
}

func (r *Repository) GetTaxByID(id uint) (*ds.Tax, error) {
	var tax ds.Tax
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&tax).Error
	if err != nil {
		return nil, err
	}
	return &tax, nil
}

func (r *Repository) CreateTax(tax *ds.Tax) error {
	return r.db.Create(tax).Error
}

func (r *Repository) UpdateTax(id uint, label *string, price *float64) error {
	updates := map[string]interface{}{}
	if label != nil {
		updates["label"] = *label
	}
	if price != nil {
		updates["price"] = *price
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&ds.Tax{}).Where("id = ? AND is_deleted = ?", id, false).Updates(updates).Error
}

// SQL операция для логического удаления
func (r *Repository) DeleteTax(id uint) error {
	result := r.db.Exec("UPDATE taxes SET is_deleted = true WHERE id = ? AND is_deleted = false", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("налог не найден или уже удалён")
	}
	return nil
}

// GetTaxOptions отдает справочник налогов в формате опций для расчета
// и для выпадающих списков фронтенда: {value, label, price}
func (r *Repository) GetTaxOptions() ([]billing.Tax, error) {
	taxes, err := r.GetAllTaxes()
	if err != nil {
		return nil, err
	}

	options := make([]billing.Tax, len(taxes))
	for i, t := range taxes {
		options[i] = billing.Tax{
			Value: strconv.FormatUint(uint64(t.ID), 10),
			Label: t.Label,
			Price: t.Price,
		}
	}
	return options, nil
}
