package repository

import (
	"backend/internal/app/ds"
	"errors"
)

// Методы для клиентов

func (r *Repository) GetAllClients() ([]ds.Client, error) {
	var clients []ds.Client
	err := r.db.Where("is_deleted = ?", false).Order("name").Find(&clients).Error
	return clients, err
}

// Поиск клиентов по имени
func (r *Repository) SearchClientsByName(name string) ([]ds.Client, error) {
	var clients []ds.Client
	err := r.db.Where("name ILIKE ? AND is_deleted = ?", "%"+name+"%", false).Order("name").Find(&clients).Error
	return clients, err
}

func (r *Repository) GetClientByID(id uint) (*ds.Client, error) {
	var client ds.Client
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *Repository) ClientExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Client{}).Where("id = ? AND is_deleted = ?", id, false).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateClient(client *ds.Client) error {
	return r.db.Create(client).Error
}

// Частичное обновление через указатели на поля
func (r *Repository) UpdateClient(id uint, name, email, phone, address, taxNumber *string) error {
	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
	}
	if email != nil {
		updates["email"] = *email
	}
	if phone != nil {
		updates["phone"] = *phone
	}
	if address != nil {
		updates["address"] = *address
	}
	if taxNumber != nil {
		updates["tax_number"] = *taxNumber
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&ds.Client{}).Where("id = ? AND is_deleted = ?", id, false).Updates(updates).Error
}

// SQL операция для логического удаления
func (r *Repository) DeleteClient(id uint) error {
	result := r.db.Exec("UPDATE clients SET is_deleted = true WHERE id = ? AND is_deleted = false", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("клиент не найден или уже удалён")
	}
	return nil
}
