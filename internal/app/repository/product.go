package repository

import (
	"backend/internal/app/ds"
	"errors"
)

// Методы для товаров/услуг

func (r *Repository) GetAllProducts() ([]ds.Product, error) {
	var products []ds.Product
	err := r.db.Where("is_deleted = ?", false).Order("name").Find(&products).Error
	return products, err
}

// Поиск товаров по названию
func (r *Repository) SearchProductsByName(name string) ([]ds.Product, error) {
	var products []ds.Product
	err := r.db.Where("name ILIKE ? AND is_deleted = ?", "%"+name+"%", false).Order("name").Find(&products).Error
	return products, err
}

func (r *Repository) GetProductByID(id uint) (*ds.Product, error) {
	var product ds.Product
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *Repository) ProductExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Product{}).Where("id = ? AND is_deleted = ?", id, false).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateProduct(product *ds.Product) error {
	return r.db.Create(product).Error
}

func (r *Repository) UpdateProduct(id uint, name, description, unit *string, price *float64) error {
	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
	}
	if description != nil {
		updates["description"] = *description
	}
	if unit != nil {
		updates["unit"] = *unit
	}
	if price != nil {
		updates["price"] = *price
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&ds.Product{}).Where("id = ? AND is_deleted = ?", id, false).Updates(updates).Error
}

// SQL операция для логического удаления
func (r *Repository) DeleteProduct(id uint) error {
	result := r.db.Exec("UPDATE products SET is_deleted = true WHERE id = ? AND is_deleted = false", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("товар не найден или уже удалён")
	}
	return nil
}
