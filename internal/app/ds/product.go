package ds

// 7. Таблица товаров/услуг - справочная информация для строк документов
type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(100);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"type:decimal(12,2);not null"` // Цена за единицу по умолчанию
	Unit        string  `gorm:"type:varchar(20)"`            // шт, час, кг ...
	IsDeleted   bool    `gorm:"type:boolean;default:false;not null"`
}
