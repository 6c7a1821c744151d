package ds

// 8. Таблица налогов. Price - процентная ставка (0-100), nullable:
// для старых записей ставка может быть зашита только в label, например "НДС (20%)"
type Tax struct {
	ID        uint     `gorm:"primaryKey"`
	Label     string   `gorm:"type:varchar(100);not null"`
	Price     *float64 `gorm:"type:decimal(5,2)"`
	IsDeleted bool     `gorm:"type:boolean;default:false;not null"`
}
