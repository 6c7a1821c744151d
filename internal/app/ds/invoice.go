package ds

import "time"

// 9. Таблица счетов
type Invoice struct {
	ID        uint       `gorm:"primaryKey"`
	Number    string     `gorm:"type:varchar(30);unique;not null"`
	Status    string     `gorm:"type:varchar(20);not null"` // черновик, выставлен, оплачен, отменён, удалён
	ClientID  uint       `gorm:"not null;index"`
	CreatorID uint       `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null"`
	IssuedAt  *time.Time `gorm:"default:null"` // Дата выставления
	PaidAt    *time.Time `gorm:"default:null"` // Дата оплаты
	DueAt     *time.Time `gorm:"default:null"` // Срок оплаты
	Notes     string     `gorm:"type:text"`
	// Итоги пересчитываются сервером из строк (авторитетные значения)
	SubTotal   float64 `gorm:"type:decimal(12,2);default:0"`
	TaxTotal   float64 `gorm:"type:decimal(12,2);default:0"`
	GrandTotal float64 `gorm:"type:decimal(12,2);default:0"`

	Client  Client        `gorm:"foreignKey:ClientID"`
	Creator User          `gorm:"foreignKey:CreatorID"`
	Items   []InvoiceItem `gorm:"foreignKey:InvoiceID"`
}

// 10. Строки счета
type InvoiceItem struct {
	ID        uint    `gorm:"primaryKey"`
	InvoiceID uint    `gorm:"not null;index"`
	ProductID uint    `gorm:"not null"`
	TaxID     *uint   `gorm:"default:null"` // NULL = без налога
	Quantity  float64 `gorm:"type:decimal(12,3);default:1"`
	UnitPrice float64 `gorm:"type:decimal(12,2);not null"`
	SubTotal  float64 `gorm:"type:decimal(12,2);default:0"`
	TaxAmount float64 `gorm:"type:decimal(12,2);default:0"`
	Total     float64 `gorm:"type:decimal(12,2);default:0"`

	Product Product `gorm:"foreignKey:ProductID"`
	Tax     *Tax    `gorm:"foreignKey:TaxID"`
}
