package ds

import "time"

// 11. Таблица коммерческих предложений
type Quotation struct {
	ID         uint       `gorm:"primaryKey"`
	Number     string     `gorm:"type:varchar(30);unique;not null"`
	Status     string     `gorm:"type:varchar(20);not null"` // черновик, отправлено, принято, отклонено, удалён
	ClientID   uint       `gorm:"not null;index"`
	CreatorID  uint       `gorm:"not null"`
	CreatedAt  time.Time  `gorm:"not null"`
	SentAt     *time.Time `gorm:"default:null"`
	DecidedAt  *time.Time `gorm:"default:null"` // Дата принятия/отклонения
	ValidUntil *time.Time `gorm:"default:null"`
	Notes      string     `gorm:"type:text"`
	InvoiceID  *uint      `gorm:"default:null"` // Счет, созданный из принятого КП
	SubTotal   float64    `gorm:"type:decimal(12,2);default:0"`
	TaxTotal   float64    `gorm:"type:decimal(12,2);default:0"`
	GrandTotal float64    `gorm:"type:decimal(12,2);default:0"`

	Client  Client          `gorm:"foreignKey:ClientID"`
	Creator User            `gorm:"foreignKey:CreatorID"`
	Items   []QuotationItem `gorm:"foreignKey:QuotationID"`
}

// 12. Строки коммерческого предложения
type QuotationItem struct {
	ID          uint    `gorm:"primaryKey"`
	QuotationID uint    `gorm:"not null;index"`
	ProductID   uint    `gorm:"not null"`
	TaxID       *uint   `gorm:"default:null"`
	Quantity    float64 `gorm:"type:decimal(12,3);default:1"`
	UnitPrice   float64 `gorm:"type:decimal(12,2);not null"`
	SubTotal    float64 `gorm:"type:decimal(12,2);default:0"`
	TaxAmount   float64 `gorm:"type:decimal(12,2);default:0"`
	Total       float64 `gorm:"type:decimal(12,2);default:0"`

	Product Product `gorm:"foreignKey:ProductID"`
	Tax     *Tax    `gorm:"foreignKey:TaxID"`
}
