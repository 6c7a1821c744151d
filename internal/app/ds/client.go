package ds

// 6. Таблица клиентов
type Client struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(100)"`
	Phone     string `gorm:"type:varchar(30)"`
	Address   string `gorm:"type:text"`
	TaxNumber string `gorm:"type:varchar(50)"` // ИНН / VAT номер
	IsDeleted bool   `gorm:"type:boolean;default:false;not null"`
}
