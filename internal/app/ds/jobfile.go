package ds

import "time"

// 13. Таблица дел (job files) - рабочие папки по клиенту с вложением в MinIO
type JobFile struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(100);not null"`
	Status      string    `gorm:"type:varchar(20);not null"` // открыт, в работе, закрыт
	ClientID    uint      `gorm:"not null;index"`
	CreatorID   uint      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Attachment  *string   `gorm:"type:varchar(255)"` // Имя файла в MinIO, nullable
	IsDeleted   bool      `gorm:"type:boolean;default:false;not null"`

	Client  Client `gorm:"foreignKey:ClientID"`
	Creator User   `gorm:"foreignKey:CreatorID"`
}
