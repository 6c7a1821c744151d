package ds

// 2. Таблица ролей
type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);not null"`
	Slug string `gorm:"type:varchar(50);unique;not null"` // admin, manager, accountant ...
}

// 3. Таблица модулей системы (справочник для меню и каталога прав)
type Module struct {
	ID         uint   `gorm:"primaryKey"`
	ModuleName string `gorm:"type:varchar(100);not null"`
	ModuleSlug string `gorm:"type:varchar(100);unique;not null"`
	SortOrder  int    `gorm:"type:int;default:0"`

	Permissions []Permission `gorm:"foreignKey:ModuleID"`
}

// 4. Таблица прав (ключи действий бэкенда, например invoices/update)
type Permission struct {
	ID       uint   `gorm:"primaryKey"`
	ModuleID uint   `gorm:"not null;index"`
	Route    string `gorm:"type:varchar(100);unique;not null"`
	Title    string `gorm:"type:varchar(100)"`
}

// 5. Таблица многие-ко-многим (роли-права) с флагами доступа и меню
type RolePermission struct {
	ID           uint `gorm:"primaryKey"`
	RoleID       uint `gorm:"not null;index;uniqueIndex:idx_role_permission"`
	PermissionID uint `gorm:"not null;index;uniqueIndex:idx_role_permission"`
	IsAllowed    bool `gorm:"type:boolean;default:false;not null"`
	IsShowInMenu bool `gorm:"type:boolean;default:false;not null"`

	Role       Role       `gorm:"foreignKey:RoleID"`
	Permission Permission `gorm:"foreignKey:PermissionID"`
}
