package repository

import (
	"backend/internal/app/ds"
	"errors"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.Preload("Role").Where("is_deleted = ?", false).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByLogin(login string) (*ds.User, error) {
	var user ds.User
	err := r.db.Preload("Role").Where("login = ? AND is_deleted = ?", login, false).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByLogin(login string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("login = ?", login).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateUser(login, password, fullName, email string, roleID uint) (*ds.User, error) {
	user := ds.User{
		Login:    login,
		Password: password,
		FullName: fullName,
		Email:    email,
		RoleID:   roleID,
	}

	err := r.db.Create(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) GetUsers() ([]ds.User, error) {
	var users []ds.User
	err := r.db.Preload("Role").Where("is_deleted = ?", false).Order("id").Find(&users).Error
	return users, err
}

// Частичное обновление профиля через указатели на поля
func (r *Repository) UpdateUser(id uint, fullName, email, password *string) error {
	updates := map[string]interface{}{}
	if fullName != nil {
		updates["full_name"] = *fullName
	}
	if email != nil {
		updates["email"] = *email
	}
	if password != nil {
		updates["password"] = *password
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&ds.User{}).Where("id = ?", id).Updates(updates).Error
}

// Назначение роли пользователю
func (r *Repository) SetUserRole(userID, roleID uint) error {
	result := r.db.Model(&ds.User{}).
		Where("id = ? AND is_deleted = ?", userID, false).
		Update("role_id", roleID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("пользователь не найден")
	}
	return nil
}

// SQL операция для логического удаления
func (r *Repository) DeleteUser(userID uint) error {
	result := r.db.Exec("UPDATE users SET is_deleted = true WHERE id = ? AND is_deleted = false", userID)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("пользователь не найден или уже удалён")
	}

	return nil
}
