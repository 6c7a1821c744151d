package repository

import (
	"errors"

	"backend/internal/app/authz"
	"backend/internal/app/ds"
)

// Методы для ролей, модулей и прав

func (r *Repository) GetRoles() ([]ds.Role, error) {
	var roles []ds.Role
	err := r.db.Order("id").Find(&roles).Error
	return roles, err
}

func (r *Repository) GetRoleByID(id uint) (*ds.Role, error) {
	var role ds.Role
	err := r.db.First(&role, id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *Repository) GetRoleBySlug(slug string) (*ds.Role, error) {
	var role ds.Role
	err := r.db.Where("slug = ?", slug).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *Repository) CreateRole(role *ds.Role) error {
	return r.db.Create(role).Error
}

func (r *Repository) UpdateRole(id uint, name, slug *string) error {
	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
	}
	if slug != nil {
		updates["slug"] = *slug
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&ds.Role{}).Where("id = ?", id).Updates(updates).Error
}

// Роль нельзя удалить, пока она назначена пользователям
func (r *Repository) DeleteRole(id uint) error {
	var count int64
	err := r.db.Model(&ds.User{}).Where("role_id = ? AND is_deleted = ?", id, false).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("роль назначена пользователям, удаление невозможно")
	}

	if err := r.db.Where("role_id = ?", id).Delete(&ds.RolePermission{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&ds.Role{}, id).Error
}

// Модули с их правами (для экрана настройки ролей)
func (r *Repository) GetModulesWithPermissions() ([]ds.Module, error) {
	var modules []ds.Module
	err := r.db.Preload("Permissions").Order("sort_order, id").Find(&modules).Error
	return modules, err
}

func (r *Repository) CreateModule(module *ds.Module) error {
	return r.db.Create(module).Error
}

func (r *Repository) UpdateModule(id uint, name, slug *string, sortOrder *int) error {
	updates := map[string]interface{}{}
	if name != nil {
		updates["module_name"] = *name
	}
	if slug != nil {
		updates["module_slug"] = *slug
	}
	if sortOrder != nil {
		updates["sort_order"] = *sortOrder
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&ds.Module{}).Where("id = ?", id).Updates(updates).Error
}

func (r *Repository) CreatePermission(perm *ds.Permission) error {
	return r.db.Create(perm).Error
}

// SetRolePermission выставляет грант роли на право (upsert по паре роль-право)
func (r *Repository) SetRolePermission(roleID, permissionID uint, isAllowed, isShowInMenu bool) error {
	var existing ds.RolePermission
	err := r.db.Where("role_id = ? AND permission_id = ?", roleID, permissionID).First(&existing).Error
	if err != nil {
		grant := ds.RolePermission{
			RoleID:       roleID,
			PermissionID: permissionID,
			IsAllowed:    isAllowed,
			IsShowInMenu: isShowInMenu,
		}
		return r.db.Create(&grant).Error
	}

	return r.db.Model(&ds.RolePermission{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"is_allowed":      isAllowed,
			"is_show_in_menu": isShowInMenu,
		}).Error
}

// GetPermissionCatalogue собирает каталог прав роли в том виде,
// в котором он отдается фронтенду при логине (см. пакет authz)
func (r *Repository) GetPermissionCatalogue(roleID uint) (authz.Catalogue, error) {
	modules, err := r.GetModulesWithPermissions()
	if err != nil {
		return nil, err
	}

	var grants []ds.RolePermission
	err = r.db.Where("role_id = ?", roleID).Find(&grants).Error
	if err != nil {
		return nil, err
	}

	grantMap := make(map[uint]ds.RolePermission, len(grants))
	for _, g := range grants {
		grantMap[g.PermissionID] = g
	}

	catalogue := make(authz.Catalogue, 0, len(modules))
	for _, m := range modules {
		mp := authz.ModulePermissions{
			ModuleName: m.ModuleName,
			ModuleSlug: m.ModuleSlug,
		}
		for _, p := range m.Permissions {
			g := grantMap[p.ID] // Нет гранта - нулевое значение, т.е. запрещено
			mp.Permissions = append(mp.Permissions, authz.Permission{
				Route:        p.Route,
				IsAllowed:    g.IsAllowed,
				IsShowInMenu: g.IsShowInMenu,
			})
		}
		catalogue = append(catalogue, mp)
	}

	return catalogue, nil
}
