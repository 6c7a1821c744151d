package authz

import "strings"

// Пакет authz реализует проверку прав по каталогу, который собирается
// при логине из role_permissions и отдается фронтенду целиком.
// Каталог - снимок на сессию: read-only, без состояния, без ошибок.

// Permission - одно право в каталоге. Имена json полей - контракт
// с фронтендом, менять нельзя (включая is_Show_in_menu).
type Permission struct {
	Route        string `json:"route"`
	IsAllowed    bool   `json:"is_allowed"`
	IsShowInMenu bool   `json:"is_Show_in_menu"`
}

// ModulePermissions - модуль системы с его правами
type ModulePermissions struct {
	ModuleName  string       `json:"module_name"`
	ModuleSlug  string       `json:"module_slug"`
	Permissions []Permission `json:"permissions"`
}

// Catalogue - полный каталог прав роли
type Catalogue []ModulePermissions

// HasPermission отвечает "разрешено ли действие route".
// Пустой или nil каталог всегда дает false (fail-closed).
func (c Catalogue) HasPermission(route string) bool {
	for _, m := range c {
		for _, p := range m.Permissions {
			if !p.IsAllowed || p.Route == "" {
				// Пустой route совпадал бы с чем угодно - пропускаем
				continue
			}
			if matchRoute(p.Route, route) {
				return true
			}
		}
	}
	return false
}

// matchRoute: точное совпадение или иерархическое - право "invoices"
// покрывает "invoices/update", право "invoices/update" покрывает
// "invoices/update/123". Префикс засчитывается только по границе
// сегмента, чтобы "inv" не покрывал "invoices/delete".
func matchRoute(granted, requested string) bool {
	if granted == requested {
		return true
	}
	return strings.HasPrefix(requested, granted+"/")
}

// MenuModules фильтрует каталог для навигации: остаются модули,
// у которых есть хотя бы одно право с is_allowed и is_Show_in_menu,
// и в каждом модуле - только такие права. Гейтинг отдельных действий
// при этом не затрагивается: пункт меню может быть виден и без
// полного набора прав на под-действия.
func (c Catalogue) MenuModules() []ModulePermissions {
	result := make([]ModulePermissions, 0, len(c))
	for _, m := range c {
		var visible []Permission
		for _, p := range m.Permissions {
			if p.IsAllowed && p.IsShowInMenu {
				visible = append(visible, p)
			}
		}
		if len(visible) == 0 {
			continue
		}
		result = append(result, ModulePermissions{
			ModuleName:  m.ModuleName,
			ModuleSlug:  m.ModuleSlug,
			Permissions: visible,
		})
	}
	return result
}
