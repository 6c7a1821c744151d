package authz

import "testing"

func catalogueFixture() Catalogue {
	return Catalogue{
		{
			ModuleName: "Счета",
			ModuleSlug: "invoices",
			Permissions: []Permission{
				{Route: "invoices/view", IsAllowed: true, IsShowInMenu: true},
				{Route: "invoices/update", IsAllowed: true},
				{Route: "invoices/delete", IsAllowed: false},
			},
		},
		{
			ModuleName: "Клиенты",
			ModuleSlug: "clients",
			Permissions: []Permission{
				{Route: "clients", IsAllowed: true, IsShowInMenu: true},
			},
		},
	}
}

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name      string
		catalogue Catalogue
		route     string
		want      bool
	}{
		{"nil каталог - запрещено", nil, "invoices/view", false},
		{"пустой каталог - запрещено", Catalogue{}, "invoices/view", false},
		{"точное совпадение", catalogueFixture(), "invoices/update", true},
		{"иерархия: право на under-действие", catalogueFixture(), "invoices/update/123", true},
		{"иерархия: право на модуль целиком", catalogueFixture(), "clients/delete", true},
		{"запрещенное право игнорируется", catalogueFixture(), "invoices/delete", false},
		{"неизвестный ключ", catalogueFixture(), "reports/view", false},
		{"префикс без границы сегмента не совпадает", catalogueFixture(), "clientsarchive/view", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.catalogue.HasPermission(tt.route); got != tt.want {
				t.Errorf("HasPermission(%q) = %v, want %v", tt.route, got, tt.want)
			}
		})
	}
}

func TestHasPermissionEmptyRouteEntry(t *testing.T) {
	// Запись с пустым route не должна разрешать все подряд
	c := Catalogue{{
		ModuleSlug:  "broken",
		Permissions: []Permission{{Route: "", IsAllowed: true}},
	}}
	if c.HasPermission("invoices/delete") {
		t.Error("запись с пустым route не должна давать доступ")
	}
}

func TestMenuModules(t *testing.T) {
	c := Catalogue{
		{
			ModuleName: "Счета",
			ModuleSlug: "invoices",
			Permissions: []Permission{
				{Route: "invoices/view", IsAllowed: true, IsShowInMenu: true},
				{Route: "invoices/update", IsAllowed: true, IsShowInMenu: false},
			},
		},
		{
			ModuleName: "Скрытый",
			ModuleSlug: "hidden",
			Permissions: []Permission{
				// Показ в меню без is_allowed не считается
				{Route: "hidden/view", IsAllowed: false, IsShowInMenu: true},
			},
		},
	}

	menu := c.MenuModules()
	if len(menu) != 1 {
		t.Fatalf("ожидался 1 модуль в меню, получено %d", len(menu))
	}
	if menu[0].ModuleSlug != "invoices" {
		t.Errorf("неожиданный модуль в меню: %s", menu[0].ModuleSlug)
	}
	if len(menu[0].Permissions) != 1 || menu[0].Permissions[0].Route != "invoices/view" {
		t.Errorf("в меню должно остаться только право invoices/view, получено %+v", menu[0].Permissions)
	}
}

func TestMenuModulesEmptyCatalogue(t *testing.T) {
	if got := Catalogue(nil).MenuModules(); len(got) != 0 {
		t.Errorf("пустой каталог должен давать пустое меню, получено %+v", got)
	}
}
