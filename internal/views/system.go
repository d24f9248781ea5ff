package views

import "github.com/JaimeStill/admin-console/pkg/navigation"

// SystemModule groups the user, role, menu, API, department and audit pages.
func SystemModule(c *Catalog) navigation.Module {
	return func() navigation.Route {
		return navigation.Route{
			Name: "SystemManagement",
			Path: "/system",
			Meta: navigation.Meta{
				Title: "系统管理",
				Icon:  "carbon:gui-management",
				Order: navigation.Order(5),
			},
			Children: []navigation.Route{
				systemPage(c, "UserManagement", "user", "用户管理", "material-symbols:person-outline-rounded", 1,
					List("getUserList", []string{"username", "email", "dept_id"},
						Column{Key: "username", Title: "用户名"},
						Column{Key: "alias", Title: "昵称"},
						Column{Key: "email", Title: "邮箱"},
						Column{Key: "is_superuser", Title: "超级用户"},
						Column{Key: "is_active", Title: "启用"},
					)),
				systemPage(c, "RoleManagement", "role", "角色管理", "carbon:user-role", 2,
					List("getRoleList", []string{"role_name"},
						Column{Key: "name", Title: "角色名"},
						Column{Key: "desc", Title: "描述"},
					)),
				systemPage(c, "MenuManagement", "menu", "菜单管理", "material-symbols:list-alt-outline", 3,
					List("getMenus", nil,
						Column{Key: "name", Title: "菜单名称"},
						Column{Key: "path", Title: "访问路径"},
						Column{Key: "component", Title: "组件"},
						Column{Key: "order", Title: "排序"},
						Column{Key: "is_hidden", Title: "隐藏"},
					)),
				systemPage(c, "APIManagement", "api", "API管理", "ant-design:api-outlined", 4,
					List("getApis", []string{"path", "summary", "tags"},
						Column{Key: "path", Title: "API路径"},
						Column{Key: "method", Title: "请求方式"},
						Column{Key: "summary", Title: "API简介"},
						Column{Key: "tags", Title: "Tags"},
					)),
				systemPage(c, "DeptManagement", "dept", "部门管理", "mingcute:department-line", 5,
					List("getDepts", []string{"name"},
						Column{Key: "name", Title: "部门名称"},
						Column{Key: "desc", Title: "备注"},
					)),
				systemPage(c, "AuditLog", "auditlog", "审计日志", "ph:clipboard-text-bold", 6,
					List("getAuditLogList", []string{"username", "module", "method", "summary", "status", "start_time", "end_time"},
						Column{Key: "username", Title: "用户名称"},
						Column{Key: "module", Title: "功能模块"},
						Column{Key: "summary", Title: "接口概要"},
						Column{Key: "method", Title: "请求方法"},
						Column{Key: "path", Title: "请求路径"},
						Column{Key: "status", Title: "状态码"},
						Column{Key: "response_time", Title: "响应时间(ms)"},
						Column{Key: "created_at", Title: "操作时间"},
					)),
			},
		}
	}
}

func systemPage(c *Catalog, name, path, title, icon string, order int, fetch Fetcher) navigation.Route {
	return navigation.Route{
		Name:      name,
		Path:      path,
		Component: c.Component("/system/"+path, title, "table.html", fetch),
		Meta:      navigation.Meta{Title: title, Icon: icon, Order: navigation.Order(order)},
	}
}
