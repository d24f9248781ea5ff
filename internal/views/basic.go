package views

import (
	"net/http"
	"strconv"

	"github.com/JaimeStill/admin-console/pkg/navigation"
)

const pageIcon = "icon-park-outline:workbench"

var totalColumns = []Column{
	{Key: "date", Title: "日期"},
	{Key: "plate", Title: "车牌"},
	{Key: "region", Title: "地区"},
	{Key: "company", Title: "公司"},
	{Key: "field_staff", Title: "外勤人员"},
	{Key: "internal_staff", Title: "内勤人员"},
	{Key: "platform", Title: "平台"},
	{Key: "business", Title: "业务"},
	{Key: "expected_expenditure", Title: "预计支出"},
	{Key: "income", Title: "收入"},
	{Key: "destination", Title: "目的地"},
	{Key: "is_completed", Title: "完成"},
}

// BasicRoutes returns the routes every deployment carries, in declaration order.
func BasicRoutes(c *Catalog) []navigation.Route {
	return []navigation.Route{
		{
			Name:     "Home",
			Path:     "/",
			Redirect: "/workbench",
			Meta:     navigation.Meta{Order: navigation.Order(0)},
		},
		{
			Name: "Workbench",
			Path: "/workbench",
			Meta: navigation.Meta{Title: "工作台", Order: navigation.Order(1)},
			Children: []navigation.Route{
				{
					Name:      "WorkbenchDefault",
					Path:      "",
					Component: c.Component("/workbench", "工作台", "workbench.html", UserProfile()),
					Meta:      navigation.Meta{Title: "工作台", Icon: pageIcon, Affix: true},
				},
			},
		},
		{
			Name:   "Profile",
			Path:   "/profile",
			Hidden: true,
			Meta:   navigation.Meta{Order: navigation.Order(99)},
			Children: []navigation.Route{
				{
					Name:      "ProfileDefault",
					Path:      "",
					Component: c.Component("/profile", "个人中心", "profile.html", UserProfile()),
					Meta:      navigation.Meta{Title: "个人中心", Icon: "user", Affix: true},
				},
			},
		},
		{
			Name:     "ErrorPage",
			Path:     "/error-page",
			Hidden:   true,
			Redirect: "/error-page/404",
			Meta: navigation.Meta{
				Title: "错误页",
				Icon:  "mdi:alert-circle-outline",
				Order: navigation.Order(99),
			},
			Children: []navigation.Route{
				errorRoute(c, http.StatusUnauthorized, "material-symbols:authenticator"),
				errorRoute(c, http.StatusForbidden, "solar:forbidden-circle-line-duotone"),
				errorRoute(c, http.StatusNotFound, "tabler:error-404"),
				errorRoute(c, http.StatusInternalServerError, "clarity:rack-server-outline-alerted"),
			},
		},
		{
			Name:      "403",
			Path:      "/403",
			Hidden:    true,
			Component: c.Component("/403", "403", "error.html", errorData(http.StatusForbidden)),
		},
		{
			Name:      "404",
			Path:      "/404",
			Hidden:    true,
			Component: c.Component("/404", "404", "error.html", errorData(http.StatusNotFound)),
		},
		{
			Name:      "Login",
			Path:      "/login",
			Hidden:    true,
			Component: c.Component("/login", "登录页", "login.html", LoginForm()),
			Meta:      navigation.Meta{Title: "登录页"},
		},
		page(c, "TotalManagement", "/business/total", "totaldata", "total", "总表数据",
			List("getTotalList", []string{"date", "plate", "business"}, totalColumns...)),
		page(c, "own_business", "/business/own_business", "owndata", "total", "我的数据",
			Owned("getTotalListOb", []string{"date", "plate", "business"}, totalColumns...)),
		page(c, "YY外勤", "/business/yyfs", "yyfsdata", "yyfs", "YY外勤",
			List("getTotalListYyfs", []string{"field_staff"},
				Column{Key: "field_staff", Title: "外勤人员"},
				Column{Key: "plate", Title: "车牌"},
				Column{Key: "business", Title: "业务"},
				Column{Key: "expected_expenditure", Title: "预计支出"},
			)),
		hidden(page(c, "FieldWorkManagement", "/business/field_work", "field_work_data", "", "外勤人员",
			List("getFieldWorkList", []string{"date", "name"},
				Column{Key: "name", Title: "姓名"},
				Column{Key: "number", Title: "编号"},
				Column{Key: "expected_expenditure", Title: "预计支出"},
				Column{Key: "difference", Title: "差额"},
				Column{Key: "date", Title: "日期"},
				Column{Key: "remark", Title: "备注"},
			))),
		page(c, "DutyStaffManagement", "/business/duty_staff", "duty_staff_data", "", "勤务管理",
			List("getDutyStaffList", []string{"name", "type"},
				Column{Key: "name", Title: "姓名"},
				Column{Key: "type", Title: "类型"},
				Column{Key: "actual_expenditure", Title: "实际支出"},
				Column{Key: "count", Title: "业务数"},
				Column{Key: "expected_expenditure_sum", Title: "预计支出合计"},
			)),
		page(c, "ManageBusinessStatics", "/business/manage_business", "business", "", "业务统计",
			List("getTotalListBs", []string{"business"},
				Column{Key: "business", Title: "业务"},
				Column{Key: "expected_expenditure", Title: "预计支出"},
				Column{Key: "income", Title: "收入"},
			)),
		hidden(page(c, "curd", "/curd", "test", "", "CURD示例",
			List("getUserList", []string{"username", "email"},
				Column{Key: "username", Title: "用户名"},
				Column{Key: "email", Title: "邮箱"},
			))),
	}
}

// page builds a layout group at path hosting one table page at child.
func page(c *Catalog, name, path, childName, child, title string, fetch Fetcher) navigation.Route {
	return navigation.Route{
		Name: name,
		Path: path,
		Meta: navigation.Meta{Title: title},
		Children: []navigation.Route{
			{
				Name:      childName,
				Path:      child,
				Component: c.Component(path, title, "table.html", fetch),
				Meta:      navigation.Meta{Title: title, Icon: pageIcon, Affix: true},
			},
		},
	}
}

func hidden(r navigation.Route) navigation.Route {
	r.Hidden = true
	return r
}

func errorRoute(c *Catalog, code int, icon string) navigation.Route {
	s := strconv.Itoa(code)
	return navigation.Route{
		Name:      "ERROR-" + s,
		Path:      s,
		Component: c.Component("/error-page/"+s, s, "error.html", errorData(code)),
		Meta:      navigation.Meta{Title: s, Icon: icon},
	}
}

func errorData(code int) Fetcher {
	return Static(&ErrorData{Code: code, Message: http.StatusText(code)})
}
