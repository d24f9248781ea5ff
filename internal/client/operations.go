package client

import "net/http"

// Endpoint describes one upstream call. GET and DELETE send their input as
// query parameters; POST sends it as a JSON body.
type Endpoint struct {
	Method  string
	Path    string
	NoToken bool
}

// Operations maps logical operation names to upstream endpoints. Paths are
// relative to the configured base URL.
var Operations = map[string]Endpoint{
	"login":          {Method: http.MethodPost, Path: "/base/access_token", NoToken: true},
	"getUserInfo":    {Method: http.MethodGet, Path: "/base/userinfo"},
	"getUserMenu":    {Method: http.MethodGet, Path: "/base/usermenu"},
	"getUserApi":     {Method: http.MethodGet, Path: "/base/userapi"},
	"updatePassword": {Method: http.MethodPost, Path: "/base/update_password"},

	"getUserList":   {Method: http.MethodGet, Path: "/user/list"},
	"getUserById":   {Method: http.MethodGet, Path: "/user/get"},
	"createUser":    {Method: http.MethodPost, Path: "/user/create"},
	"updateUser":    {Method: http.MethodPost, Path: "/user/update"},
	"deleteUser":    {Method: http.MethodDelete, Path: "/user/delete"},
	"resetPassword": {Method: http.MethodPost, Path: "/user/reset_password"},

	"getRoleList":          {Method: http.MethodGet, Path: "/role/list"},
	"createRole":           {Method: http.MethodPost, Path: "/role/create"},
	"updateRole":           {Method: http.MethodPost, Path: "/role/update"},
	"deleteRole":           {Method: http.MethodDelete, Path: "/role/delete"},
	"updateRoleAuthorized": {Method: http.MethodPost, Path: "/role/authorized"},
	"getRoleAuthorized":    {Method: http.MethodGet, Path: "/role/authorized"},

	"getMenus":   {Method: http.MethodGet, Path: "/menu/list"},
	"createMenu": {Method: http.MethodPost, Path: "/menu/create"},
	"updateMenu": {Method: http.MethodPost, Path: "/menu/update"},
	"deleteMenu": {Method: http.MethodDelete, Path: "/menu/delete"},

	"getApis":    {Method: http.MethodGet, Path: "/api/list"},
	"createApi":  {Method: http.MethodPost, Path: "/api/create"},
	"updateApi":  {Method: http.MethodPost, Path: "/api/update"},
	"deleteApi":  {Method: http.MethodDelete, Path: "/api/delete"},
	"refreshApi": {Method: http.MethodPost, Path: "/api/refresh"},

	"getDepts":   {Method: http.MethodGet, Path: "/dept/list"},
	"createDept": {Method: http.MethodPost, Path: "/dept/create"},
	"updateDept": {Method: http.MethodPost, Path: "/dept/update"},
	"deleteDept": {Method: http.MethodDelete, Path: "/dept/delete"},

	"getAuditLogList": {Method: http.MethodGet, Path: "/auditlog/list"},

	"getTransactionsList": {Method: http.MethodGet, Path: "/transactions/list"},
	"getTransactionById":  {Method: http.MethodGet, Path: "/transactions/get"},
	"createTransaction":   {Method: http.MethodPost, Path: "/transactions/create"},
	"updateTransaction":   {Method: http.MethodPost, Path: "/transactions/update"},
	"deleteTransaction":   {Method: http.MethodDelete, Path: "/transactions/delete"},

	"getTotalList":     {Method: http.MethodGet, Path: "/total/list"},
	"getTotalById":     {Method: http.MethodGet, Path: "/total/get"},
	"getTotalListYyfs": {Method: http.MethodGet, Path: "/total/list/yyfs"},
	"getTotalListBs":   {Method: http.MethodGet, Path: "/total/list/bs"},
	"createTotal":      {Method: http.MethodPost, Path: "/total/create"},
	"updateTotal":      {Method: http.MethodPost, Path: "/total/update"},
	"getTotalListOb":   {Method: http.MethodGet, Path: "/total/list/ob"},
	"updateTotalOb":    {Method: http.MethodPost, Path: "/total/update/ob"},
	"updateTotalYyfs":  {Method: http.MethodPost, Path: "/total/update/yyfs"},
	"deleteTotal":      {Method: http.MethodDelete, Path: "/total/delete"},

	"getFieldWorkList": {Method: http.MethodGet, Path: "/field_work/list"},
	"getFieldWorkById": {Method: http.MethodGet, Path: "/field_work/get"},
	"createFieldWork":  {Method: http.MethodPost, Path: "/field_work/create"},
	"updateFieldWork":  {Method: http.MethodPost, Path: "/field_work/update"},
	"deleteFieldWork":  {Method: http.MethodDelete, Path: "/field_work/delete"},

	"getDutyStaffList":   {Method: http.MethodGet, Path: "/duty_staff/list"},
	"getDutyStaffListfs": {Method: http.MethodGet, Path: "/duty_staff/list_fs"},
	"getDutyStaffById":   {Method: http.MethodGet, Path: "/duty_staff/get"},
	"createDutyStaff":    {Method: http.MethodPost, Path: "/duty_staff/create"},
	"updateDutyStaff":    {Method: http.MethodPost, Path: "/duty_staff/update"},
	"deleteDutyStaff":    {Method: http.MethodDelete, Path: "/duty_staff/delete"},
}
