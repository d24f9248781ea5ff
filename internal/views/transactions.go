package views

import "github.com/JaimeStill/admin-console/pkg/navigation"

// TransactionsModule hosts the payment transaction table.
func TransactionsModule(c *Catalog) navigation.Module {
	return func() navigation.Route {
		return navigation.Route{
			Name: "TransactionManagement",
			Path: "/business/transactions",
			Meta: navigation.Meta{Title: "交易记录", Order: navigation.Order(10)},
			Children: []navigation.Route{
				{
					Name: "transactions_data",
					Path: "",
					Component: c.Component("/business/transactions", "交易记录", "table.html",
						List("getTransactionsList", []string{"recipient", "payment_amount"},
							Column{Key: "payment_time", Title: "支付时间"},
							Column{Key: "payment_amount", Title: "支付金额"},
							Column{Key: "recipient", Title: "收款人"},
						)),
					Meta: navigation.Meta{Title: "交易记录", Icon: pageIcon, Affix: true},
				},
			},
		}
	}
}
