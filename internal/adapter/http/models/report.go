package models

type CustomerBalanceModel struct {
	Name    string `json:"name"`
	TaxID   string `json:"taxId"`
	Balance string `json:"balance"`
}

type AgeBracketsModel struct {
	Minors  int `json:"minors"`
	Young   int `json:"young"`
	Adults  int `json:"adults"`
	Seniors int `json:"seniors"`
}

type AccountActivityModel struct {
	AccountNumber int64  `json:"accountNumber"`
	Variant       string `json:"variant"`
	CustomerName  string `json:"customerName"`
	Transactions  int    `json:"transactions"`
}

type BankReportResponse struct {
	TotalCustomers   int                    `json:"totalCustomers"`
	TotalAccounts    int                    `json:"totalAccounts"`
	CheckingAccounts int                    `json:"checkingAccounts"`
	SavingsAccounts  int                    `json:"savingsAccounts"`
	TotalBalance     string                 `json:"totalBalance"`
	TopCustomers     []CustomerBalanceModel `json:"topCustomers"`
	AgeBrackets      AgeBracketsModel       `json:"ageBrackets"`
	TopAccounts      []AccountActivityModel `json:"topAccounts"`
}

type AccountMovementModel struct {
	AccountNumber int64              `json:"accountNumber"`
	Variant       string             `json:"variant"`
	CustomerName  string             `json:"customerName"`
	Recent        []TransactionModel `json:"recent"`
}

type MovementReportResponse struct {
	Accounts []AccountMovementModel `json:"accounts"`
}
