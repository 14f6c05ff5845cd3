package domain

// BankRequisites holds the payment details shown to donors who transfer
// directly. Configurable per site, project or organization; the most
// specific configured level wins.
type BankRequisites struct {
	RecipientName string `json:"recipient_name"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	BIC           string `json:"bic"`
	CorrAccount   string `json:"corr_account"`
	INN           string `json:"inn"`
	KPP           string `json:"kpp"`
}

// Empty reports whether no meaningful requisites are configured.
func (r BankRequisites) Empty() bool {
	return r.AccountNumber == "" && r.INN == ""
}
