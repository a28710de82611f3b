package domain

// PaymentInfo holds the mock payment form contents. Fields are checked for
// presence only; nothing is verified or transmitted, and the card fields are
// never logged or echoed back in full.
type PaymentInfo struct {
	CardholderName string `json:"cardholder_name"`
	CardNumber     string `json:"card_number"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
	BillingAddress string `json:"billing_address"`
}

// Complete reports whether every payment field has been filled in.
func (p PaymentInfo) Complete() bool {
	return p.CardholderName != "" &&
		p.CardNumber != "" &&
		p.Expiry != "" &&
		p.CVV != "" &&
		p.BillingAddress != ""
}

// MaskedCardNumber returns the card number reduced to its last four digits
// for safe display.
func (p PaymentInfo) MaskedCardNumber() string {
	if len(p.CardNumber) <= 4 {
		return p.CardNumber
	}
	return "****" + p.CardNumber[len(p.CardNumber)-4:]
}
