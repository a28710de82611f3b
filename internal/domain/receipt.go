package domain

import (
	"fmt"
	"time"
)

// Receipt is the snapshot generated by a simulated payment submission. It is
// regenerated on every submission and discarded when the session closes.
type Receipt struct {
	TransactionID  string    `json:"transaction_id"`
	ListingID      string    `json:"listing_id"`
	ListingName    string    `json:"listing_name"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Days           int       `json:"days"`
	TotalCost      int64     `json:"total_cost"`
	CustomerName   string    `json:"customer_name"`
	BillingAddress string    `json:"billing_address"`
	IssuedAt       time.Time `json:"issued_at"`
}

// FileName returns the download name for the receipt, keyed by transaction id.
func (r Receipt) FileName() string {
	return fmt.Sprintf("Boro_Receipt_%s.txt", r.TransactionID)
}

// Text renders the receipt as the fixed plain-text block offered for
// download.
func (r Receipt) Text() string {
	return fmt.Sprintf(`Boro Rental Receipt
-----------------------------
Transaction ID: %s
Date: %s

Item: %s
Rental Period: %s to %s
Days: %d
Total: $%.2f

Customer: %s
Address: %s
-----------------------------
Thank you for using Boro!
`,
		r.TransactionID,
		r.IssuedAt.Format("2006-01-02 15:04:05"),
		r.ListingName,
		r.StartDate.Format(DateFormat),
		r.EndDate.Format(DateFormat),
		r.Days,
		float64(r.TotalCost)/100,
		r.CustomerName,
		r.BillingAddress,
	)
}
