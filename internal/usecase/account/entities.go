package account

import "time"

type PrincipalAccountDTO struct {
	AccountID  string    `json:"account_id"`
	ConsumerID string    `json:"consumer_id"`
	Type       string    `json:"account_type"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type VendorAccountDTO struct {
	AccountID  string    `json:"account_id"`
	ConsumerID string    `json:"consumer_id"`
	VendorID   string    `json:"vendor_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
