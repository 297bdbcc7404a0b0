package loanapp

import "time"

type SubmitInput struct {
	ConsumerID      string  `json:"consumer_id"`
	RequestedAmount float64 `json:"requested_amount"`
	TermMonths      int     `json:"term_months"`
}

type DecideInput struct {
	ApplicationID string
	Decision      string
	StaffID       string // 32-char hex
	Reason        string // optional, <=500 chars
}

type ApplicationDTO struct {
	ApplicationID   string    `json:"application_id"`
	ConsumerID      string    `json:"consumer_id"`
	Status          string    `json:"status"`
	RequestedAmount float64   `json:"requested_amount"`
	TermMonths      int       `json:"term_months"`
	CreatedAt       time.Time `json:"created_at"`
}

type DecisionDTO struct {
	DecisionID    string    `json:"decision_id"`
	ApplicationID string    `json:"application_id"`
	Decision      string    `json:"decision"`
	StaffID       string    `json:"staff_id"`
	Reason        string    `json:"reason,omitempty"`
	DecidedAt     time.Time `json:"decided_at"`
}
