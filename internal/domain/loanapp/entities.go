package loanapp

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// Terminal reports whether the status has no outgoing transitions.
func (s Status) Terminal() bool { return s != StatusPending }

type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

// Status returns the terminal application status a decision leads to.
func (d Decision) Status() Status { return Status(d) }

func (d Decision) Valid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// MaxReasonLen caps the free-text decision reason.
const MaxReasonLen = 500

// LoanApplication moves PENDING -> {APPROVED, REJECTED, CANCELLED} and
// never leaves a terminal state. PendingKey mirrors ConsumerID while the
// application is PENDING and is NULLed on any terminal transition; the
// unique index on it is the store-level guarantee that a consumer holds
// at most one PENDING application, race included.
type LoanApplication struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID   string         `gorm:"size:32;uniqueIndex:ux_loan_apps_app_id" json:"application_id"`
	ConsumerID      string         `gorm:"size:32;index:idx_loan_apps_consumer" json:"consumer_id"`
	Status          Status         `gorm:"size:16;default:'PENDING'" json:"status"`
	PendingKey      *string        `gorm:"size:32;uniqueIndex:ux_loan_apps_pending" json:"-"`
	RequestedAmount float64        `gorm:"type:decimal(18,2)" json:"requested_amount"`
	TermMonths      int            `json:"term_months"`
	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LoanApplication) TableName() string { return "loan_applications" }

// LoanApplicationDecision is the append-only audit row for one decision
// event. The composite unique index on (application_id, decision) holds
// independently of the application-status guard, so a second identical
// decision loses even if it races past the status check.
type LoanApplicationDecision struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	DecisionID    string    `gorm:"size:32;uniqueIndex:ux_decisions_decision_id" json:"decision_id"`
	ApplicationID uint64    `gorm:"uniqueIndex:ux_decisions_app_decision,priority:1" json:"-"`
	Decision      Decision  `gorm:"size:16;uniqueIndex:ux_decisions_app_decision,priority:2" json:"decision"`
	StaffID       string    `gorm:"size:32" json:"staff_id"`
	Reason        string    `gorm:"size:500" json:"reason,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (LoanApplicationDecision) TableName() string { return "loan_application_decisions" }
