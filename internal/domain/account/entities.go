package account

import (
	"time"

	"gorm.io/gorm"
)

type PrincipalStatus string

const (
	PrincipalActive    PrincipalStatus = "ACTIVE"
	PrincipalSuspended PrincipalStatus = "SUSPENDED"
	PrincipalClosed    PrincipalStatus = "CLOSED"
)

type PrincipalType string

const (
	TypePrimary PrincipalType = "PRIMARY"
)

// PrincipalAccount: exactly one per consumer, enforced by the unique
// index on consumer_id. Creation is idempotent, see usecase/account.
type PrincipalAccount struct {
	ID         uint64          `gorm:"primaryKey;column:id" json:"-"`
	AccountID  string          `gorm:"size:32;uniqueIndex:ux_principal_account_id" json:"account_id"`
	ConsumerID string          `gorm:"size:32;uniqueIndex:ux_principal_consumer" json:"consumer_id"`
	Type       PrincipalType   `gorm:"size:16;default:'PRIMARY'" json:"account_type"`
	Status     PrincipalStatus `gorm:"size:16;default:'ACTIVE'" json:"status"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (PrincipalAccount) TableName() string { return "principal_accounts" }

type VendorStatus string

const (
	VendorActive   VendorStatus = "ACTIVE"
	VendorDisabled VendorStatus = "DISABLED"
	VendorArchived VendorStatus = "ARCHIVED"
)

// Terminal reports whether no further status transitions are allowed.
func (s VendorStatus) Terminal() bool { return s == VendorArchived }

// VendorLinkedAccount: at most one per (consumer, vendor) pair, enforced
// by the composite unique index.
type VendorLinkedAccount struct {
	ID         uint64         `gorm:"primaryKey;column:id" json:"-"`
	AccountID  string         `gorm:"size:32;uniqueIndex:ux_vendor_account_id" json:"account_id"`
	ConsumerID string         `gorm:"size:32;uniqueIndex:ux_vendor_consumer_vendor,priority:1" json:"consumer_id"`
	VendorID   string         `gorm:"size:64;uniqueIndex:ux_vendor_consumer_vendor,priority:2" json:"vendor_id"`
	Status     VendorStatus   `gorm:"size:16;default:'ACTIVE'" json:"status"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (VendorLinkedAccount) TableName() string { return "vendor_linked_accounts" }
