package consumer

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusArchived Status = "ARCHIVED"
)

// Consumer holds onboarded identity data. Sensitive fields are stored as
// opaque encrypted blobs (Enc* columns); NationalIDHash is the SHA-256 of
// the plaintext national identifier so the uniqueness constraint can hold
// over a value we never store in clear.
type Consumer struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	ConsumerID string `gorm:"size:32;uniqueIndex:ux_consumers_consumer_id" json:"consumer_id"`

	FullName    string `gorm:"size:255" json:"full_name"`
	Email       string `gorm:"size:255;uniqueIndex:ux_consumers_email" json:"email"`
	Phone       string `gorm:"size:32" json:"phone"`
	DateOfBirth string `gorm:"size:10" json:"date_of_birth"`

	NationalIDHash    string `gorm:"size:64;uniqueIndex:ux_consumers_national_id" json:"-"`
	EncNationalID     string `gorm:"type:text" json:"-"`
	EncDocumentNumber string `gorm:"type:text" json:"-"`
	EncEmployerName   string `gorm:"type:text" json:"-"`
	EncMonthlyIncome  string `gorm:"type:text" json:"-"`
	EncIncomeSource   string `gorm:"type:text" json:"-"`

	Status    Status         `gorm:"size:16;default:'ACTIVE'" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Consumer) TableName() string { return "consumers" }
