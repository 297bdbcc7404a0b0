package onboarding

import "time"

type OnboardInput struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`

	NationalID     string   `json:"national_id"`
	DocumentNumber string   `json:"document_number"`
	EmployerName   string   `json:"employer_name"`
	MonthlyIncome  string   `json:"monthly_income"`
	IncomeSource   string   `json:"income_source"`
	Vendors        []string `json:"vendors,omitempty"`
}

// UpdateProfileInput carries partial updates; nil means "leave as is".
type UpdateProfileInput struct {
	FullName    *string `json:"full_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`

	NationalID     *string `json:"national_id,omitempty"`
	DocumentNumber *string `json:"document_number,omitempty"`
	EmployerName   *string `json:"employer_name,omitempty"`
	MonthlyIncome  *string `json:"monthly_income,omitempty"`
	IncomeSource   *string `json:"income_source,omitempty"`
}

// ConsumerDTO is the decrypted read view.
type ConsumerDTO struct {
	ConsumerID  string `json:"consumer_id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`

	NationalID     string `json:"national_id,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
	EmployerName   string `json:"employer_name,omitempty"`
	MonthlyIncome  string `json:"monthly_income,omitempty"`
	IncomeSource   string `json:"income_source,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
