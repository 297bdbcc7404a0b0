// Package onboarding creates consumers with their sensitive fields
// encrypted at rest and announces completion on the event relay so
// account provisioning stays decoupled from the onboarding commit.
package onboarding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	domain "lendcore/internal/domain/consumer"
	"lendcore/internal/domain/sentinel"
	"lendcore/internal/event"
	"lendcore/pkg/id"

	"gorm.io/gorm"
)

// FieldCipher is the slice of pkg/cipher this usecase needs.
type FieldCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(blob string) (string, error)
}

// Publisher is the slice of the event relay this usecase needs.
type Publisher interface {
	Publish(ctx context.Context, t event.Type, payload any)
}

type Usecase struct {
	consumers domain.Repository
	cipher    FieldCipher
	relay     Publisher
}

func NewUsecase(consumers domain.Repository, cipher FieldCipher, relay Publisher) *Usecase {
	return &Usecase{consumers: consumers, cipher: cipher, relay: relay}
}

// hashNationalID gives the deterministic digest the uniqueness constraint
// holds over, since ciphertexts of equal plaintexts never collide.
func hashNationalID(nationalID string) string {
	sum := sha256.Sum256([]byte(nationalID))
	return hex.EncodeToString(sum[:])
}

// Onboard encrypts the sensitive fields, persists the consumer, and
// publishes ConsumerOnboarded. Duplicate email or national identifier is
// a Conflict, never a silent overwrite.
func (u *Usecase) Onboard(ctx context.Context, in OnboardInput) (*ConsumerDTO, error) {
	if in.FullName == "" || in.Email == "" || in.NationalID == "" {
		return nil, errors.New("full_name, email and national_id are required")
	}

	c := &domain.Consumer{
		ConsumerID:     id.NewID32(),
		FullName:       in.FullName,
		Email:          in.Email,
		Phone:          in.Phone,
		DateOfBirth:    in.DateOfBirth,
		NationalIDHash: hashNationalID(in.NationalID),
		Status:         domain.StatusActive,
	}
	if err := u.sealInto(c, in); err != nil {
		return nil, err
	}

	if err := u.consumers.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email or national id already registered", sentinel.ErrConflict)
		}
		return nil, err
	}

	u.relay.Publish(ctx, event.TypeConsumerOnboarded, event.ConsumerOnboarded{
		ConsumerID: c.ConsumerID,
		Vendors:    in.Vendors,
	})

	return u.openDTO(c)
}

// Get loads and decrypts a consumer. A blob that no longer authenticates
// aborts the read; partial plaintext is never returned.
func (u *Usecase) Get(ctx context.Context, consumerID string) (*ConsumerDTO, error) {
	c, err := u.consumers.GetByConsumerID(ctx, consumerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: consumer %s", sentinel.ErrNotFound, consumerID)
	}
	if err != nil {
		return nil, err
	}
	return u.openDTO(c)
}

// UpdateProfile applies partial changes, re-encrypting any sensitive
// field that moved and refreshing the national-id digest.
func (u *Usecase) UpdateProfile(ctx context.Context, consumerID string, in UpdateProfileInput) (*ConsumerDTO, error) {
	c, err := u.consumers.GetByConsumerID(ctx, consumerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: consumer %s", sentinel.ErrNotFound, consumerID)
	}
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		c.FullName = *in.FullName
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.DateOfBirth != nil {
		c.DateOfBirth = *in.DateOfBirth
	}

	seal := func(dst *string, plain *string) error {
		if plain == nil {
			return nil
		}
		blob, err := u.cipher.Encrypt(*plain)
		if err != nil {
			return err
		}
		*dst = blob
		return nil
	}
	if in.NationalID != nil {
		if *in.NationalID == "" {
			return nil, errors.New("national_id cannot be cleared")
		}
		c.NationalIDHash = hashNationalID(*in.NationalID)
	}
	if err := seal(&c.EncNationalID, in.NationalID); err != nil {
		return nil, err
	}
	if err := seal(&c.EncDocumentNumber, in.DocumentNumber); err != nil {
		return nil, err
	}
	if err := seal(&c.EncEmployerName, in.EmployerName); err != nil {
		return nil, err
	}
	if err := seal(&c.EncMonthlyIncome, in.MonthlyIncome); err != nil {
		return nil, err
	}
	if err := seal(&c.EncIncomeSource, in.IncomeSource); err != nil {
		return nil, err
	}

	if err := u.consumers.Save(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email or national id already registered", sentinel.ErrConflict)
		}
		return nil, err
	}
	return u.openDTO(c)
}

// Archive flips the consumer to ARCHIVED; consumers are never hard-deleted.
func (u *Usecase) Archive(ctx context.Context, consumerID string) error {
	c, err := u.consumers.GetByConsumerID(ctx, consumerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: consumer %s", sentinel.ErrNotFound, consumerID)
	}
	if err != nil {
		return err
	}
	if c.Status == domain.StatusArchived {
		return nil
	}
	c.Status = domain.StatusArchived
	return u.consumers.Save(ctx, c)
}

func (u *Usecase) sealInto(c *domain.Consumer, in OnboardInput) error {
	var err error
	if c.EncNationalID, err = u.cipher.Encrypt(in.NationalID); err != nil {
		return err
	}
	if c.EncDocumentNumber, err = u.cipher.Encrypt(in.DocumentNumber); err != nil {
		return err
	}
	if c.EncEmployerName, err = u.cipher.Encrypt(in.EmployerName); err != nil {
		return err
	}
	if c.EncMonthlyIncome, err = u.cipher.Encrypt(in.MonthlyIncome); err != nil {
		return err
	}
	if c.EncIncomeSource, err = u.cipher.Encrypt(in.IncomeSource); err != nil {
		return err
	}
	return nil
}

func (u *Usecase) openDTO(c *domain.Consumer) (*ConsumerDTO, error) {
	dto := &ConsumerDTO{
		ConsumerID:  c.ConsumerID,
		FullName:    c.FullName,
		Email:       c.Email,
		Phone:       c.Phone,
		DateOfBirth: c.DateOfBirth,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
	}
	var err error
	if dto.NationalID, err = u.cipher.Decrypt(c.EncNationalID); err != nil {
		return nil, err
	}
	if dto.DocumentNumber, err = u.cipher.Decrypt(c.EncDocumentNumber); err != nil {
		return nil, err
	}
	if dto.EmployerName, err = u.cipher.Decrypt(c.EncEmployerName); err != nil {
		return nil, err
	}
	if dto.MonthlyIncome, err = u.cipher.Decrypt(c.EncMonthlyIncome); err != nil {
		return nil, err
	}
	if dto.IncomeSource, err = u.cipher.Decrypt(c.EncIncomeSource); err != nil {
		return nil, err
	}
	return dto, nil
}
