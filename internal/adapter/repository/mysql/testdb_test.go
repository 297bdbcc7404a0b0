package mysql

import (
	"testing"

	accountDomain "lendcore/internal/domain/account"
	consumerDomain "lendcore/internal/domain/consumer"
	loanappDomain "lendcore/internal/domain/loanapp"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB gives an in-memory sqlite DB with the full schema and the
// same TranslateError behavior as production, so unique violations
// surface as gorm.ErrDuplicatedKey here too.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&consumerDomain.Consumer{},
		&accountDomain.PrincipalAccount{},
		&accountDomain.VendorLinkedAccount{},
		&loanappDomain.LoanApplication{},
		&loanappDomain.LoanApplicationDecision{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
