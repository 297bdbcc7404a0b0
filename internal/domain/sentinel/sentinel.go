package sentinel

import "errors"

// Sentinel errors shared across usecases. Repositories return raw storage
// errors; usecases translate them into these so the HTTP adapter can map
// outcomes without knowing about gorm.
//
// - ErrNotFound: referenced entity absent
// - ErrConflict: uniqueness or state-machine violation
// - ErrCryptoFailure: key/tag/format failure in the field cipher
// - ErrIntegrity: idempotent-create reconciliation found neither a row
//   nor a winner; indicates a store-level anomaly
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrCryptoFailure = errors.New("crypto failure")
	ErrIntegrity     = errors.New("integrity error")
)
