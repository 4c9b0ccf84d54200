package models

import "errors"

// Domain errors. Handlers translate these into HTTP statuses and the
// user-facing messages the UI shows; everything here is terminal and
// request-scoped, nothing is retried by the server.
var (
	// ErrNotFound: the caller's own account could not be resolved.
	ErrNotFound = errors.New("customer not found")

	// ErrBeneficiaryNotFound: the payee is unknown and the transfer mode
	// requires a registered receiver.
	ErrBeneficiaryNotFound = errors.New("beneficiary not found")

	// ErrInvalidPIN: the supplied transaction PIN did not verify.
	ErrInvalidPIN = errors.New("invalid pin")

	// ErrInvalidAmount: amount is not positive or exceeds the balance.
	ErrInvalidAmount = errors.New("invalid amount or insufficient balance")

	// ErrInvalidMode: the transfer mode is not a customer rail.
	ErrInvalidMode = errors.New("invalid transfer mode")

	// ErrDuplicateName: signup or admin-create with a name already
	// registered, compared case-insensitively.
	ErrDuplicateName = errors.New("name already registered")

	// ErrMissingFields: a required request field was empty.
	ErrMissingFields = errors.New("missing fields")

	// ErrWrongPassword: login password did not verify.
	ErrWrongPassword = errors.New("wrong password")

	// ErrPersistence: the data file could not be written. The in-memory
	// state is left exactly as it was before the attempted mutation.
	ErrPersistence = errors.New("persistence failure")
)
