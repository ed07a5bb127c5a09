package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind classifies a failure raised along the wallet paths.
type Kind int

const (
	KindUnclassified Kind = iota
	KindNotFound
	KindInsufficientFunds
	KindInvalidOperationType
	KindLockConflict
	KindValidation
	KindInvalidPayload
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInsufficientFunds:
		return "insufficient funds"
	case KindInvalidOperationType:
		return "invalid operation type"
	case KindLockConflict:
		return "lock conflict"
	case KindValidation:
		return "validation failed"
	case KindInvalidPayload:
		return "invalid payload"
	case KindStorage:
		return "storage failure"
	default:
		return "unclassified"
	}
}

// Error is a domain failure tagged with its Kind.
// Message is safe to show to API clients.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// Sentinels, one per kind. errors.Is(err, ErrNotFound) matches any NotFound failure.
var (
	ErrNotFound             = &Error{Kind: KindNotFound}
	ErrInsufficientFunds    = &Error{Kind: KindInsufficientFunds}
	ErrInvalidOperationType = &Error{Kind: KindInvalidOperationType}
	ErrLockConflict         = &Error{Kind: KindLockConflict}
	ErrValidation           = &Error{Kind: KindValidation}
	ErrInvalidPayload       = &Error{Kind: KindInvalidPayload}
	ErrStorage              = &Error{Kind: KindStorage}
)

const (
	lockConflictMessage   = "resource is busy, retry the request later"
	invalidPayloadMessage = "invalid JSON payload"
	storageMessage        = "failed to save data"
)

// EntityType names a persisted entity in user-facing messages.
type EntityType string

const EntityWallet EntityType = "Wallet"

func NewNotFoundError(entity EntityType, id uuid.UUID) error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s with id %s does not exist", entity, id),
	}
}

func NewInsufficientFundsError(walletID uuid.UUID, amount decimal.Decimal) error {
	return &Error{
		Kind:    KindInsufficientFunds,
		Message: fmt.Sprintf("insufficient funds in wallet %s to withdraw %s", walletID, amount.StringFixed(2)),
	}
}

func NewInvalidOperationTypeError(op OperationType) error {
	return &Error{
		Kind:    KindInvalidOperationType,
		Message: fmt.Sprintf("unknown operation type: %q", string(op)),
	}
}

func NewLockConflictError(cause error) error {
	return &Error{Kind: KindLockConflict, Message: lockConflictMessage, Err: cause}
}

func NewStorageError(cause error) error {
	return &Error{Kind: KindStorage, Message: storageMessage, Err: cause}
}

func NewInvalidPayloadError(cause error) error {
	return &Error{Kind: KindInvalidPayload, Message: invalidPayloadMessage, Err: cause}
}

// NewValidationError builds a validation failure from per-field messages.
// The message lists fields in name order.
func NewValidationError(fields map[string][]string) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(fields[name], ", "))
	}

	return &Error{
		Kind:    KindValidation,
		Message: strings.Join(parts, "; "),
		Fields:  fields,
	}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnclassified
}

// AsError extracts the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
