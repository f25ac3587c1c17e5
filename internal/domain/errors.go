package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidPurchase = errors.New("invalid purchase")

type Reason string

const (
	ReasonInvalidAccount      Reason = "InvalidAccount"
	ReasonNoRequests          Reason = "NoRequests"
	ReasonInvalidRequest      Reason = "InvalidRequest"
	ReasonLimitExceeded       Reason = "LimitExceeded"
	ReasonMissingAdult        Reason = "MissingAdult"
	ReasonInfantRatioExceeded Reason = "InfantRatioExceeded"
)

// InvalidPurchaseError is returned for every business rule violation. Only the first
// violated rule is reported.
type InvalidPurchaseError struct {
	Reason Reason
	Detail string
}

func NewInvalidPurchaseError(reason Reason, detail string) *InvalidPurchaseError {
	return &InvalidPurchaseError{Reason: reason, Detail: detail}
}

func (e *InvalidPurchaseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid purchase: %s", e.Reason)
	}

	return fmt.Sprintf("invalid purchase: %s: %s", e.Reason, e.Detail)
}

func (e *InvalidPurchaseError) Is(target error) bool {
	return target == ErrInvalidPurchase
}

// ReasonOf returns the reason carried by err, or false if err is not an
// InvalidPurchaseError.
func ReasonOf(err error) (Reason, bool) {
	var purchaseErr *InvalidPurchaseError
	if !errors.As(err, &purchaseErr) {
		return "", false
	}

	return purchaseErr.Reason, true
}
