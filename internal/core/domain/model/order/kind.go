package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Kind discriminates catalog orders from bespoke custom design orders.
// Custom orders carry design metadata, pass a design-approval gate before
// payment verification, and keep a mirrored fulfillment record in the shared
// delivery subsystem.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindCatalog is an order placed from the product catalog.
	KindCatalog

	// KindCustom is an order originating from a bespoke design submission.
	KindCustom
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "unknown",
		KindCatalog: "catalog",
		KindCustom:  "custom",
	}
}

// KindFromString parses an order kind from its persisted or API form.
func KindFromString(s string) (Kind, error) {
	for kind, name := range getKindStrings() {
		if kind != KindUnknown && name == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind",
		fmt.Errorf("%q is not a valid order kind", s))
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Validate checks the kind is one of the defined values.
func (k Kind) Validate() error {
	if k != KindCatalog && k != KindCustom {
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%d is not a valid order kind", k))
	}
	return nil
}
