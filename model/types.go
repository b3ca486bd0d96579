package model

import (
	"errors"
	"fmt"
)

// ErrEmptyCode is returned by Validate when a product has no code.
var ErrEmptyCode = errors.New("product code must not be empty")

// Product represents a full catalog record.
//
// Code is the user-facing stable identifier; the hash table keys every
// operation on it. The remaining fields are opaque payload as far as the
// table is concerned.
type Product struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description,omitempty"`
}

// String returns a one-line representation of the product.
func (p Product) String() string {
	return fmt.Sprintf("[%s] %s - %.2f (qty: %d)", p.Code, p.Name, p.Price, p.Quantity)
}

// Validate checks the fields a front end should reject before handing the
// product to the table. The table itself treats the code as an ordinary
// string and performs no validation of its own.
func (p Product) Validate() error {
	if p.Code == "" {
		return ErrEmptyCode
	}
	return nil
}
