// Package model defines the shared value types of the product catalog.
//
//   - Product: one catalog record, keyed by its product code
//
// The hash table and the persistence layer both operate on these types;
// neither owns them.
package model
