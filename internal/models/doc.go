// Package models defines the domain models for tipsplit.
//
// # Current Models
//
//   - Receipt: a bill the user confirmed, with the tip and split that were
//     active at the moment of confirmation
//
// Receipts only live for the duration of the process. There is no account,
// group or payer concept; the calculator serves one table at a time.
package models
