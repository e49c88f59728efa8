// Package savings provides the types and functions to model a set of
// savings and investment accounts and to project their future value.
//
// The core functionalities include:
//   - Accounts: a named vehicle with a current balance, a monthly
//     contribution and an annual return rate. An account projects its own
//     balance over a number of whole years, compounding monthly.
//   - Ledger Management: an ordered collection of accounts that supports
//     insertion, update by name, human readable summaries and the aggregate
//     projection of all accounts.
//   - Data Persistence: encoding and decoding the ledger to and from a flat
//     CSV file, and exporting or importing it as JSON.
//
// Amounts and rates are exact decimals. Rounding only happens when a value
// is displayed.
//
// This package serves as the foundational logic for the `sav` command-line
// tool.
package savings
