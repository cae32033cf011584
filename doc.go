// Package kharcha provides the core types and engines for a local-first
// personal expense tracker. All balances and reports are derived by folding
// over the full transaction log, so the log is the single source of truth
// and nothing is ever cached or snapshotted.
//
// The core functionalities include:
//   - Ledger Management: Recording expenses, incomes, and transfers against
//     user-defined accounts and spending categories, with free-form tags.
//   - Balance Engine: Recomputing every account balance from its initial
//     balance plus the complete history of movements touching it.
//   - Aggregation Engine: Filtering the log by period, type, account, or tag
//     and grouping the result by category or by tag, including monthly
//     budget usage against category caps.
//   - Reconciliation: Back-computing an account's initial balance when the
//     user asserts its current balance directly.
//   - Data Persistence: Storing each collection as an independent JSON value
//     in a small key-value store, tolerating per-key corruption.
//
// This package serves as the foundational logic for the `kha` command-line
// tool.
package kharcha
