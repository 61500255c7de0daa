// Package finbook turns loosely structured brokerage ledger exports into a
// deduplicated, chronologically ordered book of cash-flow records, and
// computes the money-weighted annualized rate of return (XIRR) of an account.
//
// The package is a pure computation library: it performs no I/O of its own.
// Callers feed it raw ledger rows and a snapshot of already-recorded records,
// and get back structured decisions (duplicate or unique) and computed
// metrics. Persistence of the book and acquisition of ledger files belong to
// the surrounding application; the fb command in this repository is one such
// application.
//
// The processing pipeline is strictly left to right:
//
//	raw rows → fund transactions → deduplicated set → cash-flow series → rate of return
//
// See Normalizer, Reconcile, CashFlows and SolveXIRR for the four stages.
package finbook
