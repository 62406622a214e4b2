// Package report turns already-fetched practice sessions into the statistics
// and tier-based feedback shown on practice reports.
//
// The pipeline is FilterAnswered -> Aggregate -> Classify -> Present. Every
// function here is pure and safe for concurrent use.
package report
