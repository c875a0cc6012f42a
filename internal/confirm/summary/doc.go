// Package summary totals the value of confirmed transactions.
//
// A Summarizer pairs a transaction sequence with a confirmation sequence by
// position, keeps the pairs whose confirmation is positive and folds their
// values into an exact decimal total. Both sequences come from factories that
// are invoked on every call, so a Summarizer can be run repeatedly over
// one-shot streams. Any failure, including a panicking producer or a
// cancelled context, is returned as a *SummarizationError and never together
// with a partial total.
package summary
