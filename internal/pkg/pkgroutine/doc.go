// Package pkgroutine runs background work with a concurrency limit.
//
// Manager bounds the number of in-flight goroutines, collects the errors they
// return, and turns panics into errors so Wait can report them.
package pkgroutine
