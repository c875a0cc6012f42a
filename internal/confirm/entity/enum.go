package entity

type SummaryStatus string

const (
	SummaryStatusQueued     SummaryStatus = "QUEUED"
	SummaryStatusProcessing SummaryStatus = "PROCESSING"
	SummaryStatusDone       SummaryStatus = "DONE"
	SummaryStatusFailed     SummaryStatus = "FAILED"
)

// Settled reports whether a run has produced its single outcome.
func (s SummaryStatus) Settled() bool {
	return s == SummaryStatusDone || s == SummaryStatusFailed
}
