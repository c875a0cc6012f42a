package summary

import "errors"

// SummarizationError is the only error kind returned by a Summarizer.
//
// Its message is the message of the failure that stopped the run; the
// failure itself stays reachable through errors.Is and errors.As.
type SummarizationError struct {
	msg string
	err error
}

func (e *SummarizationError) Error() string {
	return e.msg
}

func (e *SummarizationError) Unwrap() error {
	return e.err
}

func wrap(err error) error {
	var serr *SummarizationError
	if errors.As(err, &serr) {
		return serr
	}
	return &SummarizationError{msg: err.Error(), err: err}
}
