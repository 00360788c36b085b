package recorder

import (
	"errors"

	"goldboard/internal/model"
)

// MultiRecorder fans a batch out to several sinks. Every sink sees every
// batch; errors are joined rather than short-circuiting so one failing sink
// doesn't starve the others.
type MultiRecorder struct {
	sinks []Recorder
}

func NewMultiRecorder(sinks ...Recorder) *MultiRecorder {
	return &MultiRecorder{sinks: sinks}
}

func (m *MultiRecorder) Record(records []model.PriceRecord) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Record(records); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiRecorder) Close() error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
