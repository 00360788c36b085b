package recorder

import "goldboard/internal/model"

// NoopRecorder is a no-op implementation used when no sink is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) Record(_ []model.PriceRecord) error { return nil }
func (n *NoopRecorder) Close() error                       { return nil }
