package recorder

// NoopRecorder is used when history is disabled.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAction(_ *ActionEvent) error     { return nil }
func (n *NoopRecorder) RecordPrestige(_ *PrestigeEvent) error { return nil }
func (n *NoopRecorder) RecordSnapshot(_ *StatsSnapshot) error { return nil }
func (n *NoopRecorder) Close() error                          { return nil }
