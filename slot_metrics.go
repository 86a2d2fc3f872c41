package sharedstore

// SlotMetrics is a Slot decorator that collects metrics.
type SlotMetrics struct {
	slot              Slot
	label             string
	provider          MetricsProvider
	readCounter       Counter
	writeCounter      Counter
	errorCounter      Counter
	writeBytesSummary Summary
}

// NewSlotMetrics wraps slot so that every Read and Write is counted under label.
func NewSlotMetrics(slot Slot, provider MetricsProvider, label string) *SlotMetrics {
	slotMetrics := &SlotMetrics{
		slot:     slot,
		label:    label,
		provider: provider,
	}
	slotMetrics.createMetrics()
	return slotMetrics
}

func (s *SlotMetrics) createMetrics() {
	s.readCounter = s.provider.NewCounter("Slot_Read", "Number of Read() calls", "label")
	s.writeCounter = s.provider.NewCounter("Slot_Write", "Number of Write() calls", "label")
	s.errorCounter = s.provider.NewCounter("Slot_Errors", "Number of failed Read() and Write() calls", "label", "operation")
	s.writeBytesSummary = s.provider.NewSummary("Slot_WriteBytes", "Summary of written content sizes", "label")
}

// Read reads the underlying slot
func (s *SlotMetrics) Read() (string, error) {
	s.readCounter.Inc(s.label)
	content, err := s.slot.Read()
	if err != nil {
		s.errorCounter.Inc(s.label, "read")
	}
	return content, err
}

// Write writes the underlying slot
func (s *SlotMetrics) Write(content string) error {
	s.writeCounter.Inc(s.label)
	s.writeBytesSummary.Observe(float64(len(content)), s.label)
	err := s.slot.Write(content)
	if err != nil {
		s.errorCounter.Inc(s.label, "write")
	}
	return err
}
