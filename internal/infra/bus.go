package infra

// EventType represents the type of pipeline event in the system
type EventType int

const (
	SourceRecordsLoaded EventType = iota
	CustomersAggregated
	CustomersScored
	ReportExported
)

// String returns the string representation of the EventType
func (et EventType) String() string {
	switch et {
	case SourceRecordsLoaded:
		return "SourceRecordsLoaded"
	case CustomersAggregated:
		return "CustomersAggregated"
	case CustomersScored:
		return "CustomersScored"
	case ReportExported:
		return "ReportExported"
	default:
		return "Unknown"
	}
}

// SourceRecordsLoadedEvent is published after the three record sets are read
// from the source store.
type SourceRecordsLoadedEvent struct {
	Customers int
	Orders    int
	Payments  int
}

func (e SourceRecordsLoadedEvent) EventType() EventType { return SourceRecordsLoaded }

// CustomersAggregatedEvent is published after grouping to per-buyer metrics.
type CustomersAggregatedEvent struct {
	Customers int
}

func (e CustomersAggregatedEvent) EventType() EventType { return CustomersAggregated }

// CustomersScoredEvent is published after RFM scores are assigned.
type CustomersScoredEvent struct {
	Customers int
}

func (e CustomersScoredEvent) EventType() EventType { return CustomersScored }

// ReportExportedEvent is published after a report file is written.
type ReportExportedEvent struct {
	Report string
	Path   string
	Rows   int
}

func (e ReportExportedEvent) EventType() EventType { return ReportExported }

type Event interface{ EventType() EventType }
type Handler func(Event)
type Bus struct{ subs map[EventType][]Handler }

func NewBus() *Bus { return &Bus{subs: map[EventType][]Handler{}} }
func (b *Bus) Publish(e Event) {
	for _, h := range b.subs[e.EventType()] {
		h(e)
	}
}
func (b *Bus) Subscribe(evt EventType, h Handler) { b.subs[evt] = append(b.subs[evt], h) }
