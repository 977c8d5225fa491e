package types

// Attribute is one key/value tag of an Event.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func NewAttribute(k, v string) Attribute {
	return Attribute{Key: k, Value: v}
}

// Event is a typed bundle of attributes emitted while handling a message.
type Event struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes"`
}

func NewEvent(ty string, attrs ...Attribute) Event {
	return Event{Type: ty, Attributes: attrs}
}

type Events []Event

// AppendEvent adds an Event to a slice of events.
func (e Events) AppendEvent(event Event) Events {
	return append(e, event)
}

// EventManager collects the events emitted during one operation. A
// fresh manager is installed per message so aborted operations leak no
// events.
type EventManager struct {
	events Events
}

func NewEventManager() *EventManager {
	return &EventManager{}
}

func (em *EventManager) Events() Events {
	return em.events
}

func (em *EventManager) EmitEvent(event Event) {
	em.events = em.events.AppendEvent(event)
}

func (em *EventManager) EmitEvents(events Events) {
	em.events = append(em.events, events...)
}
