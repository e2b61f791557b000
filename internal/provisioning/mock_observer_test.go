package provisioning

import (
	"fmt"
	"sync"
)

// MockObserver records events for assertions.
type MockObserver struct {
	mu     sync.Mutex
	events []Event
	lines  []string
	fields map[string]string
}

func NewMockObserver() *MockObserver {
	return &MockObserver{fields: make(map[string]string)}
}

func (o *MockObserver) Printf(format string, v ...interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = append(o.lines, fmt.Sprintf(format, v...))
}

func (o *MockObserver) Event(event Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *MockObserver) WithFields(fields map[string]string) Observer {
	// Shares the event sink so tests observe everything.
	return o
}

func (o *MockObserver) Events() []Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Event(nil), o.events...)
}

func (o *MockObserver) HasEvent(t EventType) bool {
	for _, e := range o.Events() {
		if e.Type == t {
			return true
		}
	}
	return false
}
