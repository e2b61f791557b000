package provisioning

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Observer is the structured diagnostics channel for a pipeline run.
type Observer interface {
	// Printf emits an unstructured log line.
	Printf(format string, v ...interface{})

	// Event emits a structured event.
	Event(event Event)

	// WithFields returns a new Observer carrying additional context fields.
	WithFields(fields map[string]string) Observer
}

// Event is a structured provisioning event.
type Event struct {
	Type      EventType
	Stage     Stage
	Message   string
	Resource  string
	Timestamp time.Time
	Fields    map[string]string
}

// EventType classifies provisioning events.
type EventType string

const (
	// EventStageStarted indicates a pipeline stage has started.
	EventStageStarted EventType = "stage.started"
	// EventStageCompleted indicates a pipeline stage completed successfully.
	EventStageCompleted EventType = "stage.completed"
	// EventStageFailed indicates a pipeline stage failed fatally.
	EventStageFailed EventType = "stage.failed"

	// EventResourceCreating indicates a platform resource is being created.
	EventResourceCreating EventType = "resource.creating"
	// EventResourceCreated indicates a platform resource was created.
	EventResourceCreated EventType = "resource.created"
	// EventResourceExists indicates the resource was already present.
	EventResourceExists EventType = "resource.exists"

	// EventWarning indicates a non-fatal, best-effort step failure.
	EventWarning EventType = "warning"
)

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct {
	contextFields map[string]string
}

// NewConsoleObserver creates a console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{contextFields: make(map[string]string)}
}

// Printf implements Observer.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Fields == nil {
		event.Fields = make(map[string]string)
	}
	for k, v := range o.contextFields {
		if _, exists := event.Fields[k]; !exists {
			event.Fields[k] = v
		}
	}
	log.Print(o.formatEvent(event))
}

// WithFields implements Observer.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	merged := make(map[string]string, len(o.contextFields)+len(fields))
	for k, v := range o.contextFields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &ConsoleObserver{contextFields: merged}
}

func (o *ConsoleObserver) formatEvent(event Event) string {
	parts := []string{string(event.Type)}
	if event.Stage != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Stage))
	}
	if event.Resource != "" {
		parts = append(parts, fmt.Sprintf("resource=%s", event.Resource))
	}
	parts = append(parts, event.Message)
	if len(event.Fields) > 0 {
		var fieldParts []string
		for k, v := range event.Fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, v))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(fieldParts, ", ")))
	}
	return strings.Join(parts, " ")
}

type discardObserver struct{}

// DiscardObserver returns an Observer that drops everything. Useful when
// the caller does its own request logging.
func DiscardObserver() Observer { return discardObserver{} }

func (discardObserver) Printf(string, ...interface{})           {}
func (discardObserver) Event(Event)                             {}
func (o discardObserver) WithFields(map[string]string) Observer { return o }

// logStageStart logs a stage start event.
func logStageStart(observer Observer, stage Stage) {
	observer.Event(Event{Type: EventStageStarted, Stage: stage, Message: "starting"})
}

// logStageComplete logs a stage completion event.
func logStageComplete(observer Observer, stage Stage, duration time.Duration) {
	observer.Event(Event{
		Type:    EventStageCompleted,
		Stage:   stage,
		Message: fmt.Sprintf("completed in %v", duration.Round(time.Millisecond)),
	})
}

// logStageFailed logs a fatal stage failure event.
func logStageFailed(observer Observer, stage Stage, err error) {
	observer.Event(Event{
		Type:    EventStageFailed,
		Stage:   stage,
		Message: fmt.Sprintf("failed: %v", err),
	})
}
