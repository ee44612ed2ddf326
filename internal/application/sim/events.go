package sim

import "github.com/younwookim/keygate/internal/domain/entity"

// EventKind identifies a notification raised by the driver
type EventKind int

const (
	EventDefeated EventKind = iota
	EventLevelComplete
	EventGameCompleted
	EventLevelAdvanced
	EventKeyAnswerIncorrect
	EventKeyCollected
	EventPlayerHurt
	EventEnemyDefeated
	EventRespawned
)

// String returns the event name used in logs
func (k EventKind) String() string {
	switch k {
	case EventDefeated:
		return "defeated"
	case EventLevelComplete:
		return "levelComplete"
	case EventGameCompleted:
		return "gameCompleted"
	case EventLevelAdvanced:
		return "levelAdvanced"
	case EventKeyAnswerIncorrect:
		return "keyAnswerIncorrect"
	case EventKeyCollected:
		return "keyCollected"
	case EventPlayerHurt:
		return "playerHurt"
	case EventEnemyDefeated:
		return "enemyDefeated"
	case EventRespawned:
		return "respawned"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification.
// Level is the level index the event refers to; Enemy is set for enemy events.
type Event struct {
	Kind  EventKind
	Level int
	Enemy entity.EntityID
}

// Notifier receives driver events
type Notifier interface {
	Notify(ev Event)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(ev Event)

// Notify calls f(ev)
func (f NotifierFunc) Notify(ev Event) {
	f(ev)
}

// NopNotifier drops every event
type NopNotifier struct{}

// Notify does nothing
func (NopNotifier) Notify(Event) {}

// QuizRequest is the single outstanding question handed to the UI.
// The UI answers it through Driver.ResolveQuiz, AnswerQuiz or CancelQuiz
// quoting the same ID.
type QuizRequest struct {
	ID     uint64
	Prompt string
}

// QuizPresenter shows a question to the player
type QuizPresenter interface {
	PresentQuestion(req QuizRequest)
}

// QuizPresenterFunc adapts a function to QuizPresenter
type QuizPresenterFunc func(req QuizRequest)

// PresentQuestion calls f(req)
func (f QuizPresenterFunc) PresentQuestion(req QuizRequest) {
	f(req)
}
