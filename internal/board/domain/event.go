package domain

import "time"

// EventType identifies a lifecycle fact emitted by a card transition
type EventType string

const (
	EventCardPublished    EventType = "card_published"
	EventCardTriaged      EventType = "card_triaged"
	EventCardSentToTriage EventType = "card_sent_back_to_triage"
	EventCardPostponed    EventType = "card_postponed"
	EventCardClosed       EventType = "card_closed"
	EventCardReopened     EventType = "card_reopened"
	EventTimeLogged       EventType = "time_logged"
)

// Event is emitted by lifecycle transitions and consumed by collaborators
// (notification dispatch, activity feeds). The lifecycle never waits on a
// consumer; events describe what already happened.
type Event struct {
	Type      EventType `json:"type"`
	AccountID string    `json:"account_id"`
	BoardID   string    `json:"board_id"`
	CardID    string    `json:"card_id"`
	CardTitle string    `json:"card_title"`
	// CreatorID is the card's creator, the default notification recipient
	CreatorID string    `json:"creator_id"`
	ActorID   string    `json:"actor_id"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
