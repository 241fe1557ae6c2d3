package notification

import (
	"context"
	"fmt"
	"log"

	authrepo "fizzy-backend/internal/auth/repository"
	boarddomain "fizzy-backend/internal/board/domain"
	"fizzy-backend/pkg/fcm"
	"fizzy-backend/pkg/sse"
)

// Service consumes lifecycle events and fans them out: a notification row for
// the recipient, an SSE event for connected clients, and an FCM push when a
// client is available. The lifecycle hands events off and moves on; nothing
// here can fail a transition.
type Service struct {
	repo       Repository
	sseManager *sse.Manager
	fcmRepo    authrepo.FCMTokenRepository
	fcmClient  *fcm.Client

	queue    chan boarddomain.Event
	stopChan chan struct{}
}

// NewService creates a new notification service. fcmClient may be nil; push
// delivery is then skipped.
func NewService(repo Repository, sseManager *sse.Manager, fcmRepo authrepo.FCMTokenRepository, fcmClient *fcm.Client) *Service {
	return &Service{
		repo:       repo,
		sseManager: sseManager,
		fcmRepo:    fcmRepo,
		fcmClient:  fcmClient,
		queue:      make(chan boarddomain.Event, 256),
		stopChan:   make(chan struct{}),
	}
}

// Dispatch enqueues events for delivery. Never blocks the caller; when the
// queue is full events are dropped and logged.
func (s *Service) Dispatch(events []boarddomain.Event) {
	for _, event := range events {
		select {
		case s.queue <- event:
		default:
			log.Printf("[Notification] Queue full, dropping %s event for card %s", event.Type, event.CardID)
		}
	}
}

// Start begins the delivery loop
func (s *Service) Start() {
	go func() {
		for {
			select {
			case event := <-s.queue:
				s.deliver(event)
			case <-s.stopChan:
				log.Println("[Notification] Service stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the delivery loop
func (s *Service) Stop() {
	close(s.stopChan)
}

func (s *Service) deliver(event boarddomain.Event) {
	// The card's creator is the recipient; don't notify people about their
	// own actions
	if event.CreatorID == "" || event.CreatorID == event.ActorID {
		return
	}

	body := bodyForEvent(event)

	n := &Notification{
		AccountID: event.AccountID,
		UserID:    event.CreatorID,
		ActorID:   event.ActorID,
		CardID:    event.CardID,
		Kind:      string(event.Type),
		Body:      body,
	}
	if err := s.repo.Create(n); err != nil {
		log.Printf("[Notification] Failed to store notification for card %s: %v", event.CardID, err)
		return
	}

	s.sseManager.SendToUser(event.CreatorID, sse.Event{
		Type: string(event.Type),
		Data: n,
	})

	s.push(event, body)
}

func (s *Service) push(event boarddomain.Event, body string) {
	if s.fcmClient == nil {
		return
	}

	tokens, err := s.fcmRepo.GetTokensByUserID(event.CreatorID)
	if err != nil {
		log.Printf("[Notification] Error getting FCM tokens for user %s: %v", event.CreatorID, err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	var tokenStrings []string
	for _, t := range tokens {
		tokenStrings = append(tokenStrings, t.Token)
	}

	failedTokens, err := s.fcmClient.SendToDevices(context.Background(), tokenStrings, fcm.NotificationData{
		Title: event.CardTitle,
		Body:  body,
		Data: map[string]string{
			"type":    string(event.Type),
			"card_id": event.CardID,
		},
	})
	if err != nil {
		log.Printf("[Notification] Error sending push for card %s: %v", event.CardID, err)
		return
	}

	// Cleanup failed tokens
	for _, token := range failedTokens {
		s.fcmRepo.DeleteToken(token)
	}
}

func bodyForEvent(event boarddomain.Event) string {
	switch event.Type {
	case boarddomain.EventCardTriaged:
		return fmt.Sprintf("%q was %s", event.CardTitle, event.Detail)
	case boarddomain.EventCardSentToTriage:
		return fmt.Sprintf("%q was sent back to triage", event.CardTitle)
	case boarddomain.EventCardPostponed:
		return fmt.Sprintf("%q was postponed", event.CardTitle)
	case boarddomain.EventCardClosed:
		return fmt.Sprintf("%q was closed", event.CardTitle)
	case boarddomain.EventCardReopened:
		return fmt.Sprintf("%q was reopened", event.CardTitle)
	case boarddomain.EventTimeLogged:
		return event.Detail
	default:
		return fmt.Sprintf("%q was updated", event.CardTitle)
	}
}
