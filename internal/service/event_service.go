package service

import (
	"log"

	"notable-server/internal/domain"
	"notable-server/internal/websocket"
)

// EventService fans note mutations out to the owner's connected
// sessions so stale client caches refresh without polling. Delivery is
// best-effort; a broadcast failure never fails the mutation.
type EventService struct {
	manager *websocket.Manager
}

func NewEventService(manager *websocket.Manager) *EventService {
	return &EventService{manager: manager}
}

func (s *EventService) NoteCreated(ownerID string, note *domain.NoteView) {
	s.publish(ownerID, websocket.TypeNoteCreated, websocket.NoteEventPayload{Note: note})
}

func (s *EventService) NoteUpdated(ownerID string, note *domain.NoteView) {
	s.publish(ownerID, websocket.TypeNoteUpdated, websocket.NoteEventPayload{Note: note})
}

func (s *EventService) FavoriteToggled(ownerID string, note *domain.NoteView) {
	s.publish(ownerID, websocket.TypeFavoriteToggled, websocket.NoteEventPayload{Note: note})
}

func (s *EventService) NoteDeleted(ownerID, noteID string) {
	s.publish(ownerID, websocket.TypeNoteDeleted, websocket.NoteDeletePayload{NoteID: noteID})
}

func (s *EventService) publish(ownerID string, msgType websocket.MessageType, payload interface{}) {
	msg, err := websocket.NewMessage(msgType, payload)
	if err != nil {
		log.Printf("failed to build %s event: %v", msgType, err)
		return
	}

	if err := s.manager.BroadcastToUser(ownerID, msg, ""); err != nil {
		log.Printf("failed to broadcast %s event: %v", msgType, err)
	}
}
