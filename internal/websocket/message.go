package websocket

import (
	"encoding/json"
	"time"
)

type MessageType string

const (
	TypeNoteCreated     MessageType = "note_created"
	TypeNoteUpdated     MessageType = "note_updated"
	TypeNoteDeleted     MessageType = "note_deleted"
	TypeFavoriteToggled MessageType = "favorite_toggled"
	TypePing            MessageType = "ping"
	TypePong            MessageType = "pong"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// NoteEventPayload carries the flattened note view for created,
// updated, and favorite-toggled events.
type NoteEventPayload struct {
	Note interface{} `json:"note"`
}

type NoteDeletePayload struct {
	NoteID string `json:"note_id"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	var payloadBytes json.RawMessage
	if payload != nil {
		bytes, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		payloadBytes = bytes
	}

	return &Message{
		Type:      msgType,
		Timestamp: time.Now(),
		Payload:   payloadBytes,
	}, nil
}

func (m *Message) UnmarshalPayload(v interface{}) error {
	if m.Payload == nil {
		return nil
	}
	return json.Unmarshal(m.Payload, v)
}
