package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

type ClientMessage struct {
	Client  *Client
	Message []byte
}

// Manager tracks connected clients per user and fans note events out
// to a user's sessions.
type Manager struct {
	clients        map[string]*Client
	userIndex      map[string]map[string]bool
	clientsMutex   sync.RWMutex
	Register       chan *Client
	Unregister     chan *Client
	HandleMessage  chan *ClientMessage
	maxConnPerUser int
	writeWait      time.Duration
	pongWait       time.Duration
	pingPeriod     time.Duration
}

func NewManager(maxConnPerUser int, writeWait, pongWait, pingPeriod time.Duration) *Manager {
	return &Manager{
		clients:        make(map[string]*Client),
		userIndex:      make(map[string]map[string]bool),
		Register:       make(chan *Client),
		Unregister:     make(chan *Client),
		HandleMessage:  make(chan *ClientMessage),
		maxConnPerUser: maxConnPerUser,
		writeWait:      writeWait,
		pongWait:       pongWait,
		pingPeriod:     pingPeriod,
	}
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.Register:
			m.registerClient(client)

		case client := <-m.Unregister:
			m.unregisterClient(client)

		case clientMsg := <-m.HandleMessage:
			m.processMessage(clientMsg)
		}
	}
}

func (m *Manager) registerClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	if m.userIndex[client.UserID] == nil {
		m.userIndex[client.UserID] = make(map[string]bool)
	}

	if len(m.userIndex[client.UserID]) >= m.maxConnPerUser {
		log.Printf("max connections reached for user %s", client.UserID)
		close(client.Send)
		return
	}

	m.clients[client.ID] = client
	m.userIndex[client.UserID][client.ID] = true

	log.Printf("client registered: %s (user: %s, session: %s)", client.ID, client.UserID, client.SessionID)
}

func (m *Manager) unregisterClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	if _, ok := m.clients[client.ID]; ok {
		delete(m.clients, client.ID)
		delete(m.userIndex[client.UserID], client.ID)

		if len(m.userIndex[client.UserID]) == 0 {
			delete(m.userIndex, client.UserID)
		}

		close(client.Send)
		log.Printf("client unregistered: %s", client.ID)
	}
}

// processMessage handles client-to-server traffic; the only expected
// message is an application-level ping.
func (m *Manager) processMessage(clientMsg *ClientMessage) {
	var msg Message
	if err := json.Unmarshal(clientMsg.Message, &msg); err != nil {
		log.Printf("error unmarshaling message: %v", err)
		return
	}

	switch msg.Type {
	case TypePing:
		pong, err := NewMessage(TypePong, nil)
		if err != nil {
			log.Printf("error building pong: %v", err)
			return
		}
		if err := m.SendToClient(clientMsg.Client.ID, pong); err != nil {
			log.Printf("error sending pong: %v", err)
		}
	default:
		log.Printf("unexpected message type from client: %s", msg.Type)
	}
}

// BroadcastToUser delivers a message to every session of the user
// except excludeSessionID (pass "" to reach them all).
func (m *Manager) BroadcastToUser(userID string, message *Message, excludeSessionID string) error {
	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return err
	}

	clientIDs, exists := m.userIndex[userID]
	if !exists {
		return nil
	}

	for clientID := range clientIDs {
		client := m.clients[clientID]
		if excludeSessionID != "" && client.SessionID == excludeSessionID {
			continue
		}
		select {
		case client.Send <- messageBytes:
		default:
			log.Printf("client %s send buffer full, dropping event", clientID)
		}
	}

	return nil
}

func (m *Manager) SendToClient(clientID string, message *Message) error {
	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()

	client, exists := m.clients[clientID]
	if !exists {
		return nil
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return err
	}

	select {
	case client.Send <- messageBytes:
	default:
		log.Printf("client %s send buffer full", clientID)
	}

	return nil
}

func (m *Manager) UserConnections(userID string) int {
	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()

	if clients, exists := m.userIndex[userID]; exists {
		return len(clients)
	}
	return 0
}
