package handler

import (
	"log"
	"net/http"

	"notable-server/internal/websocket"
	"notable-server/pkg/jwt"

	"github.com/google/uuid"
	ws "github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	manager   *websocket.Manager
	jwtSecret string
	upgrader  ws.Upgrader
}

func NewWebSocketHandler(manager *websocket.Manager, jwtSecret string) *WebSocketHandler {
	return &WebSocketHandler{
		manager:   manager,
		jwtSecret: jwtSecret,
		upgrader: ws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *WebSocketHandler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		token = r.Header.Get("Authorization")
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}
	}

	if token == "" {
		http.Error(w, "missing authorization token", http.StatusUnauthorized)
		return
	}

	claims, err := jwt.ValidateToken(token, h.jwtSecret)
	if err != nil {
		log.Printf("websocket token validation failed: %v", err)
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		sessionID = "default"
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := websocket.NewClient(uuid.New().String(), claims.UserID, sessionID, conn, h.manager)

	h.manager.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
