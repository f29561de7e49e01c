package realtime

import (
	"sync"
)

// Hub tracks feed connections and the recipe rooms they watch. It keeps one
// active socket per user and fans events out to everyone subscribed to the
// recipe they happened on.
type Hub struct {
	mu           sync.RWMutex
	sessions     map[string]*Connection            // sessionID -> connection
	userSessions map[string]string                 // userID -> sessionID
	rooms        map[string]map[string]*Connection // recipeID -> sessionID -> connection
	sessionRooms map[string]map[string]struct{}    // sessionID -> set of recipeIDs
}

// NewHub constructs an initialized Hub.
func NewHub() *Hub {
	return &Hub{
		sessions:     make(map[string]*Connection),
		userSessions: make(map[string]string),
		rooms:        make(map[string]map[string]*Connection),
		sessionRooms: make(map[string]map[string]struct{}),
	}
}

// Attach registers a connection for the given user and starts its write
// loop. An earlier session of the same user is swapped out and closed.
func (h *Hub) Attach(conn *Connection) {
	var previous *Connection

	h.mu.Lock()
	if existingID, ok := h.userSessions[conn.UserID]; ok {
		if existing := h.sessions[existingID]; existing != nil {
			previous = existing
			h.detachLocked(existingID)
		}
	}

	h.sessions[conn.ID] = conn
	h.userSessions[conn.UserID] = conn.ID
	h.sessionRooms[conn.ID] = make(map[string]struct{})
	h.mu.Unlock()

	conn.Start()

	if previous != nil {
		previous.Close(4001, "session replaced")
	}
}

// Detach removes a connection if it is still tracked.
func (h *Hub) Detach(conn *Connection) {
	h.mu.Lock()
	h.detachLocked(conn.ID)
	h.mu.Unlock()
}

// Subscribe adds the connection to the room of the given recipe.
func (h *Hub) Subscribe(recipeID string, conn *Connection) {
	h.mu.Lock()
	if _, ok := h.sessions[conn.ID]; !ok {
		h.mu.Unlock()
		return
	}

	room := h.rooms[recipeID]
	if room == nil {
		room = make(map[string]*Connection)
		h.rooms[recipeID] = room
	}
	room[conn.ID] = conn

	memberships := h.sessionRooms[conn.ID]
	if memberships == nil {
		memberships = make(map[string]struct{})
		h.sessionRooms[conn.ID] = memberships
	}
	memberships[recipeID] = struct{}{}
	h.mu.Unlock()
}

// Unsubscribe removes the connection from the room of the given recipe.
func (h *Hub) Unsubscribe(recipeID string, conn *Connection) {
	h.mu.Lock()
	h.unsubscribeLocked(recipeID, conn.ID)
	h.mu.Unlock()
}

// Broadcast writes payload to every watcher of the recipe, skipping the
// user who caused the event. It returns the number of deliveries.
func (h *Hub) Broadcast(recipeID string, payload []byte, excludeUserID string) int {
	h.mu.RLock()
	room := h.rooms[recipeID]
	if len(room) == 0 {
		h.mu.RUnlock()
		return 0
	}

	delivered := 0
	for _, conn := range room {
		if excludeUserID != "" && conn.UserID == excludeUserID {
			continue
		}
		if err := conn.Send(payload); err == nil {
			delivered++
		}
	}
	h.mu.RUnlock()
	return delivered
}

// Close terminates all tracked connections and clears hub state.
func (h *Hub) Close() {
	h.mu.Lock()
	sessions := make([]*Connection, 0, len(h.sessions))
	for _, conn := range h.sessions {
		sessions = append(sessions, conn)
	}
	h.sessions = make(map[string]*Connection)
	h.userSessions = make(map[string]string)
	h.rooms = make(map[string]map[string]*Connection)
	h.sessionRooms = make(map[string]map[string]struct{})
	h.mu.Unlock()

	for _, conn := range sessions {
		conn.Close(1001, "hub shutdown")
	}
}

func (h *Hub) detachLocked(sessionID string) {
	conn, ok := h.sessions[sessionID]
	if !ok {
		return
	}
	delete(h.sessions, sessionID)

	if current, ok := h.userSessions[conn.UserID]; ok && current == sessionID {
		delete(h.userSessions, conn.UserID)
	}

	for roomID := range h.sessionRooms[sessionID] {
		h.unsubscribeLocked(roomID, sessionID)
	}
	delete(h.sessionRooms, sessionID)
}

func (h *Hub) unsubscribeLocked(recipeID string, sessionID string) {
	if sessionID == "" {
		return
	}
	room := h.rooms[recipeID]
	if room == nil {
		return
	}
	delete(room, sessionID)
	if len(room) == 0 {
		delete(h.rooms, recipeID)
	}
	if memberships, ok := h.sessionRooms[sessionID]; ok {
		delete(memberships, recipeID)
		if len(memberships) == 0 {
			delete(h.sessionRooms, sessionID)
		}
	}
}
