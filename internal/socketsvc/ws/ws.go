package ws

import (
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/finpay/finpay-services/internal/comm"
)

// Ws keeps the registry of connected admin dashboard sockets.
type Ws struct {
	connMap sync.Map // socketId -> *websocket.Conn
	writeMu sync.Map // socketId -> *sync.Mutex, gorilla allows one writer at a time
}

func NewWs() *Ws {
	return &Ws{}
}

func (s *Ws) StoreConnection(socketId string, conn *websocket.Conn) {
	s.connMap.Store(socketId, conn)
	s.writeMu.Store(socketId, &sync.Mutex{})
}

func (s *Ws) GetConnection(socketId string) (*websocket.Conn, bool) {
	conn, ok := s.connMap.Load(socketId)
	if !ok {
		return nil, false
	}
	return conn.(*websocket.Conn), true
}

func (s *Ws) HandleDisconnect(socketId string) {
	s.connMap.Delete(socketId)
	s.writeMu.Delete(socketId)
}

// Broadcast pushes a message to every connected admin socket. A failed
// write drops that connection from the registry.
func (s *Ws) Broadcast(m *comm.WSMessage) {
	s.connMap.Range(func(key, value interface{}) bool {
		socketId := key.(string)
		conn := value.(*websocket.Conn)

		mu, ok := s.writeMu.Load(socketId)
		if !ok {
			return true
		}

		mu.(*sync.Mutex).Lock()
		err := conn.WriteJSON(m)
		mu.(*sync.Mutex).Unlock()

		if err != nil {
			log.Warnf("dropping admin socket %s: %v", socketId, err)
			conn.Close()
			s.HandleDisconnect(socketId)
		}
		return true
	})
}

func (s *Ws) ConnectionCount() int {
	count := 0
	s.connMap.Range(func(key, value any) bool {
		count++
		return true
	})
	return count
}
