package engine

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"

	"github.com/ohalloran/klondike/protocol"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// NewID constructs a client ID
func NewID() string {
	return uuid.NewV4().String()
}

// Client represents the UI collaborator at the other end of the boundary
type Client interface {
	ID() string
	Name() string
	Send(msg protocol.OutboundMessage) error
}

// WSClient is a client connected over a websocket
type WSClient struct {
	id     string
	name   string
	conn   *websocket.Conn
	sendCh chan []byte
	ge     GameEngine
}

// NewWSClient constructs a client and starts its read and write pumps
func NewWSClient(id, name string, conn *websocket.Conn, ge GameEngine) *WSClient {
	client := &WSClient{
		id:     id,
		name:   name,
		conn:   conn,
		sendCh: make(chan []byte, 16),
		ge:     ge,
	}

	go client.writePump()
	go client.readPump()

	return client
}

func (c *WSClient) ID() string {
	return c.id
}

func (c *WSClient) Name() string {
	return c.name
}

// Send marshals a message and queues it for the write pump
func (c *WSClient) Send(msg protocol.OutboundMessage) error {
	bytes, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	c.sendCh <- bytes
	return nil
}

// readPump relays inbound messages from the websocket to the engine loop
func (c *WSClient) readPump() {
	defer c.conn.Close()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, bytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("unexpected websocket close: %v", err)
			}
			return
		}

		var msg protocol.InboundMessage
		if err := json.Unmarshal(bytes, &msg); err != nil {
			log.Printf("could not parse inbound message: %v", err)
			continue
		}
		msg.PlayerID = c.id

		c.ge.Receive(msg)
	}
}

// writePump relays outbound messages from the engine to the websocket
func (c *WSClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case bytes, ok := <-c.sendCh:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, bytes); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
