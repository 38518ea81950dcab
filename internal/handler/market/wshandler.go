package market

import (
	"daypulse/internal/service"
	"daypulse/internal/session"
	"daypulse/pkg/logger"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

// 快照的websocket推送：客户端连上后按固定周期收到当前股票的最新快照，
// 不做按代码订阅，连接数少的单用户场景全量广播即可

type ClientConn struct {
	Conn *websocket.Conn
	Send chan []byte // 异步发送通道
}

type WsHandler struct {
	svc  *service.SignalService
	sess *session.Session

	mu       sync.RWMutex
	clients  map[*ClientConn]struct{}
	upgrader websocket.Upgrader
}

func NewWsHandler(svc *service.SignalService, sess *session.Session) *WsHandler {
	return &WsHandler{
		svc:     svc,
		sess:    sess,
		clients: make(map[*ClientConn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // 允许跨域
		},
	}
}

// ServeWS 升级连接并托管读写
func (h *WsHandler) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warnf("ws upgrade error: %v", err)
		return
	}
	client := &ClientConn{
		Conn: conn,
		Send: make(chan []byte, 16),
	}
	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, client)
		h.mu.Unlock()
		close(client.Send)
		conn.Close()
	}()

	go client.writePump()
	// 阻塞读取直到客户端断开，收到的消息直接丢弃
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// BroadcastSnapshots 周期性把当前股票的最新快照推给所有连接，
// 放到单独协程里跑
func (h *WsHandler) BroadcastSnapshots(interval time.Duration) {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		snap, ok := h.svc.Latest(h.sess.Active())
		if !ok {
			continue
		}
		data, err := json.Marshal(snap)
		if err != nil {
			continue
		}
		h.mu.RLock()
		for client := range h.clients {
			select {
			case client.Send <- data:
			default: // 写不进去说明客户端太慢，丢弃本帧
			}
		}
		h.mu.RUnlock()
	}
}

func (c *ClientConn) writePump() {
	for data := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}
