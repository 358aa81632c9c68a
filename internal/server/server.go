package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/san-kum/algoviz/internal/classify"
	"github.com/san-kum/algoviz/internal/engine"
	"github.com/san-kum/algoviz/internal/frame"
	"github.com/san-kum/algoviz/internal/produce"
	"github.com/san-kum/algoviz/internal/stats"
)

const writeWait = 5 * time.Second

// Server streams playback over websockets. Each connection owns its
// own engine, so clients control their runs independently.
type Server struct {
	logger   *zap.Logger
	registry *produce.Registry
	upgrader websocket.Upgrader
}

func New(logger *zap.Logger) *Server {
	return &Server{
		logger:   logger,
		registry: produce.NewRegistry(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/algorithms", s.handleAlgorithms)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

type algorithmEntry struct {
	Name   string `json:"name"`
	Family string `json:"family"`
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	var entries []algorithmEntry
	for _, name := range s.registry.List() {
		p, err := s.registry.Get(name)
		if err != nil {
			continue
		}
		entries = append(entries, algorithmEntry{Name: name, Family: p.Family().String()})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// clientMessage is the single inbound shape; Type selects which of the
// remaining fields matter.
type clientMessage struct {
	Type      string  `json:"type"`
	Source    string  `json:"source,omitempty"`
	Algorithm string  `json:"algorithm,omitempty"`
	Values    []int   `json:"values,omitempty"`
	Target    *int    `json:"target,omitempty"`
	Graph     [][]int `json:"graph,omitempty"`
	Start     *int    `json:"start,omitempty"`
	Delta     int     `json:"delta,omitempty"`
	Position  int     `json:"position,omitempty"`
	Speed     float64 `json:"speed,omitempty"`
}

type frameMessage struct {
	Type     string      `json:"type"`
	Position int         `json:"position"`
	Total    int         `json:"total"`
	Frame    frame.Frame `json:"frame"`
}

type runStartedMessage struct {
	Type       string        `json:"type"`
	Algorithm  string        `json:"algorithm"`
	Total      int           `json:"total"`
	Complexity string        `json:"complexity,omitempty"`
	Stats      stats.Summary `json:"stats"`
}

type statusMessage struct {
	Type   string `json:"type"`
	Status string `json:"status"`
}

type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// session is one websocket client and its private engine. Writes go
// through a mutex because the engine timer goroutine and the read loop
// both push messages.
type session struct {
	conn   *websocket.Conn
	mu     sync.Mutex
	eng    *engine.Engine
	total  int
	logger *zap.Logger
}

func (c *session) send(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Error("marshal outbound message", zap.Error(err))
		return
	}
	c.mu.Lock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	err = c.conn.WriteMessage(websocket.TextMessage, data)
	c.mu.Unlock()
	if err != nil {
		c.logger.Debug("write failed", zap.Error(err))
	}
}

func (c *session) sendError(msg string) {
	c.send(errorMessage{Type: "error", Error: msg})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", zap.Error(err))
		return
	}

	logger := s.logger.With(zap.String("remote", conn.RemoteAddr().String()))
	c := &session{conn: conn, logger: logger}
	c.eng = engine.New(nil)
	c.eng.AddListener(func(pos int, f frame.Frame) {
		c.send(frameMessage{Type: "frame", Position: pos, Total: c.total, Frame: f})
		if pos == c.total-1 {
			c.send(statusMessage{Type: "status", Status: "done"})
		}
	})

	logger.Info("client connected")
	defer func() {
		c.eng.Stop()
		conn.Close()
		logger.Info("client disconnected")
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("read failed", zap.Error(err))
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.sendError("malformed message")
			continue
		}
		s.dispatch(c, msg)
	}
}

func (s *Server) dispatch(c *session, msg clientMessage) {
	switch msg.Type {
	case "run":
		s.startRun(c, msg)
	case "pause":
		c.eng.Pause()
		c.send(statusMessage{Type: "status", Status: c.eng.Status().String()})
	case "resume":
		c.eng.Play()
		c.send(statusMessage{Type: "status", Status: c.eng.Status().String()})
	case "step":
		if msg.Delta < 0 {
			c.eng.StepBackward()
		} else {
			c.eng.StepForward()
		}
	case "seek":
		c.eng.Seek(msg.Position)
	case "speed":
		c.eng.SetSpeed(msg.Speed)
	case "stop":
		c.eng.Stop()
		c.send(statusMessage{Type: "status", Status: c.eng.Status().String()})
	default:
		c.sendError("unknown message type: " + msg.Type)
	}
}

func (s *Server) startRun(c *session, msg clientMessage) {
	in := produce.Input{Values: msg.Values, Graph: msg.Graph}
	if msg.Target != nil {
		in.Target = *msg.Target
	}
	if msg.Start != nil {
		in.Start = *msg.Start
	}

	name := msg.Algorithm
	complexity := ""
	if name == "" && msg.Source != "" {
		res := classify.Classify(msg.Source)
		name = res.Algorithm
		complexity = res.Complexity
		if len(in.Values) == 0 {
			in.Values = res.Values
		}
		if msg.Target == nil && res.HasTarget {
			in.Target = res.Target
		}
		if in.Graph == nil {
			in.Graph = res.Graph
		}
		if msg.Start == nil && res.HasStart {
			in.Start = res.Start
		}
	}
	if name == "" {
		c.sendError("no algorithm named and no source to classify")
		return
	}

	p, err := s.registry.Get(name)
	if err != nil {
		c.sendError(err.Error())
		return
	}
	if err := produce.ValidateInput(p, in); err != nil {
		c.sendError(err.Error())
		return
	}

	seq := p.Produce(in, nil)
	if err := c.eng.Load(seq); err != nil {
		c.sendError(err.Error())
		return
	}
	c.total = seq.Len()

	summary := stats.Collect(seq)
	c.send(runStartedMessage{
		Type:       "run_started",
		Algorithm:  name,
		Total:      c.total,
		Complexity: complexity,
		Stats:      summary,
	})
	c.send(frameMessage{Type: "frame", Position: 0, Total: c.total, Frame: seq[0]})

	if msg.Speed > 0 {
		c.eng.SetSpeed(msg.Speed)
	}
	c.eng.Play()

	s.logger.Info("run started",
		zap.String("algorithm", name),
		zap.Int("frames", c.total))
}
