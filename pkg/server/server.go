// Package server offers interactive sessions over a websocket.
//
// Each connection owns one shell.Session. Clients send intents and
// receive the vertices of the polygon to display.
package server

import (
	"bytes"
	"image/png"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/akeil/affinetool"
	"github.com/akeil/affinetool/internal/logging"
	"github.com/akeil/affinetool/pkg/render"
	"github.com/akeil/affinetool/pkg/shell"
)

const writeTimeout = 5 * time.Second

// Request is sent by the client to trigger an intent.
type Request struct {
	Intent string `json:"intent"`
}

// Response tells the client what to display.
type Response struct {
	Session  string             `json:"session"`
	Intent   string             `json:"intent,omitempty"`
	Vertices affinetool.Polygon `json:"vertices,omitempty"`
	Error    string             `json:"error,omitempty"`
}

// Server serves the session page, the websocket endpoint
// and single rendered images.
type Server struct {
	polygon  affinetool.Polygon
	ctx      *render.Context
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

// New creates a server for the given polygon.
// A nil polygon selects the canonical polygon.
func New(p affinetool.Polygon, c *render.Context) *Server {
	if p == nil {
		p = affinetool.Canonical()
	}
	if c == nil {
		c = render.DefaultContext()
	}

	s := &Server{
		polygon: p,
		ctx:     c,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.index)
	s.mux.HandleFunc("/ws", s.session)
	s.mux.HandleFunc("/render.png", s.renderPNG)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

// renderPNG renders the polygon for the intent in the "intent" query
// parameter, reset if none is given.
func (s *Server) renderPNG(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("intent")
	i := affinetool.Reset
	if name != "" {
		var err error
		i, err = affinetool.ParseIntent(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	target := render.NewImageTarget(s.ctx, "")
	sess, err := shell.NewSession(s.polygon, target)
	if err == nil {
		err = sess.Handle(i)
	}
	if err != nil {
		logging.Error("Failed to render %v: %v", i, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	err = png.Encode(&buf, target.Image())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

// session runs one interactive session for the duration of the connection.
//
// Requests are handled one after the other by the read loop.
func (s *Server) session(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warning("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	id := uuid.New().String()
	logging.Info("Session %v started from %v", id, r.RemoteAddr)
	defer logging.Info("Session %v ended", id)

	target := &wsTarget{conn: conn, session: id, intent: affinetool.Reset}
	sess, err := shell.NewSession(s.polygon, target)
	if err != nil {
		logging.Error("Session %v: %v", id, err)
		return
	}

	for {
		var req Request
		err = conn.ReadJSON(&req)
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Warning("Session %v: read failed: %v", id, err)
			}
			return
		}

		i, err := affinetool.ParseIntent(req.Intent)
		if err != nil {
			err = target.send(Response{Session: id, Error: err.Error()})
		} else {
			target.intent = i
			err = sess.Handle(i)
		}
		if err != nil {
			logging.Warning("Session %v: %v", id, err)
			return
		}
	}
}

// wsTarget sends the displayed polygon to the client on every Flush.
type wsTarget struct {
	conn    *websocket.Conn
	session string
	intent  affinetool.Intent
	shape   affinetool.Polygon
}

func (t *wsTarget) ClearAndAdd(p affinetool.Polygon) error {
	t.shape = p.Copy()
	return nil
}

func (t *wsTarget) Flush() error {
	return t.send(Response{
		Session:  t.session,
		Intent:   t.intent.String(),
		Vertices: t.shape,
	})
}

func (t *wsTarget) send(res Response) error {
	t.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return t.conn.WriteJSON(res)
}
