package web

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/folio/internal/gallery"
)

// checkOrigin accepts same-host pages, clients that send no Origin, and
// origins matching AllowedOrigins.
func (a *App) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, pattern := range a.opts.AllowedOrigins {
		if pattern == "*" {
			return true
		}
		if ok, _ := doublestar.Match(strings.ToLower(pattern), strings.ToLower(origin)); ok {
			return true
		}
	}
	return false
}

// liveRequest is one input event from the browser.
type liveRequest struct {
	Type  string `json:"type"` // open, key, next, prev, close, image
	ID    string `json:"id,omitempty"`
	Key   string `json:"key,omitempty"`
	Index *int   `json:"index,omitempty"`
}

// liveResponse is either the re-rendered modal or an error.
type liveResponse struct {
	Type  string `json:"type"` // render or error
	Open  bool   `json:"open"`
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}

func (a *App) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	header := http.Header{}
	visitor := visitorID(&headerRecorder{header: header}, r)

	conn, err := a.upgrader.Upgrade(w, r, header)
	if err != nil {
		log.Printf("web: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("web: websocket read: %v", err)
			}
			return
		}

		var req liveRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			a.sendError(conn, "invalid message format")
			continue
		}

		fn, problem := liveTransition(req)
		if problem != "" {
			a.sendError(conn, problem)
			continue
		}

		view, _ := a.sessions.Apply(visitor, fn)
		a.sendRender(conn, view)
	}
}

// liveTransition maps a message to a gallery transition, or explains why
// the message is malformed.
func liveTransition(req liveRequest) (func(*gallery.Gallery) error, string) {
	switch req.Type {
	case "open":
		if req.ID == "" {
			return nil, "id is required"
		}
		return func(g *gallery.Gallery) error { return g.Open(req.ID) }, ""
	case "key":
		if req.Key == "" {
			return nil, "key is required"
		}
		return func(g *gallery.Gallery) error { return g.HandleKey(gallery.Key(req.Key)) }, ""
	case "next":
		return (*gallery.Gallery).Next, ""
	case "prev":
		return (*gallery.Gallery).Previous, ""
	case "close":
		return func(g *gallery.Gallery) error {
			g.Close()
			return nil
		}, ""
	case "image":
		if req.Index == nil {
			return nil, "index is required"
		}
		i := *req.Index
		return func(g *gallery.Gallery) error { return g.SetImage(i) }, ""
	default:
		return nil, "unknown message type: " + req.Type
	}
}

func (a *App) sendRender(conn *websocket.Conn, view gallery.View) {
	var buf bytes.Buffer
	if err := a.renderer.Modal(&buf, view, a.links()); err != nil {
		a.sendError(conn, "rendering failed: "+err.Error())
		return
	}
	resp := liveResponse{Type: "render", Open: view.Open, HTML: buf.String()}
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("web: websocket write: %v", err)
	}
}

func (a *App) sendError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(liveResponse{Type: "error", Error: message}); err != nil {
		log.Printf("web: websocket write error: %v", err)
	}
}

// headerRecorder captures the Set-Cookie header visitorID writes so it can
// be sent with the websocket handshake response.
type headerRecorder struct {
	header http.Header
}

func (h *headerRecorder) Header() http.Header         { return h.header }
func (h *headerRecorder) Write(b []byte) (int, error) { return len(b), nil }
func (h *headerRecorder) WriteHeader(int)             {}
