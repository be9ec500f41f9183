// Package web serves the interactive console: a single page that submits
// walk parameters over a websocket and renders live progress, the results
// table and the cost histogram.
package web

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/websocket"

	"github.com/ruinlab/ruin/core"
	"github.com/ruinlab/ruin/sim"
	"github.com/ruinlab/ruin/viz"
)

// Server hosts the console page and its websocket endpoint. Each websocket
// connection owns an independent Runner, so concurrent browser sessions
// never share run state.
type Server struct {
	Address string
	Seed    int64

	upgrader websocket.Upgrader
}

func NewServer(address string, seed int64) *Server {
	return &Server{Address: address, Seed: seed}
}

// wsMessage is the envelope for every server-to-client frame.
type wsMessage struct {
	Type     string   `json:"type"`
	Fraction float64  `json:"fraction,omitempty"`
	Param    string   `json:"param,omitempty"`
	Message  string   `json:"message,omitempty"`
	Run      *sim.Run `json:"run,omitempty"`
	SVG      string   `json:"svg,omitempty"`
}

// Handler returns the full route tree wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWS)
	return withRequestLogging(mux)
}

func (s *Server) ListenAndServe() error {
	log.Printf("ruin console listening on http://%s", s.Address)
	return http.ListenAndServe(s.Address, s.Handler())
}

func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		log.Printf("%s %s -> %d (%v)", r.Method, r.URL.Path, m.Code, m.Duration)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

// handleWS runs one simulation per request frame. The client sends
// WalkParameters as JSON; the server streams progress frames and a final
// complete frame carrying the run report and the rendered SVG. The client
// replaces its previous chart wholesale on each complete frame.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	plotter := viz.NewHistogramPlotter(viz.DefaultPlotConfig())

	for {
		var params core.WalkParameters
		if err := conn.ReadJSON(&params); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket read failed: %v", err)
			}
			return
		}

		// A fresh Runner (and seed) per request; runs on one connection are
		// strictly sequential, so the prior run is complete before the next
		// request is even read.
		runner := sim.NewRunner(seed)
		seed++

		// Runner serializes progress callbacks, and the complete frame is
		// only written after Run returns, so writes never interleave and
		// writeFailed needs no locking.
		writeFailed := false
		run, err := runner.Run(params, func(fraction float64) {
			if writeFailed {
				return
			}
			if err := conn.WriteJSON(wsMessage{Type: "progress", Fraction: fraction}); err != nil {
				writeFailed = true
			}
		})
		if writeFailed {
			log.Printf("websocket write failed mid-run, dropping connection")
			return
		}
		if err != nil {
			var verr *core.ValidationError
			if errors.As(err, &verr) {
				conn.WriteJSON(wsMessage{Type: "error", Param: verr.Param, Message: verr.Message})
			} else {
				log.Printf("simulation failed: %v", err)
				conn.WriteJSON(wsMessage{Type: "error", Message: "simulation failed"})
			}
			continue
		}

		svg, err := plotter.Render(run.Histogram, run.Stats, run.AnalyticCost, "Cost Distribution")
		if err != nil {
			log.Printf("chart rendering failed: %v", err)
			conn.WriteJSON(wsMessage{Type: "error", Message: "chart rendering failed"})
			continue
		}

		if err := conn.WriteJSON(wsMessage{Type: "complete", Run: run, SVG: svg}); err != nil {
			log.Printf("websocket write failed: %v", err)
			return
		}
	}
}
