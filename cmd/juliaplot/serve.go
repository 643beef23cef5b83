package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/spf13/cobra"

	julia "github.com/mvancura/juliaplot"
	"github.com/mvancura/juliaplot/ppm"
)

func serveCmd(cfg *appConfig) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve Julia set renders over HTTP, with live row progress on /ws",
		RunE: func(cmd *cobra.Command, args []string) error {
			hub := newProgressHub()
			mux := http.NewServeMux()
			mux.HandleFunc("/julia", renderHandler(cfg, hub))
			mux.HandleFunc("/ws", progressHandler(hub))

			srv := &http.Server{
				Addr:              addr,
				Handler:           mux,
				ReadHeaderTimeout: 5 * time.Second,
			}
			log.Printf("listening on http://localhost%s", addr)
			return srv.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

// renderHandler renders one Julia set per request and responds with the PPM
// artifact. The parameter c can be overridden with ?re= and ?im= query
// values; row completion is broadcast to websocket subscribers while the
// raster runs.
func renderHandler(cfg *appConfig, hub *progressHub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, spec, policy, err := cfg.setup()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		re, im := r.URL.Query().Get("re"), r.URL.Query().Get("im")
		if re == "" {
			re = defaultRe
		}
		if im == "" {
			im = defaultIm
		}
		c, err := ctx.ParseComplex(re, im)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log.Printf("rendering for %s: c = %s", r.RemoteAddr, c)
		spec.Progress = hub.rowDone
		grid, err := ctx.Rasterize(spec, c)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		img, err := julia.Colorize(grid, policy, spec.Iterations)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/x-portable-pixmap")
		if err := ppm.Encode(w, img); err != nil {
			log.Printf("encode response: %v", err)
		}
	}
}

// progressHandler upgrades the connection to a websocket and forwards row
// progress events until the client goes away.
func progressHandler(hub *progressHub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		events := hub.subscribe()
		defer hub.unsubscribe(events)

		for {
			select {
			case ev := <-events:
				b, err := json.Marshal(ev)
				if err != nil {
					return
				}
				if err := c.Write(r.Context(), websocket.MessageText, b); err != nil {
					return
				}
			case <-r.Context().Done():
				c.Close(websocket.StatusNormalClosure, "")
				return
			}
		}
	}
}

type progressEvent struct {
	Rows  int `json:"rows"`
	Total int `json:"total"`
}

// progressHub fans row completion events out to websocket subscribers.
// A slow subscriber drops events rather than stalling the raster.
type progressHub struct {
	m    sync.Mutex
	subs map[chan progressEvent]struct{}
}

func newProgressHub() *progressHub {
	return &progressHub{subs: make(map[chan progressEvent]struct{})}
}

func (h *progressHub) subscribe() chan progressEvent {
	ch := make(chan progressEvent, 64)
	h.m.Lock()
	h.subs[ch] = struct{}{}
	h.m.Unlock()
	return ch
}

func (h *progressHub) unsubscribe(ch chan progressEvent) {
	h.m.Lock()
	delete(h.subs, ch)
	h.m.Unlock()
}

func (h *progressHub) rowDone(done, total int) {
	h.m.Lock()
	defer h.m.Unlock()
	for ch := range h.subs {
		select {
		case ch <- progressEvent{Rows: done, Total: total}:
		default:
		}
	}
}
