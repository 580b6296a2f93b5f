// Package api exposes the layout engine over HTTP.
//
// The facade keeps an in-memory registry of decks keyed by id. Clients
// upload a deck as TOML, run layout operations against it with JSON
// requests, and fetch the resulting geometry back as JSON or as an SVG
// preview. Operations are serialized: one mutation at a time across the
// registry, matching the engine's single-threaded operation model.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/slidekit/slidekit/pkg/anchor"
	"github.com/slidekit/slidekit/pkg/deck"
	"github.com/slidekit/slidekit/pkg/engine"
	"github.com/slidekit/slidekit/pkg/errors"
	"github.com/slidekit/slidekit/pkg/slide"
	"github.com/slidekit/slidekit/pkg/table"
)

// Server is the HTTP facade over the layout engine.
type Server struct {
	logger *log.Logger
	engine *engine.Engine
	store  anchor.Store

	mu    sync.Mutex
	decks map[string]*deck.Deck
}

// NewServer creates a server. A nil logger falls back to log.Default();
// a nil store falls back to an in-memory anchor store.
func NewServer(logger *log.Logger, store anchor.Store) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if store == nil {
		store = anchor.NewMemoryStore()
	}
	return &Server{
		logger: logger,
		engine: engine.New(logger),
		store:  store,
		decks:  make(map[string]*deck.Deck),
	}
}

// Router builds the chi routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/decks/{deckID}", func(r chi.Router) {
		r.Put("/", s.handlePutDeck)
		r.Get("/", s.handleGetDeck)
		r.Get("/svg", s.handleGetSVG)
		r.Post("/ops/{op}", s.handleOp)
		r.Post("/swap", s.handleSwap)
		r.Get("/anchor", s.handleGetAnchor)
		r.Put("/anchor", s.handleSetAnchor)
		r.Delete("/anchor", s.handleClearAnchor)
	})

	return r
}

// opRequest is the JSON body of POST /decks/{id}/ops/{op}. Fields beyond
// select/anchor apply only to the operations that use them.
type opRequest struct {
	Select  []string `json:"select,omitempty"`
	Anchor  string   `json:"anchor,omitempty"`
	Edge    string   `json:"edge,omitempty"`
	Axis    string   `json:"axis,omitempty"`
	Side    string   `json:"side,omitempty"`
	Dim     string   `json:"dimension,omitempty"`
	Percent float64  `json:"percent,omitempty"`
	Rows    int      `json:"rows,omitempty"`
	Cols    int      `json:"cols,omitempty"`
	Spacing float64  `json:"spacing,omitempty"`
}

// opResponse mirrors engine.Report.
type opResponse struct {
	Done    int    `json:"done"`
	Failed  int    `json:"failed"`
	Message string `json:"message"`
}

// swapRequest is the JSON body of POST /decks/{id}/swap.
type swapRequest struct {
	Select         []string `json:"select,omitempty"`
	Columns        bool     `json:"columns,omitempty"`
	A              int      `json:"a"`
	B              int      `json:"b"`
	KeepFormatting bool     `json:"keep_formatting,omitempty"`
}

// objectView is the JSON form of one deck object.
type objectView struct {
	ID     string  `json:"id"`
	Kind   string  `json:"kind"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (s *Server) handlePutDeck(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}
	d, err := deck.Parse(body)
	if err != nil {
		s.writeError(w, err)
		return
	}

	id := chi.URLParam(r, "deckID")
	s.mu.Lock()
	s.decks[id] = d
	s.mu.Unlock()

	s.logger.Info("deck stored", "deck", id, "contents", d.String())
	s.writeJSON(w, http.StatusCreated, map[string]string{"deck": id, "contents": d.String()})
}

func (s *Server) handleGetDeck(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.deckLocked(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	objects := d.Objects()
	views := make([]objectView, len(objects))
	for i, o := range objects {
		kind := "shape"
		if _, ok := o.(*table.TableBox); ok {
			kind = "table"
		} else if slide.IsLocked(o) {
			kind = "locked"
		}
		views[i] = objectView{
			ID: o.ID(), Kind: kind,
			Left: o.Left(), Top: o.Top(),
			Width: o.Width(), Height: o.Height(),
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"title": d.Title, "objects": views})
}

func (s *Server) handleGetSVG(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.deckLocked(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(deck.RenderSVG(d, deck.WithLabels(), deck.WithGrid()))
}

func (s *Server) handleOp(w http.ResponseWriter, r *http.Request) {
	var req opRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.deckLocked(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sel, err := d.Select(req.Select...)
	if err != nil {
		s.writeError(w, err)
		return
	}

	anchorID := req.Anchor
	if anchorID == "" {
		anchorID, _, err = s.store.Get(r.Context(), chi.URLParam(r, "deckID"))
		if err != nil {
			s.writeError(w, err)
			return
		}
	}

	report, err := s.runOp(chi.URLParam(r, "op"), req, sel, anchorID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, opResponse{Done: report.Done, Failed: report.Failed, Message: report.Message})
}

// runOp dispatches one layout operation by name.
func (s *Server) runOp(op string, req opRequest, sel slide.Selection, anchorID string) (*engine.Report, error) {
	switch op {
	case "align":
		edge, err := engine.ParseEdge(req.Edge)
		if err != nil {
			return nil, err
		}
		return s.engine.Align(sel, anchorID, edge)
	case "distribute":
		axis, err := engine.ParseAxis(req.Axis)
		if err != nil {
			return nil, err
		}
		return s.engine.Distribute(sel, axis)
	case "dock":
		side, err := engine.ParseSide(req.Side)
		if err != nil {
			return nil, err
		}
		return s.engine.Dock(sel, anchorID, side)
	case "match":
		dim, err := engine.ParseDimension(req.Dim)
		if err != nil {
			return nil, err
		}
		return s.engine.Match(sel, anchorID, dim)
	case "stretch":
		side, err := engine.ParseSide(req.Side)
		if err != nil {
			return nil, err
		}
		return s.engine.Stretch(sel, anchorID, side)
	case "fill":
		side, err := engine.ParseSide(req.Side)
		if err != nil {
			return nil, err
		}
		return s.engine.Fill(sel, anchorID, side)
	case "resize":
		return s.engine.MagicResize(sel, req.Percent)
	case "arrange":
		return s.engine.Arrange(sel, req.Rows, req.Cols, req.Spacing)
	}
	return nil, errors.New(errors.ErrCodeNotFound, "unknown operation %q", op)
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	var req swapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.deckLocked(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var sel slide.Selection
	if len(req.Select) > 0 {
		if sel, err = d.Select(req.Select...); err != nil {
			s.writeError(w, err)
			return
		}
	}

	swapper := table.NewSwapper(s.logger)
	var msg string
	if req.Columns {
		msg, err = swapper.SwapColumns(sel, d.Page(), req.A, req.B, req.KeepFormatting)
	} else {
		msg, err = swapper.SwapRows(sel, d.Page(), req.A, req.B, req.KeepFormatting)
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func (s *Server) handleGetAnchor(w http.ResponseWriter, r *http.Request) {
	id, ok, err := s.store.Get(r.Context(), chi.URLParam(r, "deckID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !ok {
		s.writeJSON(w, http.StatusOK, map[string]any{"anchor": nil})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"anchor": id})
}

func (s *Server) handleSetAnchor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Anchor string `json:"anchor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Anchor == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "body must carry a non-empty anchor id"))
		return
	}
	if err := s.store.Set(r.Context(), chi.URLParam(r, "deckID"), req.Anchor); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"anchor": req.Anchor})
}

func (s *Server) handleClearAnchor(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(r.Context(), chi.URLParam(r, "deckID")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deckLocked looks up the request's deck. Callers hold s.mu.
func (s *Server) deckLocked(r *http.Request) (*deck.Deck, error) {
	id := chi.URLParam(r, "deckID")
	d, ok := s.decks[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "no deck %q", id)
	}
	return d, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidSelection, errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidIndex, errors.ErrCodeUnsupported:
		status = http.StatusUnprocessableEntity
	case errors.ErrCodeAmbiguousTable, errors.ErrCodeMergedCell:
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	} else {
		s.logger.Debug("request rejected", "code", code, "err", err)
	}
	s.writeJSON(w, status, map[string]string{"error": errors.UserMessage(err), "code": string(code)})
}
