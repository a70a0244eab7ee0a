package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/versedeck/versedeck/pkg/deck"
	vderrors "github.com/versedeck/versedeck/pkg/errors"
	"github.com/versedeck/versedeck/pkg/rolodex"
	"github.com/versedeck/versedeck/pkg/store"
)

// serveCommand creates the serve command: a small read-only HTTP API over
// the local library, plus a layout endpoint for rolodex front ends.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the library over HTTP",
		Long: `Serve a read-only HTTP API over the local library.

Endpoints:

  GET  /api/packs             all packs
  GET  /api/packs/{id}        one pack with verses
  GET  /api/packs/{id}/health per-verse health for a pack
  POST /api/layout            rolodex render states for a position snapshot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			engine, err := rolodex.New(c.Config.Layout)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           newAPIHandler(st, engine),
				ReadHeaderTimeout: 5 * time.Second,
			}

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			loggerFromContext(ctx).Info("serving", "addr", addr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8480", "listen address")
	return cmd
}

// newAPIHandler builds the chi router for the HTTP API.
func newAPIHandler(st store.Store, engine *rolodex.Engine) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/packs", listPacksHandler(st))
		r.Get("/packs/{id}", getPackHandler(st))
		r.Get("/packs/{id}/health", packHealthHandler(st))
		r.Post("/layout", layoutHandler(engine))
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// apiError is the JSON error body, carrying a structured code alongside
// the message.
type apiError struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, code vderrors.Code, format string, args ...any) {
	writeJSON(w, status, apiError{Code: string(code), Error: fmt.Sprintf(format, args...)})
}

func listPacksHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packs, err := st.ListPacks(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, vderrors.ErrCodeInternal, "list packs: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, packs)
	}
}

func getPackHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pack, err := st.GetPack(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, vderrors.ErrCodePackNotFound, "no such pack")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, vderrors.ErrCodeInternal, "get pack: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, pack)
	}
}

func packHealthHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pack, err := st.GetPack(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, vderrors.ErrCodePackNotFound, "no such pack")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, vderrors.ErrCodeInternal, "get pack: %v", err)
			return
		}

		health := make(map[string]deck.Health, len(pack.Verses))
		for _, v := range pack.Verses {
			h, err := st.GetHealth(r.Context(), v.ID)
			if err != nil {
				writeError(w, http.StatusInternalServerError, vderrors.ErrCodeInternal, "get health: %v", err)
				return
			}
			health[v.ID] = h
		}
		writeJSON(w, http.StatusOK, health)
	}
}

// layoutRequest is the POST /api/layout body.
type layoutRequest struct {
	Cards    []rolodex.CardID         `json:"cards"`
	Snapshot rolodex.PositionSnapshot `json:"snapshot"`
	Anchor   rolodex.CardID           `json:"anchor,omitempty"`
	Previous rolodex.PositionSnapshot `json:"previous,omitempty"`
}

func layoutHandler(engine *rolodex.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req layoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, vderrors.ErrCodeInvalidInput, "decode request: %v", err)
			return
		}
		states := engine.ComputeRenderStates(req.Cards, req.Snapshot, req.Anchor, req.Previous)
		writeJSON(w, http.StatusOK, states)
	}
}
