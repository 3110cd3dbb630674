package multibank

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func NewHTTPHandler(svc Service, log *zerolog.Logger) http.Handler {
	hndlr := &httpHandler{
		Svc: svc,
		Log: log,
	}
	mux := chi.NewMux()
	mux.NotFound(HTTPNotFound)
	mux.Route("/accounts", func(r chi.Router) {
		r.Route("/links", func(rr chi.Router) {
			rr.Post("/", hndlr.Link)
			rr.Get("/", hndlr.List)
			rr.Get("/{provider}", hndlr.Lookup)
			rr.Delete("/{provider}", hndlr.Unlink)
		})
		r.Post("/transfers", hndlr.Transfer)
		r.Post("/deposit", hndlr.Deposit)
		r.Post("/withdraw", hndlr.Withdraw)
		r.Get("/balance", hndlr.Consolidated)
		r.Get("/statement", hndlr.Statement)
	})

	return mux
}

type httpHandler struct {
	Svc Service
	Log *zerolog.Logger
}

func (h *httpHandler) Link(w http.ResponseWriter, r *http.Request) {
	var req LinkReq
	if !h.decode(w, r, "link", &req) {
		return
	}
	summary, err := h.Svc.LinkAccount(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, summary)
}

func (h *httpHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Svc.LinkedAccounts())
}

func (h *httpHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Svc.Lookup(chi.URLParam(r, "provider"))
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *httpHandler) Unlink(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.UnlinkAccount(chi.URLParam(r, "provider")); err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (h *httpHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferReq
	if !h.decode(w, r, "transfer", &req) {
		return
	}
	res, err := h.Svc.Transfer(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *httpHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req ChargeReq
	if !h.decode(w, r, "deposit", &req) {
		return
	}
	res, err := h.Svc.Deposit(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *httpHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req ChargeReq
	if !h.decode(w, r, "withdraw", &req) {
		return
	}
	res, err := h.Svc.Withdraw(req)
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *httpHandler) Consolidated(w http.ResponseWriter, r *http.Request) {
	view, err := h.Svc.Consolidated()
	if err != nil {
		WriteHTTPError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *httpHandler) Statement(w http.ResponseWriter, r *http.Request) {
	// Render to a buffer first; once bytes hit the ResponseWriter the
	// status is committed and a render failure could no longer surface
	// as anything but a truncated 200.
	var buf bytes.Buffer
	if err := h.Svc.Statement(&buf); err != nil {
		h.Log.Err(err).Str("method", "statement").Msg("error rendering statement")
		WriteHTTPError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.Log.Err(err).Str("method", "statement").Msg("error writing statement")
	}
}

func (h *httpHandler) decode(w http.ResponseWriter, r *http.Request, method string, dst any) bool {
	buf, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		h.Log.Err(err).Str("method", method).Msg("error reading HTTP request")
		WriteHTTPError(w, ErrInternalServer)
		return false
	}
	if err = json.Unmarshal(buf, dst); err != nil {
		h.Log.Err(err).Str("method", method).Msg("error unmarshalling JSON")
		WriteHTTPError(w, ErrValidation{Fields: map[string]string{"request body": "malformed JSON"}})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("response encoding failed")
	}
}

func WriteHTTPError(w http.ResponseWriter, err error) {
	var ne error
	defer func() {
		if ne != nil {
			log.Error().
				Err(ne).
				Msg("error response encoding failed")
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	errv := &ErrValidation{}
	errl := &ErrLinking{}
	errf := &ErrInsufficientFunds{}
	errt := &ErrTransfer{}
	switch {
	case errors.As(err, errv):
		w.WriteHeader(http.StatusBadRequest)
		ne = json.NewEncoder(w).Encode(errv)
	case errors.As(err, errl):
		if errl.Reason == ReasonNotFound {
			w.WriteHeader(http.StatusNotFound)
		} else {
			w.WriteHeader(http.StatusConflict)
		}
		ne = json.NewEncoder(w).Encode(errl)
	case errors.As(err, errf):
		w.WriteHeader(http.StatusConflict)
		ne = json.NewEncoder(w).Encode(errf)
	case errors.As(err, errt):
		w.WriteHeader(http.StatusInternalServerError)
		ne = json.NewEncoder(w).Encode(errt)
	case errors.Is(err, ErrOverCapacity):
		w.WriteHeader(http.StatusServiceUnavailable)
		ne = json.NewEncoder(w).Encode(map[string]string{"message": err.Error()})
	default:
		w.WriteHeader(http.StatusInternalServerError)
		ne = json.NewEncoder(w).Encode(map[string]string{"message": "server error"})
	}
}

func HTTPNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]string{
		"path": r.URL.Path,
	}
	json.NewEncoder(w).Encode(resp)
}
