package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"carepulse/internal/channel"
	"carepulse/internal/common"
	"carepulse/internal/dbmysql"
	"carepulse/internal/di"
	"carepulse/internal/sos"
)

func registerRoutes(r *mux.Router, app *di.Application) {
	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/lifecycle/{state}", handleLifecycle(app)).Methods(http.MethodPost)
	r.HandleFunc("/messages", handleSendMessage(app)).Methods(http.MethodPost)
	r.HandleFunc("/messages/{id}/read", handleMarkRead(app)).Methods(http.MethodPost)
	r.HandleFunc("/alerts", handleRaiseAlert(app)).Methods(http.MethodPost)
	r.HandleFunc("/alerts/{id}/status", handleAlertStatus(app)).Methods(http.MethodPost)
	r.HandleFunc("/sos", handleSos(app)).Methods(http.MethodPost)
	r.HandleFunc("/reports/deliveries", handleDeliveryReport(app)).Methods(http.MethodGet)
	r.HandleFunc("/reports/sos", handleSosReport(app)).Methods(http.MethodGet)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleLifecycle(app *di.Application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := common.LifecycleState(mux.Vars(r)["state"])
		if state != common.StateForeground && state != common.StateBackground {
			writeError(w, http.StatusBadRequest, "state must be foreground or background")
			return
		}
		app.Monitor.OnChange(state)
		writeJSON(w, http.StatusOK, map[string]string{"state": string(state)})
	}
}

type sendMessageRequest struct {
	PeerID          string `json:"peer_id"`
	Body            string `json:"body"`
	Urgent          bool   `json:"urgent"`
	Kind            string `json:"kind"`
	RelatedRecordID string `json:"related_record_id"`
	SenderName      string `json:"sender_name"`
}

func handleSendMessage(app *di.Application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.PeerID == "" || req.Body == "" {
			writeError(w, http.StatusBadRequest, "peer_id and body are required")
			return
		}

		kind := common.MessageKind(req.Kind)
		if kind == "" {
			kind = common.KindPlain
		}
		msg := &common.Message{
			ChannelID:       channel.ID(app.Config.User.ID, req.PeerID),
			SenderID:        app.Config.User.ID,
			SenderRole:      app.Config.User.Role,
			SenderName:      req.SenderName,
			Body:            req.Body,
			Urgent:          req.Urgent,
			Kind:            kind,
			RelatedRecordID: req.RelatedRecordID,
		}

		id, err := app.Store.CreateMessage(r.Context(), msg)
		if err != nil {
			log.Printf("alertd: create message failed: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to create message")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": id, "channel_id": msg.ChannelID})
	}
}

func handleMarkRead(app *di.Application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if err := app.Store.MarkRead(r.Context(), id); err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"id": id})
	}
}

type raiseAlertRequest struct {
	PeerID      string `json:"peer_id"`
	PatientName string `json:"patient_name"`
}

func handleRaiseAlert(app *di.Application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req raiseAlertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.PeerID == "" {
			writeError(w, http.StatusBadRequest, "peer_id is required")
			return
		}

		alert := &common.EmergencyAlert{
			ChannelID:   channel.ID(app.Config.User.ID, req.PeerID),
			PatientID:   app.Config.User.ID,
			PatientName: req.PatientName,
		}
		id, err := app.Store.CreateAlert(r.Context(), alert)
		if err != nil {
			log.Printf("alertd: create alert failed: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to create alert")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

type alertStatusRequest struct {
	Status string `json:"status"`
}

func handleAlertStatus(app *di.Application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req alertStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		status := common.AlertStatus(req.Status)
		if status != common.AlertAcknowledged && status != common.AlertResolved {
			writeError(w, http.StatusBadRequest, "status must be acknowledged or resolved")
			return
		}
		if err := app.Store.UpdateAlertStatus(r.Context(), mux.Vars(r)["id"], status); err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
	}
}

type sosRequest struct {
	Numbers     []string `json:"numbers"`
	UserName    string   `json:"user_name"`
	ContactName string   `json:"contact_name"`
	AddressHint string   `json:"address_hint"`
}

func handleSos(app *di.Application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sosRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.Numbers) == 0 || req.UserName == "" {
			writeError(w, http.StatusBadRequest, "numbers and user_name are required")
			return
		}

		report := app.Fanout.Send(r.Context(), req.Numbers, sos.Options{
			UserName:    req.UserName,
			ContactName: req.ContactName,
			AddressHint: req.AddressHint,
		})
		writeJSON(w, http.StatusOK, report)
	}
}

func handleDeliveryReport(app *di.Application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		records, err := dbmysql.RecentDeliveries(r.Context(), app.DB, limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list deliveries")
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

func handleSosReport(app *di.Application) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		records, err := dbmysql.RecentSosOutcomes(r.Context(), app.DB, limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list sos outcomes")
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
