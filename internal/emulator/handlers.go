package emulator

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type loginRequest struct {
	Email  string `json:"email"`
	Pass   string `json:"pass"`
	HWCode string `json:"hwCode"`
}

type activateRequest struct {
	Email        string `json:"email"`
	HWCode       string `json:"hwCode"`
	ActivateCode string `json:"activateCode"`
}

type gameStartRequest struct {
	Version struct {
		Major   string `json:"major"`
		Game    string `json:"game"`
		Backend string `json:"backend"`
	} `json:"version"`
	HWCode string `json:"hwCode"`
}

func decodeBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// Login checks credentials and answers with an access token
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	token, acc, err := s.accounts.login(req.Email, req.Pass, req.HWCode)
	switch {
	case errors.Is(err, ErrHardwareNotActive):
		respondCode(w, CodeTwoFactorRequired, "need activation code")
		return
	case err != nil:
		respondCode(w, CodeBadLogin, "bad login")
		return
	}

	respondData(w, map[string]interface{}{
		"aid":           acc.ID,
		"lang":          "en",
		"region":        nil,
		"gameVersion":   "edge_of_darkness",
		"dataCenters":   []string{},
		"ipRegion":      "EU",
		"token_type":    "Bearer",
		"expires_in":    3600,
		"access_token":  token,
		"refresh_token": strings.ReplaceAll(uuid.NewString(), "-", ""),
	})
}

// ActivateHardware activates a fingerprint with the mailed code
func (s *Server) ActivateHardware(w http.ResponseWriter, r *http.Request) {
	var req activateRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if err := s.accounts.activate(req.Email, req.HWCode, req.ActivateCode); err != nil {
		respondCode(w, CodeBadTwoFactorCode, "wrong activation code")
		return
	}
	respondData(w, nil)
}

// GameStart exchanges an access token for a session
func (s *Server) GameStart(w http.ResponseWriter, r *http.Request) {
	var req gameStartRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if req.Version.Major == "" || req.Version.Game == "" {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	id, err := s.accounts.startSession(r.Header.Get("Authorization"), req.HWCode)
	if err != nil {
		respondCode(w, CodeNotAuthorized, "")
		return
	}

	respondData(w, map[string]interface{}{
		"queued":  false,
		"session": id,
	})
}

// ProfileList lists the profiles of the session's account
func (s *Server) ProfileList(w http.ResponseWriter, r *http.Request) {
	respondRaw(w, profilesJSON)
}

// ProfileSelect selects the profile the session acts as. The answer
// carries a top-level "status" instead of "data".
func (s *Server) ProfileSelect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UID string `json:"uid"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	sess := r.Context().Value(sessionKey).(session)
	if err := s.accounts.selectProfile(sess.id, req.UID); err != nil {
		respondEnvelope(w, CodeInvalidUserSelection, "bad id", "status", nil)
		return
	}
	respondEnvelope(w, CodeOK, "", "status", "ok")
}

// FriendList returns the friend list
func (s *Server) FriendList(w http.ResponseWriter, r *http.Request) {
	respondRaw(w, friendsJSON)
}

// TradersList returns all traders
func (s *Server) TradersList(w http.ResponseWriter, r *http.Request) {
	respondRaw(w, tradersJSON)
}

// Trader returns one trader
func (s *Server) Trader(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var traders []json.RawMessage
	json.Unmarshal(tradersJSON, &traders)
	for _, raw := range traders {
		var t struct {
			ID string `json:"_id"`
		}
		if json.Unmarshal(raw, &t) == nil && t.ID == id {
			respondRaw(w, raw)
			return
		}
	}
	respondCode(w, 1000, "trader not found")
}

// TraderAssort returns Prapor's assort; other traders sell nothing
func (s *Server) TraderAssort(w http.ResponseWriter, r *http.Request) {
	if mux.Vars(r)["id"] != PraporID {
		respondData(w, map[string]interface{}{
			"items":             []interface{}{},
			"barter_scheme":     map[string]interface{}{},
			"loyal_level_items": map[string]interface{}{},
		})
		return
	}
	respondRaw(w, assortJSON)
}

// RagfairFind returns a page of offers
func (s *Server) RagfairFind(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Page  *uint64 `json:"page"`
		Limit *uint64 `json:"limit"`
	}
	if err := decodeBody(r, &req); err != nil || req.Page == nil || req.Limit == nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	respondRaw(w, marketJSON)
}

// ItemMarketPrice returns the price range of a template
func (s *Server) ItemMarketPrice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TemplateID string `json:"templateId"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	price, ok := itemPricesJSON[req.TemplateID]
	if !ok {
		respondCode(w, 1000, "item not found")
		return
	}
	respondRaw(w, price)
}

// NotifierChannelCreate creates a notifier channel for the session
func (s *Server) NotifierChannelCreate(w http.ResponseWriter, r *http.Request) {
	channel := strings.ReplaceAll(uuid.NewString(), "-", "")
	respondData(w, map[string]interface{}{
		"server":         strings.TrimPrefix(s.URL, "http://"),
		"channel_id":     channel,
		"url":            s.URL + "/notifierServer/get/" + channel,
		"notifierServer": s.URL + "/notifierServer",
		"ws":             s.WebsocketURL() + "/notifierServer/getwebsocket/" + channel,
	})
}
