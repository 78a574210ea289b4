package tarkov

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alexbotov/tarkov/internal/emulator"
)

// mockServer answers each path with a fixed, already encoded envelope and
// records the requests it saw.
type mockServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
	bodies   map[string][]byte
}

func newMockServer(t *testing.T, responses map[string]string) *mockServer {
	t.Helper()

	m := &mockServer{bodies: make(map[string][]byte)}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("Failed to read body: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		m.mu.Lock()
		m.requests = append(m.requests, r)
		m.bodies[r.URL.Path] = body
		m.mu.Unlock()

		resp, ok := responses[r.URL.Path]
		if !ok {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		w.Write(emulator.Compress([]byte(resp)))
	}))
	t.Cleanup(m.Close)
	return m
}

func (m *mockServer) config() *ClientConfig {
	return &ClientConfig{
		Versions:  testVersions,
		Endpoints: Endpoints{Launcher: m.URL, Prod: m.URL, Trading: m.URL, Ragfair: m.URL},
		Timeout:   5 * time.Second,
	}
}

func (m *mockServer) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (m *mockServer) request(i int) *http.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[i]
}

func (m *mockServer) body(path string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bodies[path]
}

func TestHandshake_LoginAndExchange(t *testing.T) {
	m := newMockServer(t, map[string]string{
		"/launcher/login":      `{"err":0,"errmsg":null,"data":{"aid":1,"token_type":"Bearer","expires_in":3600,"access_token":"tok-A","refresh_token":"r"}}`,
		"/launcher/game/start": `{"err":0,"errmsg":null,"data":{"queued":false,"session":"SESSION-FROM-EXCHANGE"}}`,
	})

	client, err := FromEmailAndPassword(context.Background(), m.config(), "user@example.com", "secret", "abc123")
	if err != nil {
		t.Fatalf("FromEmailAndPassword failed: %v", err)
	}
	if client.Session() != "SESSION-FROM-EXCHANGE" {
		t.Errorf("Expected session from exchange response, got %s", client.Session())
	}
	if m.calls() != 2 {
		t.Fatalf("Expected 2 calls, got %d", m.calls())
	}

	login := m.request(0)
	if login.URL.Query().Get("launcherVersion") != testVersions.Launcher || login.URL.Query().Get("branch") != "live" {
		t.Errorf("Unexpected login query: %s", login.URL.RawQuery)
	}
	var loginBody map[string]interface{}
	if err := json.Unmarshal(m.body("/launcher/login"), &loginBody); err != nil {
		t.Fatalf("Failed to parse login body: %v", err)
	}
	if loginBody["pass"] != hashPassword("secret") {
		t.Errorf("Expected md5 password, got %v", loginBody["pass"])
	}
	if loginBody["hwCode"] != "abc123" {
		t.Errorf("Expected hwCode abc123, got %v", loginBody["hwCode"])
	}
	if v, ok := loginBody["captcha"]; !ok || v != nil {
		t.Errorf("Expected captcha null, got %v", v)
	}

	exchange := m.request(1)
	if exchange.Header.Get("Authorization") != "tok-A" {
		t.Errorf("Expected access token in Authorization, got %s", exchange.Header.Get("Authorization"))
	}
	var exchangeBody exchangeRequest
	if err := json.Unmarshal(m.body("/launcher/game/start"), &exchangeBody); err != nil {
		t.Fatalf("Failed to parse exchange body: %v", err)
	}
	if exchangeBody.Version.Major != testVersions.Game || exchangeBody.Version.Backend != "6" || exchangeBody.HWCode != "abc123" {
		t.Errorf("Unexpected exchange body: %+v", exchangeBody)
	}
}

func TestHandshake_AccessTokenOnly(t *testing.T) {
	m := newMockServer(t, map[string]string{
		"/launcher/game/start": `{"err":0,"errmsg":null,"data":{"queued":false,"session":"SESSION-B"}}`,
	})

	client, err := FromAccessToken(context.Background(), m.config(), "tok-1", "abc123")
	if err != nil {
		t.Fatalf("FromAccessToken failed: %v", err)
	}
	if m.calls() != 1 {
		t.Errorf("Expected exactly 1 call, got %d", m.calls())
	}
	if path := m.request(0).URL.Path; path != "/launcher/game/start" {
		t.Errorf("Expected the exchange call, got %s", path)
	}
	if client.Session() != "SESSION-B" {
		t.Errorf("Expected SESSION-B, got %s", client.Session())
	}
}

func TestHandshake_SessionOnly(t *testing.T) {
	m := newMockServer(t, nil)

	client, err := FromSession(m.config(), "SESSIONID1", "abc123")
	if err != nil {
		t.Fatalf("FromSession failed: %v", err)
	}
	if m.calls() != 0 {
		t.Errorf("Expected no calls, got %d", m.calls())
	}
	if client.Session() != "SESSIONID1" {
		t.Errorf("Expected SESSIONID1, got %s", client.Session())
	}
}

func TestDo_SelectionCode(t *testing.T) {
	m := newMockServer(t, map[string]string{
		"/client/game/profile/select": `{"err":205,"errmsg":"bad id"}`,
		"/client/friend/list":         `{"err":205,"errmsg":"bad id"}`,
	})
	client, err := FromSession(m.config(), "SESSIONID1", "abc123")
	if err != nil {
		t.Fatalf("FromSession failed: %v", err)
	}
	ctx := context.Background()

	err = client.SelectProfile(ctx, "nope")
	if !errors.Is(err, ErrInvalidUserSelection) {
		t.Errorf("Expected ErrInvalidUserSelection, got %v", err)
	}

	_, err = client.Friends(ctx)
	var perr *ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *ProtocolError, got %v", err)
	}
	if perr.Kind != ProtocolUnknownCode || perr.Code != 205 {
		t.Errorf("Expected unknown code 205, got %v/%d", perr.Kind, perr.Code)
	}

	req := m.request(0)
	if c, err := req.Cookie(SessionCookie); err != nil || c.Value != "SESSIONID1" {
		t.Errorf("Expected session cookie SESSIONID1, got %v", req.Header.Get("Cookie"))
	}
	if req.Header.Get("App-Version") != "EFT Client "+testVersions.Game {
		t.Errorf("Unexpected App-Version: %s", req.Header.Get("App-Version"))
	}
}

func TestDo_MalformedBody(t *testing.T) {
	m := newMockServer(t, map[string]string{
		"/client/game/profile/list": `this is not json`,
	})
	client, err := FromSession(m.config(), "SESSIONID1", "abc123")
	if err != nil {
		t.Fatalf("FromSession failed: %v", err)
	}

	_, err = client.Profiles(context.Background())
	if !errors.Is(err, ErrFormat) {
		t.Errorf("Expected ErrFormat, got %v", err)
	}
}

func TestDo_SuccessPayloadUnchanged(t *testing.T) {
	m := newMockServer(t, map[string]string{
		"/client/friend/list": `{"err":0,"errmsg":null,"data":{"Friends":[{"_id":"f1","Info":{"Nickname":"N","Side":"Usec","Level":3,"MemberCategory":"Default"}}],"Ignore":["i1"],"InIgnoreList":[]}}`,
	})
	client, err := FromSession(m.config(), "SESSIONID1", "abc123")
	if err != nil {
		t.Fatalf("FromSession failed: %v", err)
	}

	list, err := client.Friends(context.Background())
	if err != nil {
		t.Fatalf("Friends failed: %v", err)
	}
	if len(list.Friends) != 1 || list.Friends[0].ID != "f1" || list.Friends[0].Info.Level != 3 {
		t.Errorf("Unexpected friends: %+v", list.Friends)
	}
	if len(list.Ignore) != 1 || list.Ignore[0] != "i1" {
		t.Errorf("Unexpected ignore list: %v", list.Ignore)
	}
}

func TestSelectProfile_SuccessWithoutStatus(t *testing.T) {
	responses := []string{
		`{"err":0,"errmsg":null}`,
		`{"err":0,"errmsg":null,"status":null}`,
		`{"err":0,"errmsg":null,"data":{"status":"ok"}}`,
		`{"err":0,"errmsg":null,"status":"ok"}`,
	}

	for _, resp := range responses {
		m := newMockServer(t, map[string]string{"/client/game/profile/select": resp})
		client, err := FromSession(m.config(), "SESSIONID1", "abc123")
		if err != nil {
			t.Fatalf("FromSession failed: %v", err)
		}

		if err := client.SelectProfile(context.Background(), "5c71b934354682353958e983"); err != nil {
			t.Errorf("%s: expected success, got %v", resp, err)
		}
	}
}

func TestDo_AllowEmptyKeepsErrors(t *testing.T) {
	m := newMockServer(t, map[string]string{"/client/game/profile/select": `{"err":201,"errmsg":null}`})
	client, err := FromSession(m.config(), "SESSIONID1", "abc123")
	if err != nil {
		t.Fatalf("FromSession failed: %v", err)
	}

	err = client.SelectProfile(context.Background(), "5c71b934354682353958e983")
	if !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("Expected ErrNotAuthorized, got %v", err)
	}
}
