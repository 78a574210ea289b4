package tarkov

import (
	"fmt"
	"net/http"
)

// SessionCookie is the cookie carrying the session identifier.
const SessionCookie = "PHPSESSID"

// Identity is what authenticates a caller to the game endpoints: the
// session identifier and the device fingerprint it was issued for.
type Identity struct {
	Session     string
	Fingerprint string
}

// Headers builds the identity headers for a game endpoint call. The
// session cookie is added only once a session exists.
func (id Identity) Headers(v Versions) http.Header {
	h := make(http.Header, 5)
	h.Set("Content-Type", "application/json")
	h.Set("User-Agent", fmt.Sprintf("UnityPlayer/%s (UnityWebRequest/1.0, libcurl/7.52.0-DEV)", v.Unity))
	h.Set("App-Version", "EFT Client "+v.Game)
	h.Set("X-Unity-Version", v.Unity)
	if id.Session != "" {
		h.Set("Cookie", SessionCookie+"="+id.Session)
	}
	return h
}

// launcherHeaders builds the headers for the handshake calls, which speak
// as the launcher rather than the game client.
func launcherHeaders(v Versions, accessToken string) http.Header {
	h := make(http.Header, 3)
	h.Set("Content-Type", "application/json")
	h.Set("User-Agent", "BSG Launcher "+v.Launcher)
	if accessToken != "" {
		h.Set("Authorization", accessToken)
	}
	return h
}
