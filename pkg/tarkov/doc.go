// Package tarkov provides an unofficial client for the Escape from Tarkov
// game API.
//
// Every response of the API is a zlib-compressed JSON envelope
//
//	{"err": 0, "errmsg": null, "data": ...}
//
// where "err" is a protocol code. This package decodes the envelope, maps
// the code to an error and hands back the typed payload.
//
// # Authentication
//
// A session is obtained in one of three ways:
//
//	// credentials -> access token -> session
//	client, err := tarkov.FromEmailAndPassword(ctx, nil, email, password, fingerprint)
//
//	// access token -> session
//	client, err := tarkov.FromAccessToken(ctx, nil, accessToken, fingerprint)
//
//	// existing PHPSESSID, no network call
//	client, err := tarkov.FromSession(nil, session, fingerprint)
//
// The fingerprint (hardware code) is an opaque string supplied by the
// caller. On a fresh session a profile must be selected before most
// endpoints accept calls:
//
//	profiles, err := client.Profiles(ctx)
//	err = client.SelectProfile(ctx, profiles[0].ID)
//
// If the launcher asks for a hardware activation code, Login fails with
// ErrTwoFactorRequired; submit the mailed code with
// Launcher.ActivateHardware and log in again.
//
// # Configuration
//
// Pinned client versions and endpoint URLs come from DefaultConfig, which
// reads TARKOV_* environment variables over built-in defaults, or from
// ConfigFromFile. A nil *ClientConfig means DefaultConfig.
//
// # Error Handling
//
// Failures are reported as typed errors that also match sentinels:
//
//	profiles, err := client.Profiles(ctx)
//	switch {
//	case errors.Is(err, tarkov.ErrNotAuthorized):
//	    // session expired or no profile selected
//	case errors.Is(err, tarkov.ErrUnknownCode):
//	    var perr *tarkov.ProtocolError
//	    errors.As(err, &perr) // perr.Code holds the raw code
//	case errors.Is(err, tarkov.ErrTransport), errors.Is(err, tarkov.ErrFormat):
//	    // request failed or the response was garbage
//	}
//
// Nothing is retried. Callers decide whether to log in again.
//
// # Thread Safety
//
// A Client is immutable after construction and safe for concurrent use.
package tarkov
