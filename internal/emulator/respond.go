package emulator

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/klauspost/compress/zlib"
)

// Protocol codes the emulator answers with
const (
	CodeOK                   = 0
	CodeNotAuthorized        = 201
	CodeBadLogin             = 205
	CodeInvalidUserSelection = 205
	CodeTwoFactorRequired    = 209
	CodeBadTwoFactorCode     = 211
)

// Compress zlib-compresses b the way the game servers do.
func Compress(b []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	zw.Write(b)
	zw.Close()
	return buf.Bytes()
}

// Envelope renders a response envelope. An empty message becomes null and a
// nil payload is written as null under key.
func Envelope(code int, message, key string, payload interface{}) []byte {
	if key == "" {
		key = "data"
	}
	body := map[string]interface{}{
		"err":    code,
		"errmsg": nil,
		key:      payload,
	}
	if message != "" {
		body["errmsg"] = message
	}
	raw, _ := json.Marshal(body)
	return raw
}

func respondEnvelope(w http.ResponseWriter, code int, message, key string, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(Compress(Envelope(code, message, key, payload)))
}

func respondData(w http.ResponseWriter, payload interface{}) {
	respondEnvelope(w, CodeOK, "", "data", payload)
}

func respondCode(w http.ResponseWriter, code int, message string) {
	respondEnvelope(w, code, message, "data", nil)
}

func respondRaw(w http.ResponseWriter, payload json.RawMessage) {
	respondData(w, payload)
}
