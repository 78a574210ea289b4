package tarkov

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/klauspost/compress/zlib"
)

// DefaultPayloadKey is the envelope field holding the payload for most calls.
const DefaultPayloadKey = "data"

// Envelope is the uniform wrapper around every response. Data is set only
// when Code is CodeSuccess.
type Envelope[T any] struct {
	Code    Code
	Message string
	Data    *T
}

// Decode turns a raw response into an envelope. A non-200 status fails
// before the body is touched; a body that does not inflate or does not
// match T fails with a *FormatError.
func Decode[T any](status int, body []byte, payloadKey string) (*Envelope[T], error) {
	if status != http.StatusOK {
		return nil, &StatusError{StatusCode: status}
	}

	text, err := inflate(body)
	if err != nil {
		return nil, &FormatError{Op: "decompress", Err: err}
	}

	env, err := parseEnvelope[T](text, payloadKey)
	if err != nil {
		return nil, &FormatError{Op: "parse", Err: err}
	}
	return env, nil
}

func inflate(body []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

func parseEnvelope[T any](text []byte, payloadKey string) (*Envelope[T], error) {
	if payloadKey == "" {
		payloadKey = DefaultPayloadKey
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(text, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("envelope is null")
	}

	rawCode, ok := fields["err"]
	if !ok {
		return nil, errors.New(`envelope has no "err" field`)
	}

	if isNull(rawCode) {
		return nil, errors.New(`field "err" is null`)
	}

	env := &Envelope[T]{}
	if err := json.Unmarshal(rawCode, &env.Code); err != nil {
		return nil, fmt.Errorf(`field "err": %w`, err)
	}

	if rawMsg, ok := fields["errmsg"]; ok {
		var msg *string
		if err := json.Unmarshal(rawMsg, &msg); err != nil {
			return nil, fmt.Errorf(`field "errmsg": %w`, err)
		}
		if msg != nil {
			env.Message = *msg
		}
	}

	if rawData, ok := fields[payloadKey]; ok && !isNull(rawData) {
		var data T
		if err := json.Unmarshal(rawData, &data); err != nil {
			return nil, fmt.Errorf("field %q: %w", payloadKey, err)
		}
		env.Data = &data
	}

	return env, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
