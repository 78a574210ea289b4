package tarkov

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		code  Code
		extra []Code
		want  ProtocolKind
	}{
		{"success", 0, nil, ProtocolSuccess},
		{"not authorized", 201, nil, ProtocolNotAuthorized},
		{"not authorized with extras", 201, []Code{205}, ProtocolNotAuthorized},
		{"205 without opt in", 205, nil, ProtocolUnknownCode},
		{"205 with opt in", 205, []Code{205}, ProtocolInvalidUserSelection},
		{"205 with unrelated opt in", 205, []Code{209}, ProtocolUnknownCode},
		{"unlisted code", 1000, nil, ProtocolUnknownCode},
		{"unlisted code opted in", 1000, []Code{1000}, ProtocolUnknownCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.code, tt.extra...))
		})
	}
}

func TestProtocolKind_String(t *testing.T) {
	assert.Equal(t, "success", ProtocolSuccess.String())
	assert.Equal(t, "not_authorized", ProtocolNotAuthorized.String())
	assert.Equal(t, "invalid_user_selection", ProtocolInvalidUserSelection.String())
	assert.Equal(t, "unknown_code", ProtocolUnknownCode.String())
	assert.Equal(t, "ProtocolKind(9)", ProtocolKind(9).String())
}

func TestResolve_Success(t *testing.T) {
	data := "ok"
	got, err := Resolve(&Envelope[string]{Code: CodeSuccess, Data: &data})

	require.NoError(t, err)
	assert.Equal(t, "ok", *got)
}

func TestResolve_MissingPayload(t *testing.T) {
	_, err := Resolve(&Envelope[string]{Code: CodeSuccess})

	assert.ErrorIs(t, err, ErrMissingPayload)
}

func TestResolve_NotAuthorized(t *testing.T) {
	_, err := Resolve(&Envelope[string]{Code: 201, Message: "session expired"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.NotErrorIs(t, err, ErrUnknownCode)

	var perr *ProtocolError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ProtocolNotAuthorized, perr.Kind)
	assert.Equal(t, Code(201), perr.Code)
	assert.Equal(t, "not authorized or game profile not selected: session expired", err.Error())
}

func TestResolve_ExtraCodes(t *testing.T) {
	env := &Envelope[string]{Code: 205}

	_, err := Resolve(env, CodeInvalidUserSelection)
	assert.ErrorIs(t, err, ErrInvalidUserSelection)

	_, err = Resolve(env)
	assert.ErrorIs(t, err, ErrUnknownCode)
	assert.Equal(t, "unidentified api error with error code: 205", err.Error())
}

func TestResolve_PayloadIgnoredOnError(t *testing.T) {
	data := "stale"
	got, err := Resolve(&Envelope[string]{Code: 201, Data: &data})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestTypedErrors(t *testing.T) {
	cause := errors.New("connection refused")

	terr := error(&TransportError{URL: "http://x", Err: cause})
	assert.ErrorIs(t, terr, ErrTransport)
	assert.ErrorIs(t, terr, cause)
	assert.Equal(t, "send request to http://x: connection refused", terr.Error())

	ferr := error(&FormatError{Op: "parse", Err: cause})
	assert.ErrorIs(t, ferr, ErrFormat)
	assert.NotErrorIs(t, ferr, ErrTransport)

	serr := error(&StatusError{StatusCode: 502})
	assert.ErrorIs(t, serr, ErrStatus)
	assert.Equal(t, "non-success response from api: 502", serr.Error())
}

func TestResolveLogin(t *testing.T) {
	allowed := []Code{CodeBadCredentials, CodeTwoFactorRequired, CodeBadTwoFactorCode, CodeCaptchaRequired, CodeRateLimited}

	tests := []struct {
		code   Code
		reason LoginReason
		target error
	}{
		{205, LoginBadCredentials, ErrBadCredentials},
		{209, LoginTwoFactorRequired, ErrTwoFactorRequired},
		{211, LoginBadTwoFactorCode, ErrBadTwoFactorCode},
		{214, LoginCaptchaRequired, ErrCaptchaRequired},
		{227, LoginRateLimited, ErrRateLimited},
	}

	for _, tt := range tests {
		_, err := resolveLogin(&Envelope[LoginResult]{Code: tt.code, Message: "nope"}, allowed...)

		var lerr *LoginError
		require.ErrorAs(t, err, &lerr, "code %d", tt.code)
		assert.Equal(t, tt.reason, lerr.Reason)
		assert.ErrorIs(t, err, ErrLogin)
		assert.ErrorIs(t, err, tt.target)
	}
}

func TestResolveLogin_FallsThrough(t *testing.T) {
	_, err := resolveLogin(&Envelope[LoginResult]{Code: 201}, CodeBadCredentials)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.NotErrorIs(t, err, ErrLogin)

	// 214 is a login code but was not allowed for this call
	_, err = resolveLogin(&Envelope[LoginResult]{Code: 214}, CodeBadTwoFactorCode)
	assert.ErrorIs(t, err, ErrUnknownCode)
}
