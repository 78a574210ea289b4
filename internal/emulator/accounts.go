package emulator

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrHardwareNotActive  = errors.New("hardware code not activated")
	ErrBadActivationCode  = errors.New("bad activation code")
	ErrInvalidToken       = errors.New("invalid access token")
	ErrSessionNotFound    = errors.New("session not found")
	ErrProfileNotFound    = errors.New("profile not found")
)

// Account is an emulated game account.
type Account struct {
	Email    string
	Password string
	ID       uint64
	// ActivationCode, when set, must be submitted once per fingerprint
	// before login succeeds.
	ActivationCode string
	// ProfileIDs are the ids accepted by profile selection. Defaults to the
	// ids of the built-in profile fixtures.
	ProfileIDs []string
}

type account struct {
	Account
	passwordHash []byte
	activated    map[string]bool
}

type session struct {
	id          string
	email       string
	fingerprint string
	selected    string
}

// accounts holds credentials, issued tokens and sessions.
type accounts struct {
	mu       sync.Mutex
	secret   []byte
	ttl      time.Duration
	byEmail  map[string]*account
	sessions map[string]*session
}

func newAccounts(secret []byte, ttl time.Duration) *accounts {
	return &accounts{
		secret:   secret,
		ttl:      ttl,
		byEmail:  make(map[string]*account),
		sessions: make(map[string]*session),
	}
}

// add stores the account. The launcher sends md5(password), so that is
// what gets hashed.
func (a *accounts) add(acc Account) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(md5Hex(acc.Password)), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if len(acc.ProfileIDs) == 0 {
		acc.ProfileIDs = []string{PMCProfileID, ScavProfileID}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.byEmail[strings.ToLower(acc.Email)] = &account{
		Account:      acc,
		passwordHash: hash,
		activated:    make(map[string]bool),
	}
	return nil
}

// login checks credentials and issues a signed access token.
func (a *accounts) login(email, passHash, fingerprint string) (string, *Account, error) {
	a.mu.Lock()
	acc, ok := a.byEmail[strings.ToLower(email)]
	a.mu.Unlock()
	if !ok {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(passHash)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	a.mu.Lock()
	activated := acc.ActivationCode == "" || acc.activated[fingerprint]
	a.mu.Unlock()
	if !activated {
		return "", nil, ErrHardwareNotActive
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  acc.Email,
		"aid":  acc.ID,
		"hwid": fingerprint,
		"exp":  now.Add(a.ttl).Unix(),
		"iat":  now.Unix(),
	})

	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	out := acc.Account
	return tokenString, &out, nil
}

func (a *accounts) activate(email, fingerprint, code string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	acc, ok := a.byEmail[strings.ToLower(email)]
	if !ok || acc.ActivationCode == "" || acc.ActivationCode != code {
		return ErrBadActivationCode
	}
	acc.activated[fingerprint] = true
	return nil
}

// startSession validates an access token and opens a session for the
// fingerprint it was issued to.
func (a *accounts) startSession(tokenString, fingerprint string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	email, _ := claims["sub"].(string)
	hwid, _ := claims["hwid"].(string)
	if email == "" || hwid != fingerprint {
		return "", ErrInvalidToken
	}

	s := &session{
		id:          strings.ReplaceAll(uuid.NewString(), "-", ""),
		email:       email,
		fingerprint: fingerprint,
	}

	a.mu.Lock()
	a.sessions[s.id] = s
	a.mu.Unlock()

	return s.id, nil
}

// addSession registers a session id directly, as if issued earlier.
func (a *accounts) addSession(id, email, fingerprint, selected string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessions[id] = &session{id: id, email: email, fingerprint: fingerprint, selected: selected}
}

func (a *accounts) session(id string) (session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.sessions[id]
	if !ok {
		return session{}, ErrSessionNotFound
	}
	return *s, nil
}

func (a *accounts) selectProfile(sessionID, profileID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	acc, ok := a.byEmail[strings.ToLower(s.email)]
	if !ok {
		return ErrSessionNotFound
	}
	for _, id := range acc.ProfileIDs {
		if id == profileID {
			s.selected = profileID
			return nil
		}
	}
	return ErrProfileNotFound
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
