package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avasiliev/fittrack/internal/client/models"
	"github.com/avasiliev/fittrack/internal/logging"
	"github.com/avasiliev/fittrack/internal/netx"
)

// pingTimeout caps the connectivity probe independently of the regular
// request timeout.
const pingTimeout = 5 * time.Second

// Credentials is the normalized result of a successful remote login or
// registration: an access token plus the user's profile.
type Credentials struct {
	Token   string
	Profile models.UserProfile
}

// RegisterRequest carries the profile fields sent to the remote registration
// endpoint.
type RegisterRequest struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthGateway is the remote authentication surface.
type AuthGateway interface {
	// Login exchanges credentials for a token and profile.
	Login(ctx context.Context, username, password string) (*Credentials, error)

	// Register creates a remote account. The endpoint echoes the profile and a
	// generated id but no token; the gateway synthesizes one.
	Register(ctx context.Context, req RegisterRequest) (*Credentials, error)

	// Ping probes endpoint reachability.
	Ping(ctx context.Context) error
}

// HTTPAuthGateway talks JSON over HTTP to the auth endpoint.
type HTTPAuthGateway struct {
	baseURL string
	client  *http.Client
	log     logging.Logger
}

func NewHTTPAuthGateway(baseURL string, timeout time.Duration, log logging.Logger) *HTTPAuthGateway {
	return &HTTPAuthGateway{
		baseURL: baseURL,
		client:  netx.NewClient(timeout),
		log:     log,
	}
}

// loginResponse is the exact shape of the login endpoint's success body.
// Some deployments return the token under "token" instead of "accessToken";
// both are accepted.
type loginResponse struct {
	ID          json.Number `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	AccessToken string      `json:"accessToken"`
	Token       string      `json:"token"`
}

// errorResponse is the shape of a rejection body.
type errorResponse struct {
	Message string `json:"message"`
}

func (g *HTTPAuthGateway) Login(ctx context.Context, username, password string) (*Credentials, error) {
	req, err := netx.NewJSONRequest(ctx, http.MethodPost, g.baseURL+"/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	status, body, err := netx.Do(g.client, req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: %s", ErrRemoteRejected, rejectionMessage(body, "login failed"))
	}

	var lr loginResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	token := lr.AccessToken
	if token == "" {
		token = lr.Token
	}
	if token == "" {
		return nil, fmt.Errorf("%w: no authentication token received", ErrMalformedResponse)
	}

	return &Credentials{
		Token: token,
		Profile: models.UserProfile{
			ID:        lr.ID.String(),
			Username:  lr.Username,
			Email:     lr.Email,
			FirstName: lr.FirstName,
			LastName:  lr.LastName,
		},
	}, nil
}

// registerResponse is the success body of the registration endpoint: the
// echoed profile plus a generated id. No token is issued remotely.
type registerResponse struct {
	ID        json.Number `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
}

func (g *HTTPAuthGateway) Register(ctx context.Context, r RegisterRequest) (*Credentials, error) {
	req, err := netx.NewJSONRequest(ctx, http.MethodPost, g.baseURL+"/users/add", map[string]string{
		"username":  r.Username,
		"email":     r.Email,
		"firstName": r.FirstName,
		"lastName":  r.LastName,
		"password":  r.Password,
	})
	if err != nil {
		return nil, err
	}

	status, body, err := netx.Do(g.client, req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: %s", ErrRemoteRejected, rejectionMessage(body, "registration failed"))
	}

	var rr registerResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if rr.ID.String() == "" {
		return nil, fmt.Errorf("%w: no user id received", ErrMalformedResponse)
	}

	return &Credentials{
		Token: fmt.Sprintf("mock-token-%s-%d", rr.ID.String(), time.Now().UnixMilli()),
		Profile: models.UserProfile{
			ID:        rr.ID.String(),
			Username:  rr.Username,
			Email:     rr.Email,
			FirstName: rr.FirstName,
			LastName:  rr.LastName,
		},
	}, nil
}

func (g *HTTPAuthGateway) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	req, err := netx.NewJSONRequest(ctx, http.MethodGet, g.baseURL+"/test", nil)
	if err != nil {
		return err
	}

	status, _, err := netx.Do(g.client, req)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("endpoint returned status %d", status)
	}
	return nil
}

// rejectionMessage extracts the server's message from a rejection body,
// falling back to a generic one when the body is not decodable.
func rejectionMessage(body []byte, fallback string) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Message != "" {
		return er.Message
	}
	return fallback
}
