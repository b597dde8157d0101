package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"

	"fitlife/internal/service"
	"fitlife/internal/validate"
)

// Session tokens match the original 30-day session lifetime.
const tokenTTL = 30 * 24 * time.Hour

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	svc       *service.AuthService
	jwtSecret []byte
	log       *zap.Logger

	googleOAuthConfig *oauth2.Config
	githubOAuthConfig *oauth2.Config
	secureCookies     bool
}

type OAuthCredentials struct {
	GoogleClientID     string
	GoogleClientSecret string
	GithubClientID     string
	GithubClientSecret string
	RedirectBase       string // e.g. https://host/api/auth
}

func NewAuthHandler(svc *service.AuthService, jwtSecret []byte, oc OAuthCredentials, secureCookies bool, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		svc:       svc,
		jwtSecret: jwtSecret,
		log:       log,
		googleOAuthConfig: &oauth2.Config{
			ClientID:     oc.GoogleClientID,
			ClientSecret: oc.GoogleClientSecret,
			RedirectURL:  oc.RedirectBase + "/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		githubOAuthConfig: &oauth2.Config{
			ClientID:     oc.GithubClientID,
			ClientSecret: oc.GithubClientSecret,
			RedirectURL:  oc.RedirectBase + "/github/callback",
			Scopes:       []string{"user:email"},
			Endpoint:     github.Endpoint,
		},
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in validate.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.svc.Register(r.Context(), in)
	if err != nil {
		var ie *service.InvalidInputError
		switch {
		case errors.As(err, &ie):
			writeError(w, http.StatusBadRequest, ie.Message)
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, "Email already exists")
		default:
			writeError(w, http.StatusInternalServerError, "An error occurred during registration")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "User created successfully",
		"userId":  user.ID,
	})
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.svc.Login(r.Context(), c.Email, c.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "An error occurred during login")
		return
	}
	h.respondWithToken(w, user.ID)
}

// GoogleAuth redirects to the Google consent screen with a CSRF state cookie.
func (h *AuthHandler) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	state := h.setStateCookie(w)
	url := h.googleOAuthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	token, ok := h.exchange(w, r, h.googleOAuthConfig, "google")
	if !ok {
		return
	}

	client := h.googleOAuthConfig.Client(r.Context(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		h.log.Error("could not fetch google user info", zap.Error(err))
		writeError(w, http.StatusBadGateway, "OAuth authentication failed")
		return
	}
	defer resp.Body.Close()

	var userInfo struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		h.log.Error("could not decode google user info", zap.Error(err))
		writeError(w, http.StatusBadGateway, "OAuth authentication failed")
		return
	}

	h.finishOAuth(w, r, "google", userInfo.Name, userInfo.Email)
}

// GitHubAuth redirects to the GitHub consent screen with a CSRF state cookie.
func (h *AuthHandler) GitHubAuth(w http.ResponseWriter, r *http.Request) {
	state := h.setStateCookie(w)
	url := h.githubOAuthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (h *AuthHandler) GitHubCallback(w http.ResponseWriter, r *http.Request) {
	token, ok := h.exchange(w, r, h.githubOAuthConfig, "github")
	if !ok {
		return
	}

	client := h.githubOAuthConfig.Client(r.Context(), token)
	resp, err := client.Get("https://api.github.com/user")
	if err != nil {
		h.log.Error("could not fetch github user info", zap.Error(err))
		writeError(w, http.StatusBadGateway, "OAuth authentication failed")
		return
	}
	defer resp.Body.Close()

	var userInfo struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Login string `json:"login"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		h.log.Error("could not decode github user info", zap.Error(err))
		writeError(w, http.StatusBadGateway, "OAuth authentication failed")
		return
	}
	name := userInfo.Name
	if name == "" {
		name = userInfo.Login
	}

	h.finishOAuth(w, r, "github", name, userInfo.Email)
}

// exchange validates the state cookie and swaps the authorization code for a
// provider token. Writes the error response itself on failure.
func (h *AuthHandler) exchange(w http.ResponseWriter, r *http.Request, cfg *oauth2.Config, provider string) (*oauth2.Token, bool) {
	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || state == "" || cookie.Value != state {
		h.log.Warn("oauth state validation failed", zap.String("provider", provider))
		writeError(w, http.StatusBadRequest, "OAuth authentication failed")
		return nil, false
	}
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Value: "", Path: "/", MaxAge: -1})

	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "OAuth authentication failed")
		return nil, false
	}
	token, err := cfg.Exchange(r.Context(), code)
	if err != nil {
		h.log.Error("oauth token exchange failed", zap.String("provider", provider), zap.Error(err))
		writeError(w, http.StatusBadGateway, "OAuth authentication failed")
		return nil, false
	}
	return token, true
}

func (h *AuthHandler) finishOAuth(w http.ResponseWriter, r *http.Request, provider, name, email string) {
	user, err := h.svc.UpsertOAuthUser(r.Context(), provider, name, email)
	if err != nil {
		var ie *service.InvalidInputError
		if errors.As(err, &ie) {
			writeError(w, http.StatusBadRequest, ie.Message)
			return
		}
		writeError(w, http.StatusInternalServerError, "OAuth authentication failed")
		return
	}
	h.respondWithToken(w, user.ID)
}

func (h *AuthHandler) setStateCookie(w http.ResponseWriter) string {
	b := make([]byte, 32)
	rand.Read(b)
	state := base64.RawURLEncoding.EncodeToString(b)
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   600,
	})
	return state
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, userID string) {
	token, err := h.issueJWT(userID)
	if err != nil {
		h.log.Error("could not issue token", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Could not issue token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *AuthHandler) issueJWT(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(tokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}
