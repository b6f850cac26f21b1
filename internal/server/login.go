package server

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"hexago/internal/auth"
)

// AuthController serves the Google login flow and token endpoints. The
// cookie session holds only the OAuth handshake state nonce; request
// authentication itself is stateless bearer tokens.
type AuthController struct {
	auth             auth.Authenticator
	issuer           *auth.TokenIssuer
	frontRedirectURI string
}

// NewAuthController returns a controller using authenticator for the OAuth
// handshake and issuer for minting bearer tokens.
func NewAuthController(authenticator auth.Authenticator, issuer *auth.TokenIssuer, frontRedirectURI string) *AuthController {
	return &AuthController{
		auth:             authenticator,
		issuer:           issuer,
		frontRedirectURI: frontRedirectURI,
	}
}

// Register attaches the login routes to router.
func (a *AuthController) Register(router gin.IRouter) {
	router.GET("/login", a.login)
	router.GET("/auth", a.callback)
	router.POST("/auth/refresh", a.refresh)
	router.GET("/me", a.me)
}

// login redirects to the provider authorization URL. The state parameter
// carries a random nonce plus the caller-supplied post-login redirect URI.
func (a *AuthController) login(c *gin.Context) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		failure(c, err)
		return
	}
	nonce := base64.RawURLEncoding.EncodeToString(b)

	session := sessions.Default(c)
	session.Set("state", nonce)
	if err := session.Save(); err != nil {
		failure(c, err)
		return
	}

	state := url.Values{
		"nonce":        {nonce},
		"redirect_uri": {c.Query("redirect_uri")},
	}
	c.Redirect(http.StatusTemporaryRedirect, a.auth.AuthCodeURL(state.Encode()))
}

// callback handles the provider redirect: it validates the state nonce,
// resolves the authorization code to a verified email, mints both tokens,
// and forwards the browser to the original redirect URI.
func (a *AuthController) callback(c *gin.Context) {
	state, err := url.ParseQuery(c.Query("state"))
	if err != nil {
		validationFailed(c, err)
		return
	}

	session := sessions.Default(c)
	if nonce := state.Get("nonce"); nonce == "" || nonce != session.Get("state") {
		unauthenticated(c, "Invalid state parameter")
		return
	}
	session.Delete("state")
	_ = session.Save()

	email, err := a.auth.Identity(c.Request.Context(), c.Query("code"))
	if err != nil {
		unauthenticated(c, "Not authenticated")
		return
	}

	accessToken, err := a.issuer.Mint(email, auth.AccessTokenTTL)
	if err != nil {
		failure(c, err)
		return
	}
	refreshToken, err := a.issuer.Mint(email, auth.RefreshTokenTTL)
	if err != nil {
		failure(c, err)
		return
	}

	redirectURI := state.Get("redirect_uri")
	if redirectURI == "" {
		redirectURI = a.frontRedirectURI
	}

	target := url.Values{
		"token":         {accessToken},
		"refresh_token": {refreshToken},
	}
	c.Redirect(http.StatusTemporaryRedirect, redirectURI+"?"+target.Encode())
}

// refreshRequest is the payload of POST /auth/refresh.
type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// refresh mints a fresh access token for the subject of a valid refresh
// token.
func (a *AuthController) refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	claims, err := a.issuer.Verify(req.RefreshToken)
	if err != nil {
		unauthenticated(c, "Invalid token")
		return
	}

	accessToken, err := a.issuer.Mint(claims.Subject, auth.AccessTokenTTL)
	if err != nil {
		failure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

// me returns the decoded claims of the token passed as a query parameter.
func (a *AuthController) me(c *gin.Context) {
	raw := c.Query("token")
	if raw == "" {
		unauthenticated(c, "Not authenticated")
		return
	}

	claims, err := a.issuer.Verify(raw)
	if err != nil {
		unauthenticated(c, "Invalid token")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sub": claims.Subject,
		"exp": claims.ExpiresAt.Unix(),
	})
}
