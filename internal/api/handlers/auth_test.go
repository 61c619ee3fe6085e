package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-backend/internal/api/middleware"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repositories"
	"portfolio-backend/internal/utils"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type stubMailer struct {
	sent []sentMail
	err  error
}

func (m *stubMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func registerUser(t *testing.T, h *AuthHandler, name, email, password string) utils.Payload {
	t.Helper()
	req := jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
		"isAdmin":  true,
	})
	rec := httptest.NewRecorder()
	h.Register(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	return decodePayload(t, rec)
}

func TestRegisterReturnsTokenAndHidesPassword(t *testing.T) {
	setupDB(t)
	h := NewAuthHandler(&stubMailer{})

	payload := registerUser(t, h, "Admin", "admin@example.com", "hunter22")
	assert.True(t, payload.Success)

	data, ok := payload.Data.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "admin@example.com", data["email"])
	assert.NotEmpty(t, data["token"])
	assert.NotContains(t, data, "password")

	var user models.User
	assert.NoError(t, repositories.DB.Where("email = ?", "admin@example.com").First(&user).Error)
	assert.NotEqual(t, "hunter22", user.Password)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	setupDB(t)
	h := NewAuthHandler(&stubMailer{})
	registerUser(t, h, "Admin", "admin@example.com", "hunter22")

	req := jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]any{
		"name":     "Imposter",
		"email":    "admin@example.com",
		"password": "different",
	})
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodePayload(t, rec)
	assert.Contains(t, payload.Message, "already exists")
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	setupDB(t)
	h := NewAuthHandler(&stubMailer{})

	req := jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]any{
		"name":     "Admin",
		"email":    "admin@example.com",
		"password": "short",
	})
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	setupDB(t)
	h := NewAuthHandler(&stubMailer{})
	registerUser(t, h, "Admin", "admin@example.com", "hunter22")

	req := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "admin@example.com",
		"password": "hunter22",
	})
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodePayload(t, rec)
	assert.True(t, payload.Success)

	data, ok := payload.Data.(map[string]any)
	assert.True(t, ok)
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, true, data["isAdmin"])
}

func TestLoginWrongPassword(t *testing.T) {
	setupDB(t)
	h := NewAuthHandler(&stubMailer{})
	registerUser(t, h, "Admin", "admin@example.com", "hunter22")

	req := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodePayload(t, rec).Message)
}

// Unknown emails and wrong passwords must be indistinguishable.
func TestLoginUnknownEmailSameMessage(t *testing.T) {
	setupDB(t)
	h := NewAuthHandler(&stubMailer{})

	req := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodePayload(t, rec).Message)
}

func TestProfileRequiresValidToken(t *testing.T) {
	setupDB(t)
	h := NewAuthHandler(&stubMailer{})
	payload := registerUser(t, h, "Admin", "admin@example.com", "hunter22")
	token := payload.Data.(map[string]any)["token"].(string)

	protected := middleware.Protect(http.HandlerFunc(h.Profile))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer garbage.token.here")
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodePayload(t, rec).Data.(map[string]any)
	assert.Equal(t, "admin@example.com", data["email"])
}

func TestAdminMiddlewareRejectsNonAdmin(t *testing.T) {
	setupDB(t)
	h := NewAuthHandler(&stubMailer{})

	req := jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]any{
		"name":     "Visitor",
		"email":    "visitor@example.com",
		"password": "hunter22",
	})
	rec := httptest.NewRecorder()
	h.Register(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	token := decodePayload(t, rec).Data.(map[string]any)["token"].(string)

	guarded := middleware.Admin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	adminReq := httptest.NewRequest(http.MethodPost, "/api/projects", nil)
	adminReq.Header.Set("Authorization", "Bearer "+token)
	adminRec := httptest.NewRecorder()
	guarded.ServeHTTP(adminRec, adminReq)

	assert.Equal(t, http.StatusForbidden, adminRec.Code)
}

func TestForgotPasswordUnknownEmailIsGeneric(t *testing.T) {
	setupDB(t)
	mail := &stubMailer{}
	h := NewAuthHandler(mail)

	req := jsonRequest(t, http.MethodPost, "/api/auth/forgotpassword", map[string]any{
		"email": "nobody@example.com",
	})
	rec := httptest.NewRecorder()
	h.ForgotPassword(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, genericResetMessage, decodePayload(t, rec).Message)
	assert.Empty(t, mail.sent)
}

// resetTokenFromMail pulls the raw token out of the emailed reset link.
func resetTokenFromMail(t *testing.T, body string) string {
	t.Helper()
	base := config.Envs.ResetURLBase + "/"
	idx := strings.Index(body, base)
	assert.GreaterOrEqual(t, idx, 0)
	fields := strings.Fields(body[idx+len(base):])
	assert.NotEmpty(t, fields)
	return fields[0]
}

func TestPasswordResetFlow(t *testing.T) {
	setupDB(t)
	mail := &stubMailer{}
	h := NewAuthHandler(mail)
	registerUser(t, h, "Admin", "admin@example.com", "hunter22")

	req := jsonRequest(t, http.MethodPost, "/api/auth/forgotpassword", map[string]any{
		"email": "admin@example.com",
	})
	rec := httptest.NewRecorder()
	h.ForgotPassword(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, mail.sent, 1)
	assert.Equal(t, "admin@example.com", mail.sent[0].To)

	token := resetTokenFromMail(t, mail.sent[0].Body)

	// Only the digest is persisted.
	var user models.User
	assert.NoError(t, repositories.DB.Where("email = ?", "admin@example.com").First(&user).Error)
	assert.NotEmpty(t, user.ResetPasswordToken)
	assert.NotEqual(t, token, user.ResetPasswordToken)
	assert.NotNil(t, user.ResetPasswordExpires)

	resetReq := jsonRequest(t, http.MethodPut, "/api/auth/resetpassword/"+token, map[string]any{
		"password": "brand-new-pass",
	})
	resetReq.SetPathValue("token", token)
	resetRec := httptest.NewRecorder()
	h.ResetPassword(resetRec, resetReq)
	assert.Equal(t, http.StatusOK, resetRec.Code)

	// The token is single use.
	againReq := jsonRequest(t, http.MethodPut, "/api/auth/resetpassword/"+token, map[string]any{
		"password": "another-pass",
	})
	againReq.SetPathValue("token", token)
	againRec := httptest.NewRecorder()
	h.ResetPassword(againRec, againReq)
	assert.Equal(t, http.StatusBadRequest, againRec.Code)

	loginReq := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "admin@example.com",
		"password": "brand-new-pass",
	})
	loginRec := httptest.NewRecorder()
	h.Login(loginRec, loginReq)
	assert.Equal(t, http.StatusOK, loginRec.Code)
}

func TestResetPasswordBogusToken(t *testing.T) {
	setupDB(t)
	h := NewAuthHandler(&stubMailer{})

	req := jsonRequest(t, http.MethodPut, "/api/auth/resetpassword/bogus", map[string]any{
		"password": "long-enough",
	})
	req.SetPathValue("token", "bogus")
	rec := httptest.NewRecorder()
	h.ResetPassword(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodePayload(t, rec).Message, "Invalid or expired")
}

func TestForgotPasswordMailFailureClearsToken(t *testing.T) {
	setupDB(t)
	mail := &stubMailer{err: errors.New("smtp down")}
	h := NewAuthHandler(mail)
	registerUser(t, h, "Admin", "admin@example.com", "hunter22")

	req := jsonRequest(t, http.MethodPost, "/api/auth/forgotpassword", map[string]any{
		"email": "admin@example.com",
	})
	rec := httptest.NewRecorder()
	h.ForgotPassword(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var user models.User
	assert.NoError(t, repositories.DB.Where("email = ?", "admin@example.com").First(&user).Error)
	assert.Empty(t, user.ResetPasswordToken)
	assert.Nil(t, user.ResetPasswordExpires)
}
