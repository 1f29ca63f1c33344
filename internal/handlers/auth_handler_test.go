package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "eixo/internal/errors"
	"eixo/internal/models"
	"eixo/internal/services"
	"eixo/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// --- shared test helpers ---

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, code string) {
	t.Helper()
	result := parseJSON(t, rec)
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %s", rec.Body.String())
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %v", code, errObj["code"])
	}
}

// --- mock user service ---

type mockUserService struct {
	signupFn func(name, email, cpf, phone, password string, birthDate *time.Time) (*models.User, error)
	loginFn  func(email, password string) (*models.User, error)
}

func (m *mockUserService) Signup(name, email, cpf, phone, password string, birthDate *time.Time) (*models.User, error) {
	if m.signupFn != nil {
		return m.signupFn(name, email, cpf, phone, password, birthDate)
	}
	return &models.User{}, nil
}

func (m *mockUserService) Login(email, password string) (*models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(email, password)
	}
	return &models.User{}, nil
}

var _ services.UserServicer = (*mockUserService)(nil)

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("/auth")
	auth.POST("/signup", handler.Signup)
	auth.POST("/login", handler.Login)
	return r
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		userSvc := &mockUserService{
			signupFn: func(name, email, cpf, phone, password string, birthDate *time.Time) (*models.User, error) {
				return &models.User{
					Base:  models.Base{ID: 1},
					Name:  name,
					Email: email,
					CPF:   cpf,
				}, nil
			},
		}
		handler := NewAuthHandler(userSvc)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/signup",
			`{"name":"Alice","email":"alice@example.com","cpf":"12345678901","phone":"+5511999990000","password":"password123","birthDate":"1990-05-10"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		user := result["user"].(map[string]interface{})
		if user["email"] != "alice@example.com" {
			t.Errorf("expected email in response, got %v", user["email"])
		}
		if _, exposed := user["password"]; exposed {
			t.Error("password must never be serialized")
		}
	})

	t.Run("returns 400 on missing email", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/signup",
			`{"name":"Alice","cpf":"12345678901","password":"password123"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed birth date", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/signup",
			`{"name":"Alice","email":"alice@example.com","cpf":"12345678901","password":"password123","birthDate":"10/05/1990"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "INVALID_INPUT")
	})

	t.Run("returns 400 when identity already registered", func(t *testing.T) {
		userSvc := &mockUserService{
			signupFn: func(_, _, _, _, _ string, _ *time.Time) (*models.User, error) {
				return nil, apperrors.ErrDuplicateIdentity
			},
		}
		handler := NewAuthHandler(userSvc)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/signup",
			`{"name":"Alice","email":"alice@example.com","cpf":"12345678901","password":"password123"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "DUPLICATE_IDENTITY")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		userSvc := &mockUserService{
			loginFn: func(email, password string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: 7}, Email: email, Name: "Alice"}, nil
			},
		}
		handler := NewAuthHandler(userSvc)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/login",
			`{"email":"alice@example.com","password":"password123"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		user := result["user"].(map[string]interface{})
		if user["id"].(float64) != 7 {
			t.Errorf("expected user id 7, got %v", user["id"])
		}
	})

	t.Run("returns 401 on bad credentials", func(t *testing.T) {
		userSvc := &mockUserService{
			loginFn: func(_, _ string) (*models.User, error) {
				return nil, apperrors.ErrInvalidCredentials
			},
		}
		handler := NewAuthHandler(userSvc)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/login",
			`{"email":"alice@example.com","password":"wrong"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "INVALID_CREDENTIALS")
	})

	t.Run("returns 400 on missing password", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/login", `{"email":"alice@example.com"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
