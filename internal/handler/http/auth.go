package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/auth"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/employee"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/middleware"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/response"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/jwt"
	authservice "github.com/shalomhq/shiftboard-backend-go/internal/service/auth"
	employeeservice "github.com/shalomhq/shiftboard-backend-go/internal/service/employee"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	UpdateMe(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService     authservice.Service
	employeeService employeeservice.Service
	jwtService      jwt.Service
}

func NewAuthHandler(authService authservice.Service, employeeService employeeservice.Service, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{
		authService:     authService,
		employeeService: employeeService,
		jwtService:      jwtService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, expiresAt, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Warn("Login failed", "email", loginReq.Email)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.AuthTokenCookie(result.Token, expiresAt))
	slog.Info("Login succeeded", "employee_id", result.Employee.ID)
	response.Success(w, result)
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := registerReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, expiresAt, err := a.authService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.AuthTokenCookie(result.Token, expiresAt))
	slog.Info("Account registered", "employee_id", result.Employee.ID)
	response.Created(w, "Account created", result)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, a.jwtService.ClearAuthCookie())
	response.SuccessWithMessage(w, "Logged out", nil)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrUnauthorized)
		return
	}

	emp, err := a.authService.Me(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// UpdateMe implements AuthHandler.
func (a *AuthHandlerImpl) UpdateMe(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrUnauthorized)
		return
	}

	var updateReq employee.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = employeeID

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := a.employeeService.UpdateProfile(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateMe service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated", emp)
}
