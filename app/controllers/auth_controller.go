package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MUCCHU/imf-gadgets-api/app/dto"
	jwtutil "github.com/MUCCHU/imf-gadgets-api/app/jwt"
	"github.com/MUCCHU/imf-gadgets-api/app/services"
)

type AuthController struct {
	Users  *services.UserService
	Signer *jwtutil.Signer
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Users: users, Signer: signer}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	u, err := c.Users.Register(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			writeError(w, http.StatusConflict, "Username already taken")
			return
		}
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.RegisterResponse{Message: "User registered successfully", UserID: u.ID})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	u, err := c.Users.ValidateCredentials(req.Username, req.Password)
	if err != nil {
		// Unknown username and wrong password answer identically.
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		internalError(w, r, err)
		return
	}
	token, err := c.Signer.Sign(u.ID, u.Username)
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.LoginResponse{Message: "Login successful", Token: token})
}
