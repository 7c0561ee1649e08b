// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/crypto/bcrypt"

	"gujarattaxi/internal/middleware"
	"gujarattaxi/internal/models"
	"gujarattaxi/internal/session"
	"gujarattaxi/internal/store"
)

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	sessions *session.Store
	users    *store.UserStore
	roles    *store.RoleStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, users *store.UserStore, roles *store.RoleStore) *Auth {
	return &Auth{sessions: sessions, users: users, roles: roles}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validates credentials and opens a session. Accounts with TOTP
// enrolled get a session with the 2FA challenge still pending; all other
// admin endpoints stay locked until Verify2FA succeeds.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := a.users.FindByEmail(req.Email)
	if err != nil {
		respondInternal(w, "login lookup failed", err)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	roleSlug := ""
	if user.RoleID != nil {
		role, err := a.roles.FindByID(*user.RoleID)
		if err != nil {
			respondInternal(w, "login role lookup failed", err)
			return
		}
		if role != nil {
			roleSlug = role.Slug
		}
	}

	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:    user.ID,
		Email:     user.Email,
		UserName:  user.UserName,
		RoleSlug:  roleSlug,
		TwoFADone: !user.HasTOTP(),
	})
	if err != nil {
		respondInternal(w, "session create failed", err)
		return
	}

	respondOK(w, http.StatusOK, "Logged in", envelope{
		"user": envelope{
			"id":       user.ID,
			"userName": user.UserName,
			"email":    user.Email,
			"roleSlug": roleSlug,
		},
		"requiresTwoFA": user.HasTOTP(),
	})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	respondOK(w, http.StatusOK, "Logged out", nil)
}

// Me returns the authenticated principal's identity and permissions.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var perms models.Permissions
	if sess.RoleSlug != "" {
		role, err := a.roles.FindBySlug(sess.RoleSlug)
		if err != nil {
			respondInternal(w, "role lookup failed", err)
			return
		}
		if role != nil {
			perms = role.Permissions
		}
	}

	respondOK(w, http.StatusOK, "OK", envelope{
		"user": envelope{
			"id":       sess.UserID,
			"userName": sess.UserName,
			"email":    sess.Email,
			"roleSlug": sess.RoleSlug,
		},
		"permissions": perms,
	})
}

// Setup2FA generates a TOTP secret for the authenticated user and
// returns the otpauth QR code as a base64 PNG. Enrollment completes on
// the first successful Verify2FA.
func (a *Auth) Setup2FA(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "GujaratTaxi",
		AccountName: sess.Email,
	})
	if err != nil {
		respondInternal(w, "totp generate failed", err)
		return
	}

	secret := key.Secret()
	if err := a.users.SetTOTP(sess.UserID, &secret, false); err != nil {
		respondInternal(w, "save totp secret failed", err)
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		respondInternal(w, "qr code generation failed", err)
		return
	}

	respondOK(w, http.StatusOK, "Scan the QR code and verify", envelope{
		"secret": secret,
		"qrCode": base64.StdEncoding.EncodeToString(qrPNG),
	})
}

type verifyRequest struct {
	Code string `json:"code"`
}

// Verify2FA validates the TOTP code, completing enrollment on first use
// and marking the session's challenge as done.
func (a *Auth) Verify2FA(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req verifyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := a.users.FindByID(sess.UserID)
	if err != nil || user == nil {
		respondInternal(w, "user lookup for 2fa failed", err)
		return
	}
	if user.TOTPSecret == nil {
		respondError(w, http.StatusBadRequest, "Two-factor setup has not been started")
		return
	}

	if !totp.Validate(req.Code, *user.TOTPSecret) {
		respondError(w, http.StatusUnauthorized, "Invalid code")
		return
	}

	if !user.TOTPEnabled {
		if err := a.users.SetTOTP(user.ID, user.TOTPSecret, true); err != nil {
			respondInternal(w, "enable totp failed", err)
			return
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		respondInternal(w, "session update failed", err)
		return
	}

	respondOK(w, http.StatusOK, "Two-factor verification complete", nil)
}
