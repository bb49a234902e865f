package httpapi

import "net/http"

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logFailure(ctx, "login failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, loginDTO{
		Token:     result.AccessToken,
		ExpiresAt: result.ExpiresAt,
		Email:     result.Principal.Email,
	})
}

// SeedAdmin creates the default admin account. It is only routed outside
// production.
func (h *Handler) SeedAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SeedAdmin")
	defer span.End()

	var req seedAdminRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	admin, created, err := h.authService.SeedAdmin(ctx, req.Email, req.Password)
	if err != nil {
		h.logFailure(ctx, "seed admin failed", err)
		writeError(ctx, w, err)
		return
	}

	if !created {
		writeSuccess(ctx, w, http.StatusOK, seedAdminDTO{Message: "Admin already exists", Email: admin.Email})
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, seedAdminDTO{Message: "Admin created", Email: admin.Email})
}
