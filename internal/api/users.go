package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"firststeps/internal/metrics"
	"firststeps/internal/store"
)

// usersHandler provides REST handlers for user endpoints.
type usersHandler struct {
	users  store.UserStoreIface
	logger *zap.Logger
}

// registerUserRoutes registers user routes on r.
func registerUserRoutes(r chi.Router, users store.UserStoreIface, logger *zap.Logger) {
	h := &usersHandler{users: users, logger: logger}
	r.Post("/users", h.Create)
	r.Get("/users", h.List)
	r.Get("/users/{id}", h.Get)
}

// Create registers a new user. The server assigns the short hex ID and the
// next user_index; on an ID collision the insert is retried once with a fresh
// ID.
// POST /users
//
// @Summary      Create a user
// @Description  Registers a new user with a server-assigned ID and sequence number.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        body  body      CreateUserRequest  true  "User to create"
// @Success      201   {object}  UserResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /users [post]
func (h *usersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, validationMessage(err), "VALIDATION_FAILED")
		return
	}

	u, err := h.users.Create(r.Context(), req.FullName, req.Email)
	if err != nil {
		h.logger.Error("create user", zap.String("email", req.Email), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.UsersCreatedTotal.Inc()
	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

// Get returns a single user by ID.
// GET /users/{id}
//
// @Summary      Get a user
// @Description  Returns the user matching the short hex ID.
// @Tags         Users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  UserResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *usersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// A malformed ID cannot exist, so skip the lookup.
	if err := store.ValidateID(id); err != nil {
		metrics.UserLookupsTotal.WithLabelValues("miss").Inc()
		writeError(w, http.StatusNotFound, "User not found", "USER_NOT_FOUND")
		return
	}

	u, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.UserLookupsTotal.WithLabelValues("miss").Inc()
			writeError(w, http.StatusNotFound, "User not found", "USER_NOT_FOUND")
			return
		}
		h.logger.Error("get user", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.UserLookupsTotal.WithLabelValues("hit").Inc()
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// List returns users ordered by user_index, one page at a time.
// GET /users
//
// @Summary      List users
// @Description  Returns users ordered by sequence number with cursor pagination.
// @Tags         Users
// @Produce      json
// @Param        cursor  query     string  false  "Opaque pagination cursor"
// @Param        limit   query     int     false  "Page size (default 50, max 200)"
// @Success      200     {object}  UserListResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /users [get]
func (h *usersHandler) List(w http.ResponseWriter, r *http.Request) {
	afterIndex, limit := parsePagination(r)

	users, err := h.users.List(r.Context(), afterIndex, limit)
	if err != nil {
		h.logger.Error("list users", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	total, err := h.users.Count(r.Context())
	if err != nil {
		h.logger.Error("count users", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	metrics.UsersTotal.Set(float64(total))

	resp := &UserListResponse{
		Users: make([]UserResponse, 0, len(users)),
		Total: total,
	}
	for _, u := range users {
		resp.Users = append(resp.Users, toUserResponse(u))
	}
	if len(users) == limit {
		c := encodeCursor(users[len(users)-1].UserIndex)
		resp.NextCursor = &c
	}

	writeJSON(w, http.StatusOK, resp)
}

func toUserResponse(u *store.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserIndex: u.UserIndex,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
