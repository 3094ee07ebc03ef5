package api

import "time"

// --- User types ---

// CreateUserRequest is the request body for POST /users.
type CreateUserRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
}

// UserResponse is the JSON representation of a user. The Mongo _id is never
// part of it.
type UserResponse struct {
	ID        string    `json:"id"`
	UserIndex int64     `json:"user_index"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse is the paginated response for GET /users.
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Total      int64          `json:"total"`
	NextCursor *string        `json:"next_cursor"`
}

// --- File types ---

// FileResponse is the JSON representation of a file in the GridFS bucket.
type FileResponse struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Length      int64     `json:"length"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// FileListResponse is the response for GET /files.
type FileListResponse struct {
	Files []FileResponse `json:"files"`
}

// --- Error type ---

// ErrorResponse is the standard error body returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
