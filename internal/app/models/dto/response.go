package dto

import "time"

// APIResponse is the envelope for all successful (and error) responses.
type APIResponse struct {
	Data       interface{}     `json:"data,omitempty"`
	Error      *ErrorDetail    `json:"error,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// PaginationInfo describes the page window of a list response.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}

// SuccessResponse represents a bare confirmation message.
type SuccessResponse struct {
	Message string `json:"message"`
}
