package service

import (
	"errors"
	"strings"
)

var (
	ErrValidation    = errors.New("validation")     // 400, field-specific message
	ErrNotFound      = errors.New("not found")      // 404
	ErrNotConfigured = errors.New("not configured") // soft-fail envelope, 200
	ErrNoResults     = errors.New("no results")     // soft-fail envelope, 200
	ErrUpstream      = errors.New("upstream")       // 500, generic message
)

// Reason strips the sentinel prefix off a wrapped error so the boundary can
// return the user-actionable part ("missing field: email") on its own.
func Reason(err, sentinel error) string {
	return strings.TrimSpace(strings.TrimPrefix(err.Error(), sentinel.Error()+":"))
}
