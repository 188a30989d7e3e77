package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrRequestNotFound  = errors.New("request not found")
	ErrCallbackNotFound = errors.New("callback code not found")
)
