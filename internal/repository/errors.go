package repository

import "errors"

var (
	ErrNotFound         = errors.New("entity not found")
	ErrAlreadyExists    = errors.New("entity already exists")
	ErrConnectionFailed = errors.New("backend connection failed")
	ErrQueryFailed      = errors.New("backend query failed")
	ErrStoreClosed      = errors.New("store is closed")
)
