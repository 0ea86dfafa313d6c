package services

import "errors"

// Sentinels the controllers map onto HTTP statuses: ErrInvalid → 400,
// ErrNotFound → 404, the guard rejections → 409.
var (
	ErrInvalid  = errors.New("invalid input")
	ErrNotFound = errors.New("not found")

	// ErrHasSpecials blocks a menu item delete while specials reference it.
	ErrHasSpecials = errors.New("menu item is on special, remove its specials first")
	// ErrSideInUse blocks a side delete while items still offer it.
	ErrSideInUse = errors.New("side is in use, detach it from menu items first")
)
