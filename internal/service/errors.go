package service

import "errors"

var (
	// ErrEmptyText rejects tasks and favorites whose text trims to nothing.
	ErrEmptyText = errors.New("text is empty")
	// ErrDuplicateFavorite rejects a favorite whose text the user already saved.
	ErrDuplicateFavorite = errors.New("favorite with this text already exists")
	// ErrFavoriteNotFound is returned when stamping from a missing template.
	ErrFavoriteNotFound = errors.New("favorite not found")
)
