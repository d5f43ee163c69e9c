package service

import "errors"

var (
	ErrEpisodeNotFound   = errors.New("episode not found")
	ErrGuestNotFound     = errors.New("guest not found")
	ErrInvalidAppearance = errors.New("invalid appearance")
)
