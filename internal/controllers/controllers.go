package controllers

import "errors"

var (
	ErrBadRequest  = errors.New("bad request")
	ErrParsingForm = errors.New("failed to parse form")
	ErrGetGames    = errors.New("failed to get games")
	ErrEncoding    = errors.New("failed to encode")
	ErrRender      = errors.New("failed to render page")
)
