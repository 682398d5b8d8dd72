package ir

import "errors"

var (
	ErrJSON = errors.New("json conversion error")
)
