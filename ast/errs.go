package ast

import "errors"

var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrUnknownChild  = errors.New("unknown child")
	ErrNoSuchPath    = errors.New("no such path")
)
