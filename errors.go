package jsinspect

import (
	"github.com/pkg/errors"
)

var (
	ErrEmptySchema    = errors.New("empty schema text")
	ErrEmptyCandidate = errors.New("empty candidate text")
)
