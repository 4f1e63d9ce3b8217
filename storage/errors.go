package storage

import "errors"

var ErrElderNotFound = errors.New("elder not found in storage")
