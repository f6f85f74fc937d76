package query

import "errors"

var ErrQuery = errors.New("query error")
