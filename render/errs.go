package render

import "errors"

var ErrUnsupportedNodeKind = errors.New("unsupported node kind")
