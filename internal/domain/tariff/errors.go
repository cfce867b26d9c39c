package tariff

import "errors"

var ErrUnknownKind = errors.New("unknown tariff table kind")
