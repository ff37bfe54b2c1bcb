// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "errors"

// ErrInvalidConfiguration is returned by [Store.ConfigureAny] when the
// argument is not a record keyed by strings (nil, a slice, a scalar, a map
// with non-string keys). The current record is left untouched.
var ErrInvalidConfiguration = errors.New("invalid configuration: expected a record with string keys")
