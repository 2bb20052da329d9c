// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound message data before it reaches the
// encryption layer.
//
// A Validator accepts a value and an optional list of field names; when the
// list is empty every field known for that type is checked.
package validators

import "context"

// Validator validates obj, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
