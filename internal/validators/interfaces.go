// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of incoming account requests before
// they reach the workflows: name length, email syntax, password policy, the
// presence of confirmation fields and list query bounds.
//
// Failures are reported as *FieldError values joined together, so callers can
// match them with errors.Is against ErrValidation or inspect each field.
package validators

import "context"

// Validator validates a request value. When fields are given, only those
// named fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
