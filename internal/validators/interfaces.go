// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach storage or
// the network.
//
// Rules are declared as go-playground/validator struct tags on the request
// models; failures are reported as a *ValidationError carrying one
// [models.FieldError] per offending field, named as the client sent it.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named struct fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
