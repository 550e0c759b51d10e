// File: doc.go
// Title: Validation Utilities Package Documentation
// Description: Package documentation for blank checks and enum validation.
// Author: bastawesy
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18

// Package validationx provides null/blank checks for request values and
// validation of string inputs against enum names.
//
//	type Status string
//
//	const (
//		StatusActive Status = "ACTIVE"
//		StatusClosed Status = "CLOSED"
//	)
//
//	status, err := validationx.ValidateValidEnumAndReturn(req.Status,
//		[]Status{StatusActive, StatusClosed}, "invalid status ")
//	// err: "invalid status [ACTIVE, CLOSED]", HTTP 406
package validationx
