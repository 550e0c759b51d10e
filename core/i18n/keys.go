// File: keys.go
// Title: Message Keys
// Description: Keys of the messages shipped in the default bundle.
// Author: bastawesy
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package i18n

// BaseName is the file name prefix of the default message bundle
const BaseName = "messages"

// DefaultLocale is used when no locale is requested or configured
const DefaultLocale = "en"

const (
	KeyResourceNotFound = "resource.not.found"

	// Date validation
	KeyFirstDateShouldBeBeforeSecondDate = "date_validation.first_date_should_be_before_second_date.error"
	KeyDateShouldBeInTheFuture           = "date_validation.date_should_be_in_the_future.error"

	// Allocation validation
	KeyAccountHasNoAvailableQuota = "allocation.not_enough_quota.error"
	KeyInvalidAllocationValue     = "allocation.value_not_valid.error"
	KeyInvalidAllocationService   = "allocation.service_key_not_valid.error"

	// Allocation check responses
	KeyAllocationCheckAllowed              = "allocation.check.allowed.message"
	KeyAllocationCheckAllowedWithExtraCost = "allocation.check.allowed_with_extra_cost.message"
)
