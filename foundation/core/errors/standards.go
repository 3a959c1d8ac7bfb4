// File: standards.go
// Title: Error Standards for Cardano Modules
// Description: Provides module identifiers and standardized error codes used by
//              the foundation library and the service layers built on it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-08-02 v0.2.0: Module set reduced to cmplxx and the service layers,
//                       codes aligned with core/error

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/cardano/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleCmplxx  = "cmplxx"
	ModuleCatalog = "catalog"
	ModuleService = "service"
	ModuleStore   = "store"
	ModuleServer  = "server"
	ModuleConfig  = "config"
)

// Standardized error codes for all modules
const (
	// Common error codes
	CodeInvalidInput    = string(mdwerror.CodeInvalidInput)
	CodeInvalidFormat   = string(mdwerror.CodeInvalidFormat)
	CodeOutOfRange      = string(mdwerror.CodeValueOutOfRange)
	CodeNotFound        = string(mdwerror.CodeNotFound)
	CodeOperationFailed = "OPERATION_FAILED"

	// cmplxx
	CodeCmplxxDivisionByZero = string(mdwerror.CodeDivisionByZero)
	CodeCmplxxDomainError    = string(mdwerror.CodeDomainError)

	// store
	CodeStoreDatabaseError = string(mdwerror.CodeDatabaseError)
)

// ModuleError wraps cause with module context. A nil cause yields a plain
// module error.
func ModuleError(module, operation string, cause error, details map[string]interface{}) *mdwerror.Error {
	b := NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s failed", module, operation)).
		Cause(cause).
		Details(details)

	if code := mdwerror.GetCode(cause); code != mdwerror.CodeUnknown {
		b.Code(string(code)).Severity(mdwerror.GetSeverity(cause))
	}
	return b.Build()
}
