// Package errors provides the standard error constructors for Cardano modules.
//
// Package: errors
// Title: Standard Error Handling API
// Description: This package provides common error patterns, standardized error
//              codes and utilities for creating consistent errors across the
//              foundation library and the service layers. Every error carries
//              its module and operation as details so that logs and transport
//              layers can attribute failures without string matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2025-08-02 v0.2.0: cmplxx constructors
//
// # Error Creation
//
//   - ErrorBuilder: fluent construction with module, operation, code and details
//   - InvalidInput, InvalidFormat, OutOfRange, NotFound, OperationFailed
//   - CmplxxDivisionByZero, CmplxxDomainError for the complex number library
//
// # Error Analysis
//
//   - ExtractModule, ExtractOperation, ExtractDetails
//   - IsModuleOperation
//
// # Usage Examples
//
//	err := errors.CmplxxDivisionByZero("inverse")
//	errors.ExtractModule(err)    // "cmplxx"
//	errors.ExtractOperation(err) // "inverse"
//
//	err = errors.NewErrorBuilder(errors.ModuleStore).
//		Operation("record").
//		Cause(sqlErr).
//		Build()
package errors
