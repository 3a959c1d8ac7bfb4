// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     grpc
// Description: Translation between structured errors and gRPC status
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package grpc

import (
	"context"
	"errors"
	"fmt"

	mdwerror "github.com/msto63/cardano/foundation/core/error"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain tags the ErrorInfo details attached by ToStatus
const ErrorDomain = "cardano"

// StatusCode maps an error code to the gRPC code sent on the wire
func StatusCode(code mdwerror.Code) codes.Code {
	switch code {
	case mdwerror.CodeInvalidInput, mdwerror.CodeInvalidFormat, mdwerror.CodeValueOutOfRange,
		mdwerror.CodeValidationFailed, mdwerror.CodeDivisionByZero, mdwerror.CodeDomainError,
		mdwerror.CodeInvalidConfig:
		return codes.InvalidArgument
	case mdwerror.CodeNotFound:
		return codes.NotFound
	case mdwerror.CodeTimeout:
		return codes.DeadlineExceeded
	case mdwerror.CodeCanceled:
		return codes.Canceled
	case mdwerror.CodeServiceUnavailable, mdwerror.CodeConnectionFailed:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

// errorCode maps a gRPC code without ErrorInfo back to an error code
func errorCode(code codes.Code) mdwerror.Code {
	switch code {
	case codes.InvalidArgument:
		return mdwerror.CodeInvalidInput
	case codes.NotFound:
		return mdwerror.CodeNotFound
	case codes.DeadlineExceeded:
		return mdwerror.CodeTimeout
	case codes.Canceled:
		return mdwerror.CodeCanceled
	case codes.Unavailable:
		return mdwerror.CodeServiceUnavailable
	default:
		return mdwerror.CodeInternal
	}
}

// ToStatus converts err into a gRPC status error. Structured errors carry
// their code, module and operation in an ErrorInfo detail. Status errors
// pass through unchanged.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return status.Error(codes.DeadlineExceeded, err.Error())
		case errors.Is(err, context.Canceled):
			return status.Error(codes.Canceled, err.Error())
		default:
			return status.Error(codes.Internal, err.Error())
		}
	}

	st := status.New(StatusCode(mdwErr.Code()), err.Error())

	meta := make(map[string]string, len(mdwErr.Details()))
	for k, v := range mdwErr.Details() {
		meta[k] = fmt.Sprint(v)
	}
	if op := mdwErr.Operation(); op != "" {
		meta["operation"] = op
	}

	withInfo, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   string(mdwErr.Code()),
		Domain:   ErrorDomain,
		Metadata: meta,
	})
	if detailErr != nil {
		return st.Err()
	}
	return withInfo.Err()
}

// FromStatus converts a gRPC status error into a structured error so that
// callers can match codes with errors.Is. Non-status errors pass through.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}
		out := mdwerror.New(st.Message()).
			WithCode(mdwerror.Code(info.GetReason())).
			WithOperation(info.GetMetadata()["operation"])
		for k, v := range info.GetMetadata() {
			out.WithDetail(k, v)
		}
		return out.WithDetail("grpc_code", st.Code().String())
	}

	return mdwerror.New(st.Message()).
		WithCode(errorCode(st.Code())).
		WithDetail("grpc_code", st.Code().String())
}
