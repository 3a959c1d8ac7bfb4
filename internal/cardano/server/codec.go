// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     server
// Description: Conversion between service types and protobuf structs
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package server

import (
	"fmt"
	"time"

	mdwerror "github.com/msto63/cardano/foundation/core/error"
	mdwerrors "github.com/msto63/cardano/foundation/core/errors"
	"github.com/msto63/cardano/foundation/utils/cmplxx"
	"github.com/msto63/cardano/internal/cardano/catalog"
	"github.com/msto63/cardano/internal/cardano/service"
	"github.com/msto63/cardano/internal/cardano/store"
	"google.golang.org/protobuf/types/known/structpb"
)

// OperationInfo describes one catalog entry on the wire
type OperationInfo struct {
	Name        string
	Kind        string
	Result      string
	Group       string
	Description string
	Signature   string
}

func encode(m map[string]interface{}) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, mdwerrors.OperationFailed(mdwerrors.ModuleServer, "encode", err)
	}
	return s, nil
}

func decodeError(field string, value interface{}, expected string) *mdwerror.Error {
	return mdwerrors.InvalidInput(mdwerrors.ModuleServer, "decode", value, expected).
		WithDetail("field", field)
}

func complexMap(z cmplxx.Complex) map[string]interface{} {
	return map[string]interface{}{
		"real":      z.Real(),
		"imaginary": z.Imaginary(),
	}
}

func complexFrom(field string, v interface{}) (cmplxx.Complex, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return cmplxx.Complex{}, decodeError(field, v, "object with real and imaginary")
	}
	re, err := numberField(m, field+".real", "real")
	if err != nil {
		return cmplxx.Complex{}, err
	}
	im, err := numberField(m, field+".imaginary", "imaginary")
	if err != nil {
		return cmplxx.Complex{}, err
	}
	return cmplxx.New(re, im), nil
}

// numberField reads m[key]; a missing key is zero
func numberField(m map[string]interface{}, field, key string) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, decodeError(field, v, "number")
	}
	return f, nil
}

func optionalNumber(m map[string]interface{}, key string) (*float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil, decodeError(key, v, "number")
	}
	return &f, nil
}

func stringField(m map[string]interface{}, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", decodeError(key, v, "string")
	}
	return s, nil
}

func complexList(field string, v interface{}) ([]cmplxx.Complex, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, decodeError(field, v, "list of complex numbers")
	}
	out := make([]cmplxx.Complex, 0, len(items))
	for i, item := range items {
		z, err := complexFrom(fmt.Sprintf("%s[%d]", field, i), item)
		if err != nil {
			return nil, err
		}
		out = append(out, z)
	}
	return out, nil
}

func complexListValue(zs []cmplxx.Complex) []interface{} {
	out := make([]interface{}, len(zs))
	for i, z := range zs {
		out[i] = complexMap(z)
	}
	return out
}

// EncodeEvaluateRequest converts req into its wire form
func EncodeEvaluateRequest(req service.Request) (*structpb.Struct, error) {
	m := map[string]interface{}{
		"operation": req.Operation,
		"operands":  complexListValue(req.Operands),
	}
	if req.Scalar != nil {
		m["scalar"] = *req.Scalar
	}
	return encode(m)
}

// DecodeEvaluateRequest parses an Evaluate request
func DecodeEvaluateRequest(s *structpb.Struct) (service.Request, error) {
	m := s.AsMap()

	op, err := stringField(m, "operation")
	if err != nil {
		return service.Request{}, err
	}
	if op == "" {
		return service.Request{}, decodeError("operation", "", "operation name")
	}
	operands, err := complexList("operands", m["operands"])
	if err != nil {
		return service.Request{}, err
	}
	scalar, err := optionalNumber(m, "scalar")
	if err != nil {
		return service.Request{}, err
	}

	return service.Request{Operation: op, Operands: operands, Scalar: scalar}, nil
}

// EncodeResult converts an evaluation result into its wire form
func EncodeResult(r *service.Result) (*structpb.Struct, error) {
	m := map[string]interface{}{
		"operation":   r.Operation,
		"kind":        r.Value.Kind.String(),
		"rendered":    r.Rendered,
		"duration_ms": float64(r.Duration.Nanoseconds()) / 1e6,
	}
	if r.RequestID != "" {
		m["request_id"] = r.RequestID
	}
	switch r.Value.Kind {
	case catalog.ResultScalar:
		m["scalar"] = r.Value.Scalar
	case catalog.ResultBool:
		m["bool"] = r.Value.Bool
	default:
		m["result"] = complexMap(r.Value.Complex)
	}
	return encode(m)
}

// DecodeResult parses an Evaluate response
func DecodeResult(s *structpb.Struct) (*service.Result, error) {
	m := s.AsMap()

	kind, _ := stringField(m, "kind")
	result := &service.Result{}
	result.Operation, _ = stringField(m, "operation")
	result.Rendered, _ = stringField(m, "rendered")
	result.RequestID, _ = stringField(m, "request_id")
	if ms, ok := m["duration_ms"].(float64); ok {
		result.Duration = time.Duration(ms * float64(time.Millisecond))
	}

	switch kind {
	case catalog.ResultScalar.String():
		x, err := numberField(m, "scalar", "scalar")
		if err != nil {
			return nil, err
		}
		result.Value = catalog.Value{Kind: catalog.ResultScalar, Scalar: x}
	case catalog.ResultBool.String():
		b, ok := m["bool"].(bool)
		if !ok {
			return nil, decodeError("bool", m["bool"], "bool")
		}
		result.Value = catalog.Value{Kind: catalog.ResultBool, Bool: b}
	case catalog.ResultComplex.String():
		z, err := complexFrom("result", m["result"])
		if err != nil {
			return nil, err
		}
		result.Value = catalog.Value{Kind: catalog.ResultComplex, Complex: z}
	default:
		return nil, decodeError("kind", kind, "complex, scalar or bool")
	}

	return result, nil
}

// EncodeOperations converts catalog entries into their wire form
func EncodeOperations(ops []*catalog.Operation) (*structpb.Struct, error) {
	list := make([]interface{}, len(ops))
	for i, op := range ops {
		list[i] = map[string]interface{}{
			"name":        op.Name,
			"kind":        op.Kind.String(),
			"result":      op.Result.String(),
			"group":       op.Group,
			"description": op.Description,
			"signature":   op.Signature(),
		}
	}
	return encode(map[string]interface{}{"operations": list})
}

// DecodeOperations parses a ListOperations response
func DecodeOperations(s *structpb.Struct) ([]OperationInfo, error) {
	items, ok := s.AsMap()["operations"].([]interface{})
	if !ok {
		return nil, nil
	}
	out := make([]OperationInfo, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, decodeError("operations", item, "object")
		}
		var info OperationInfo
		info.Name, _ = stringField(m, "name")
		info.Kind, _ = stringField(m, "kind")
		info.Result, _ = stringField(m, "result")
		info.Group, _ = stringField(m, "group")
		info.Description, _ = stringField(m, "description")
		info.Signature, _ = stringField(m, "signature")
		out = append(out, info)
	}
	return out, nil
}

// EncodeFilter converts a history filter into its wire form
func EncodeFilter(f store.Filter) (*structpb.Struct, error) {
	m := map[string]interface{}{
		"operation":   f.Operation,
		"errors_only": f.ErrorsOnly,
		"limit":       f.Limit,
		"offset":      f.Offset,
	}
	if !f.Since.IsZero() {
		m["since"] = f.Since.UTC().Format(time.RFC3339Nano)
	}
	return encode(m)
}

// DecodeFilter parses a History request
func DecodeFilter(s *structpb.Struct) (store.Filter, error) {
	m := s.AsMap()
	var f store.Filter

	var err error
	if f.Operation, err = stringField(m, "operation"); err != nil {
		return f, err
	}
	if v, ok := m["errors_only"]; ok && v != nil {
		b, ok := v.(bool)
		if !ok {
			return f, decodeError("errors_only", v, "bool")
		}
		f.ErrorsOnly = b
	}
	limit, err := numberField(m, "limit", "limit")
	if err != nil {
		return f, err
	}
	offset, err := numberField(m, "offset", "offset")
	if err != nil {
		return f, err
	}
	f.Limit, f.Offset = int(limit), int(offset)

	since, err := stringField(m, "since")
	if err != nil {
		return f, err
	}
	if since != "" {
		t, err := time.Parse(time.RFC3339Nano, since)
		if err != nil {
			return f, decodeError("since", since, "RFC 3339 timestamp")
		}
		f.Since = t
	}
	return f, nil
}

func entryMap(e *store.Entry) map[string]interface{} {
	m := map[string]interface{}{
		"id":          e.ID,
		"timestamp":   e.Timestamp.UTC().Format(time.RFC3339Nano),
		"operation":   e.Operation,
		"operands":    complexListValue(e.Operands),
		"duration_ms": float64(e.Duration.Nanoseconds()) / 1e6,
	}
	optional := map[string]string{
		"request_id":    e.RequestID,
		"result_kind":   e.ResultKind,
		"rendered":      e.Rendered,
		"error_code":    e.ErrorCode,
		"error_message": e.ErrorMessage,
	}
	for k, v := range optional {
		if v != "" {
			m[k] = v
		}
	}
	if e.Scalar != nil {
		m["scalar"] = *e.Scalar
	}
	if e.Result != nil {
		m["result"] = complexMap(*e.Result)
	}
	if e.ScalarResult != nil {
		m["scalar_result"] = *e.ScalarResult
	}
	return m
}

func entryFrom(v interface{}) (*store.Entry, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, decodeError("entries", v, "object")
	}

	e := &store.Entry{}
	e.ID, _ = stringField(m, "id")
	e.Operation, _ = stringField(m, "operation")
	e.RequestID, _ = stringField(m, "request_id")
	e.ResultKind, _ = stringField(m, "result_kind")
	e.Rendered, _ = stringField(m, "rendered")
	e.ErrorCode, _ = stringField(m, "error_code")
	e.ErrorMessage, _ = stringField(m, "error_message")

	if ts, _ := stringField(m, "timestamp"); ts != "" {
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, decodeError("timestamp", ts, "RFC 3339 timestamp")
		}
		e.Timestamp = t
	}
	if ms, ok := m["duration_ms"].(float64); ok {
		e.Duration = time.Duration(ms * float64(time.Millisecond))
	}

	var err error
	if e.Operands, err = complexList("operands", m["operands"]); err != nil {
		return nil, err
	}
	if e.Scalar, err = optionalNumber(m, "scalar"); err != nil {
		return nil, err
	}
	if e.ScalarResult, err = optionalNumber(m, "scalar_result"); err != nil {
		return nil, err
	}
	if r, ok := m["result"]; ok && r != nil {
		z, err := complexFrom("result", r)
		if err != nil {
			return nil, err
		}
		e.Result = &z
	}
	return e, nil
}

// EncodeEntries converts history entries into their wire form
func EncodeEntries(entries []*store.Entry) (*structpb.Struct, error) {
	list := make([]interface{}, len(entries))
	for i, e := range entries {
		list[i] = entryMap(e)
	}
	return encode(map[string]interface{}{"entries": list})
}

// DecodeEntries parses a History response
func DecodeEntries(s *structpb.Struct) ([]*store.Entry, error) {
	items, _ := s.AsMap()["entries"].([]interface{})
	out := make([]*store.Entry, 0, len(items))
	for _, item := range items {
		e, err := entryFrom(item)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// EncodeStats converts history statistics into their wire form
func EncodeStats(st *service.Stats) (*structpb.Struct, error) {
	byOp := make(map[string]interface{}, len(st.ByOperation))
	for k, v := range st.ByOperation {
		byOp[k] = v
	}
	return encode(map[string]interface{}{
		"total":        st.Total,
		"failed":       st.Failed,
		"by_operation": byOp,
	})
}

// DecodeStats parses a Stats response
func DecodeStats(s *structpb.Struct) (*service.Stats, error) {
	m := s.AsMap()
	st := &service.Stats{ByOperation: make(map[string]int64)}

	total, err := numberField(m, "total", "total")
	if err != nil {
		return nil, err
	}
	failed, err := numberField(m, "failed", "failed")
	if err != nil {
		return nil, err
	}
	st.Total, st.Failed = int64(total), int64(failed)

	byOp, _ := m["by_operation"].(map[string]interface{})
	for name := range byOp {
		n, err := numberField(byOp, "by_operation."+name, name)
		if err != nil {
			return nil, err
		}
		st.ByOperation[name] = int64(n)
	}
	return st, nil
}
