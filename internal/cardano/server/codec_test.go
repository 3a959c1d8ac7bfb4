package server

import (
	"testing"
	"time"

	mdwerror "github.com/msto63/cardano/foundation/core/error"
	"github.com/msto63/cardano/foundation/utils/cmplxx"
	"github.com/msto63/cardano/internal/cardano/store"
)

func TestDecodeEvaluateRequest(t *testing.T) {
	req, err := DecodeEvaluateRequest(mustStruct(t, map[string]interface{}{
		"operation": "multIm",
		"operands":  []interface{}{map[string]interface{}{"real": 1.0, "imaginary": 2.0}, map[string]interface{}{"real": -3.0}},
		"scalar":    3.0,
	}))
	if err != nil {
		t.Fatalf("DecodeEvaluateRequest() error = %v", err)
	}
	if req.Operation != "multIm" || len(req.Operands) != 2 {
		t.Fatalf("request = %+v", req)
	}
	if !req.Operands[0].Equal(cmplxx.New(1, 2)) || !req.Operands[1].Equal(cmplxx.New(-3, 0)) {
		t.Errorf("Operands = %v", req.Operands)
	}
	if req.Scalar == nil || *req.Scalar != 3 {
		t.Errorf("Scalar = %v", req.Scalar)
	}

	noScalar, err := DecodeEvaluateRequest(mustStruct(t, map[string]interface{}{"operation": "sin"}))
	if err != nil || noScalar.Scalar != nil || len(noScalar.Operands) != 0 {
		t.Errorf("minimal request = %+v, %v", noScalar, err)
	}
}

func TestDecodeEvaluateRequest_Errors(t *testing.T) {
	tests := []struct {
		name  string
		in    map[string]interface{}
		field string
	}{
		{"missing operation", map[string]interface{}{}, "operation"},
		{"operation not a string", map[string]interface{}{"operation": 3.0}, "operation"},
		{"operands not a list", map[string]interface{}{"operation": "abs", "operands": "1+2i"}, "operands"},
		{"operand not an object", map[string]interface{}{"operation": "abs", "operands": []interface{}{1.0}}, "operands[0]"},
		{"component not a number", map[string]interface{}{"operation": "abs", "operands": []interface{}{map[string]interface{}{"real": "one"}}}, "operands[0].real"},
		{"scalar not a number", map[string]interface{}{"operation": "sqrtReal", "scalar": "four"}, "scalar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEvaluateRequest(mustStruct(t, tt.in))
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
				t.Fatalf("error = %v, want INVALID_INPUT", err)
			}
			if got := err.(*mdwerror.Error).Details()["field"]; got != tt.field {
				t.Errorf("field = %v, want %v", got, tt.field)
			}
		})
	}
}

func TestDecodeFilter(t *testing.T) {
	since := time.Date(2025, 8, 2, 12, 30, 0, 0, time.UTC)
	in, err := EncodeFilter(store.Filter{Operation: "div", ErrorsOnly: true, Since: since, Limit: 5, Offset: 10})
	if err != nil {
		t.Fatalf("EncodeFilter() error = %v", err)
	}

	f, err := DecodeFilter(in)
	if err != nil {
		t.Fatalf("DecodeFilter() error = %v", err)
	}
	if f.Operation != "div" || !f.ErrorsOnly || f.Limit != 5 || f.Offset != 10 || !f.Since.Equal(since) {
		t.Errorf("filter = %+v", f)
	}

	_, err = DecodeFilter(mustStruct(t, map[string]interface{}{"since": "yesterday"}))
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("bad since error = %v, want INVALID_INPUT", err)
	}
}

func TestEntries_Wire(t *testing.T) {
	result := cmplxx.New(0.5, -0.25)
	entries := []*store.Entry{
		{
			ID:        "a",
			Timestamp: time.Date(2025, 8, 2, 9, 0, 0, 123000000, time.UTC),
			RequestID: "req",
			Operation: "inverse",
			Operands:  []cmplxx.Complex{cmplxx.New(1.6, 0.8)},
			Result:    &result,
			Rendered:  "0.5-0.25i",
			Duration:  2 * time.Millisecond,
		},
		{
			ID:           "b",
			Timestamp:    time.Date(2025, 8, 2, 8, 0, 0, 0, time.UTC),
			Operation:    "div",
			ErrorCode:    "DIVISION_BY_ZERO",
			ErrorMessage: "division by zero",
		},
	}

	s, err := EncodeEntries(entries)
	if err != nil {
		t.Fatalf("EncodeEntries() error = %v", err)
	}
	got, err := DecodeEntries(s)
	if err != nil {
		t.Fatalf("DecodeEntries() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("DecodeEntries() returned %d entries", len(got))
	}

	first := got[0]
	if first.ID != "a" || first.RequestID != "req" || !first.Timestamp.Equal(entries[0].Timestamp) {
		t.Errorf("first = %+v", first)
	}
	if first.Result == nil || !first.Result.Equal(result) || first.Duration != 2*time.Millisecond {
		t.Errorf("first result = %v, duration %v", first.Result, first.Duration)
	}
	if !got[1].Failed() || got[1].Result != nil || len(got[1].Operands) != 0 {
		t.Errorf("second = %+v", got[1])
	}
}
