// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     server
// Description: Typed client for cardano.v1.Calculator
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package server

import (
	"context"
	"time"

	"github.com/msto63/cardano/internal/cardano/service"
	"github.com/msto63/cardano/internal/cardano/store"
	coreGrpc "github.com/msto63/cardano/pkg/core/grpc"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls a remote Calculator service. Errors returned by the server
// are restored as structured errors when the connection was created with
// coreGrpc.Dial.
type Client struct {
	conn  *grpc.ClientConn
	owned bool
}

// NewClient wraps an existing connection; Close leaves it open
func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{conn: conn}
}

// Dial connects to target, waiting up to timeout for the connection
func Dial(target string, timeout time.Duration, opts ...grpc.DialOption) (*Client, error) {
	cfg := coreGrpc.DefaultClientConfig(target)
	if timeout > 0 {
		cfg.Timeout = timeout
		cfg.Block = true
	}
	conn, err := coreGrpc.Dial(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, owned: true}, nil
}

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, method, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Evaluate evaluates req remotely
func (c *Client) Evaluate(ctx context.Context, req service.Request) (*service.Result, error) {
	in, err := EncodeEvaluateRequest(req)
	if err != nil {
		return nil, err
	}
	out, err := c.invoke(ctx, MethodEvaluate, in)
	if err != nil {
		return nil, err
	}
	return DecodeResult(out)
}

// ListOperations returns the remote catalog, optionally restricted to group
func (c *Client) ListOperations(ctx context.Context, group string) ([]OperationInfo, error) {
	in, err := encode(map[string]interface{}{"group": group})
	if err != nil {
		return nil, err
	}
	out, err := c.invoke(ctx, MethodListOperations, in)
	if err != nil {
		return nil, err
	}
	return DecodeOperations(out)
}

// History returns recorded evaluations matching filter
func (c *Client) History(ctx context.Context, filter store.Filter) ([]*store.Entry, error) {
	in, err := EncodeFilter(filter)
	if err != nil {
		return nil, err
	}
	out, err := c.invoke(ctx, MethodHistory, in)
	if err != nil {
		return nil, err
	}
	return DecodeEntries(out)
}

// Stats returns the remote history statistics
func (c *Client) Stats(ctx context.Context) (*service.Stats, error) {
	out, err := c.invoke(ctx, MethodStats, &structpb.Struct{})
	if err != nil {
		return nil, err
	}
	return DecodeStats(out)
}

// Healthy reports whether the Calculator service is serving
func (c *Client) Healthy(ctx context.Context) (bool, error) {
	resp, err := healthpb.NewHealthClient(c.conn).Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		return false, err
	}
	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING, nil
}

// Close closes the connection when the client created it
func (c *Client) Close() error {
	if !c.owned {
		return nil
	}
	return c.conn.Close()
}
