// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     server
// Description: Service descriptor of cardano.v1.Calculator
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "cardano.v1.Calculator"

// Full method names
const (
	MethodEvaluate       = "/" + ServiceName + "/Evaluate"
	MethodListOperations = "/" + ServiceName + "/ListOperations"
	MethodHistory        = "/" + ServiceName + "/History"
	MethodStats          = "/" + ServiceName + "/Stats"
)

// CalculatorServer is the server API of cardano.v1.Calculator. Requests and
// responses are generic protobuf structs.
type CalculatorServer interface {
	Evaluate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListOperations(context.Context, *structpb.Struct) (*structpb.Struct, error)
	History(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Stats(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(CalculatorServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CalculatorServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(CalculatorServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// CalculatorServiceDesc describes cardano.v1.Calculator for grpc.Server
var CalculatorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Evaluate",
			Handler:    unaryHandler(MethodEvaluate, CalculatorServer.Evaluate),
		},
		{
			MethodName: "ListOperations",
			Handler:    unaryHandler(MethodListOperations, CalculatorServer.ListOperations),
		},
		{
			MethodName: "History",
			Handler:    unaryHandler(MethodHistory, CalculatorServer.History),
		},
		{
			MethodName: "Stats",
			Handler:    unaryHandler(MethodStats, CalculatorServer.Stats),
		},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterCalculatorServer registers srv with s
func RegisterCalculatorServer(s grpc.ServiceRegistrar, srv CalculatorServer) {
	s.RegisterService(&CalculatorServiceDesc, srv)
}
