package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "sro.v1.ValidationService"

// Full method names
const (
	MethodValidate      = "/" + ServiceName + "/Validate"
	MethodValidateBatch = "/" + ServiceName + "/ValidateBatch"
	MethodGetReport     = "/" + ServiceName + "/GetReport"
	MethodListReports   = "/" + ServiceName + "/ListReports"
)

// ValidationServiceServer is the server API of the validation service.
// Requests and responses are JSON-shaped Structs:
//
//	Validate       {entity, record, today?}             -> RecordOutcome
//	ValidateBatch  {entity, source?, records, today?}   -> Report
//	GetReport      {id}                                 -> Report
//	ListReports    {limit?}                             -> {reports: [Report]}
type ValidationServiceServer interface {
	Validate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ValidateBatch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetReport(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListReports(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterValidationServiceServer registers srv with s
func RegisterValidationServiceServer(s grpc.ServiceRegistrar, srv ValidationServiceServer) {
	s.RegisterService(&ValidationServiceDesc, srv)
}

// ValidationServiceDesc describes the validation service for grpc.Server
var ValidationServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ValidationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Validate", Handler: unaryHandler(MethodValidate, ValidationServiceServer.Validate)},
		{MethodName: "ValidateBatch", Handler: unaryHandler(MethodValidateBatch, ValidationServiceServer.ValidateBatch)},
		{MethodName: "GetReport", Handler: unaryHandler(MethodGetReport, ValidationServiceServer.GetReport)},
		{MethodName: "ListReports", Handler: unaryHandler(MethodListReports, ValidationServiceServer.ListReports)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sro/v1/validation.proto",
}

type structMethod func(ValidationServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call structMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ValidationServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(ValidationServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}
