// Package gazerpc defines the gaze.v1.GazeService gRPC surface.
//
// Messages are protobuf well-known types: requests and responses are
// google.protobuf.Struct documents, so clients in any language can call the
// service with a stock protobuf runtime and no generated stubs.
package gazerpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "gaze.v1.GazeService"

const (
	GetCurrentGazeMethod = "/gaze.v1.GazeService/GetCurrentGaze"
	GetHistoryMethod     = "/gaze.v1.GazeService/GetHistory"
	GetDeviceMethod      = "/gaze.v1.GazeService/GetDevice"
)

// Request and response field names
const (
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldSample    = "sample"
	FieldSamples   = "samples"
	FieldDevice    = "device"
	FieldStreams   = "streams"
	FieldSupported = "supported_streams"
	FieldState     = "state"
	FieldSessionID = "session_id"
	FieldSource    = "source"
)

// GazeServiceServer is the server API for the gaze service
type GazeServiceServer interface {
	// GetCurrentGaze returns the latest sample of the running session
	GetCurrentGaze(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	// GetHistory returns stored samples received in [start_time, end_time)
	GetHistory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// GetDevice returns the selected device and its active streams
	GetDevice(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// UnimplementedGazeServiceServer can be embedded for forward compatibility
type UnimplementedGazeServiceServer struct{}

func (UnimplementedGazeServiceServer) GetCurrentGaze(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCurrentGaze not implemented")
}

func (UnimplementedGazeServiceServer) GetHistory(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetHistory not implemented")
}

func (UnimplementedGazeServiceServer) GetDevice(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDevice not implemented")
}

// RegisterGazeServiceServer registers srv on s
func RegisterGazeServiceServer(s grpc.ServiceRegistrar, srv GazeServiceServer) {
	s.RegisterService(&GazeService_ServiceDesc, srv)
}

func getCurrentGazeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GazeServiceServer).GetCurrentGaze(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetCurrentGazeMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GazeServiceServer).GetCurrentGaze(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func getHistoryHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GazeServiceServer).GetHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetHistoryMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GazeServiceServer).GetHistory(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getDeviceHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GazeServiceServer).GetDevice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetDeviceMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GazeServiceServer).GetDevice(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// GazeService_ServiceDesc is the grpc.ServiceDesc for the gaze service
var GazeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GazeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetCurrentGaze", Handler: getCurrentGazeHandler},
		{MethodName: "GetHistory", Handler: getHistoryHandler},
		{MethodName: "GetDevice", Handler: getDeviceHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gaze/v1/gaze.proto",
}
