package gazerpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// GazeServiceClient is the client API for the gaze service
type GazeServiceClient interface {
	GetCurrentGaze(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetHistory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetDevice(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type gazeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGazeServiceClient(cc grpc.ClientConnInterface) GazeServiceClient {
	return &gazeServiceClient{cc}
}

func (c *gazeServiceClient) GetCurrentGaze(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetCurrentGazeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gazeServiceClient) GetHistory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetHistoryMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gazeServiceClient) GetDevice(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetDeviceMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// HistoryRequest builds a GetHistory request for [start, end)
func HistoryRequest(start, end time.Time) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldStartTime: structpb.NewStringValue(start.UTC().Format(time.RFC3339Nano)),
		FieldEndTime:   structpb.NewStringValue(end.UTC().Format(time.RFC3339Nano)),
	}}
}
