// Package proto describes the firstweek.members.MemberService gRPC service.
//
// Messages are protobuf well-known types, so the service descriptor, server
// registration and client stub are declared here by hand in the shape protoc
// would generate.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "firstweek.members.MemberService"

const (
	MemberService_Create_FullMethodName = "/" + ServiceName + "/Create"
	MemberService_Get_FullMethodName    = "/" + ServiceName + "/Get"
	MemberService_List_FullMethodName   = "/" + ServiceName + "/List"
	MemberService_Delete_FullMethodName = "/" + ServiceName + "/Delete"
	MemberService_Ping_FullMethodName   = "/" + ServiceName + "/Ping"
)

// MemberServiceServer is the server API for MemberService.
type MemberServiceServer interface {
	Create(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Get(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	List(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	Delete(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error)
	Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

// UnimplementedMemberServiceServer can be embedded to have forward
// compatible implementations.
type UnimplementedMemberServiceServer struct{}

func (UnimplementedMemberServiceServer) Create(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Create not implemented")
}
func (UnimplementedMemberServiceServer) Get(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Get not implemented")
}
func (UnimplementedMemberServiceServer) List(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedMemberServiceServer) Delete(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Delete not implemented")
}
func (UnimplementedMemberServiceServer) Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

// RegisterMemberServiceServer registers srv on s.
func RegisterMemberServiceServer(s grpc.ServiceRegistrar, srv MemberServiceServer) {
	s.RegisterService(&MemberService_ServiceDesc, srv)
}

func unaryHandler[Req proto.Message, Resp proto.Message](
	fullMethod string,
	newReq func() Req,
	call func(MemberServiceServer, context.Context, Req) (Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		s := srv.(MemberServiceServer)
		if interceptor == nil {
			return call(s, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(s, ctx, req.(Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// MemberService_ServiceDesc is the grpc.ServiceDesc for MemberService.
var MemberService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MemberServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Create",
			Handler: unaryHandler(MemberService_Create_FullMethodName,
				func() *structpb.Struct { return new(structpb.Struct) },
				MemberServiceServer.Create),
		},
		{
			MethodName: "Get",
			Handler: unaryHandler(MemberService_Get_FullMethodName,
				func() *wrapperspb.Int64Value { return new(wrapperspb.Int64Value) },
				MemberServiceServer.Get),
		},
		{
			MethodName: "List",
			Handler: unaryHandler(MemberService_List_FullMethodName,
				func() *emptypb.Empty { return new(emptypb.Empty) },
				MemberServiceServer.List),
		},
		{
			MethodName: "Delete",
			Handler: unaryHandler(MemberService_Delete_FullMethodName,
				func() *wrapperspb.Int64Value { return new(wrapperspb.Int64Value) },
				MemberServiceServer.Delete),
		},
		{
			MethodName: "Ping",
			Handler: unaryHandler(MemberService_Ping_FullMethodName,
				func() *emptypb.Empty { return new(emptypb.Empty) },
				MemberServiceServer.Ping),
		},
	},
	Streams: []grpc.StreamDesc{},
}

// MemberServiceClient is the client API for MemberService.
type MemberServiceClient interface {
	Create(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Get(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error)
	List(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Delete(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type memberServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMemberServiceClient(cc grpc.ClientConnInterface) MemberServiceClient {
	return &memberServiceClient{cc}
}

func (c *memberServiceClient) Create(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MemberService_Create_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberServiceClient) Get(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MemberService_Get_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberServiceClient) List(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, MemberService_List_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberServiceClient) Delete(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, MemberService_Delete_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberServiceClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, MemberService_Ping_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
