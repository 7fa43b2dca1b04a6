package grpc

import (
	"context"

	"github.com/dmitrijs2005/firstweek/internal/common"
	pb "github.com/dmitrijs2005/firstweek/internal/proto"
	"github.com/dmitrijs2005/firstweek/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func toStruct(m *models.Member) *structpb.Struct {
	return pb.MemberStruct(m.ID, m.Name, m.Email)
}

func (s *GRPCServer) internalError(ctx context.Context, err error) error {
	s.logger.Error(ctx, err.Error())
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

func (s *GRPCServer) Create(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	_, name, email := pb.MemberFields(req)

	m, err := s.members.Create(ctx, name, email)
	if err != nil {
		return nil, s.internalError(ctx, err)
	}

	s.logger.Info(ctx, "Member created", "id", m.ID)
	return toStruct(m), nil
}

func (s *GRPCServer) Get(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {

	id := req.GetValue()
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, common.ErrorInvalidID.Error())
	}

	m, found, err := s.members.Get(ctx, id)
	if err != nil {
		return nil, s.internalError(ctx, err)
	}
	if !found {
		return nil, status.Error(codes.NotFound, common.ErrorNotFound.Error())
	}

	return toStruct(m), nil
}

func (s *GRPCServer) List(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {

	all, err := s.members.GetAll(ctx)
	if err != nil {
		return nil, s.internalError(ctx, err)
	}

	structs := make([]*structpb.Struct, 0, len(all))
	for i := range all {
		structs = append(structs, toStruct(&all[i]))
	}

	return pb.MemberList(structs), nil
}

func (s *GRPCServer) Delete(ctx context.Context, req *wrapperspb.Int64Value) (*emptypb.Empty, error) {

	id := req.GetValue()
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, common.ErrorInvalidID.Error())
	}

	if err := s.members.Delete(ctx, id); err != nil {
		return nil, s.internalError(ctx, err)
	}

	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String("OK"), nil
}
