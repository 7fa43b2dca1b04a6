package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/firstweek/internal/client/models"
	"github.com/dmitrijs2005/firstweek/internal/common"
	pb "github.com/dmitrijs2005/firstweek/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type GRPCClient struct {
	endpointURL    string
	requestTimeout time.Duration
	conn           *grpc.ClientConn
	client         pb.MemberServiceClient
}

// requestIDInterceptor tags every call with a fresh request id so server
// logs can be correlated with a CLI action.
func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	ctx = metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewGRPCClient(endpointURL string, requestTimeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, requestTimeout: requestTimeout}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(opts ...grpc.DialOption) error {

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewMemberServiceClient(conn)
	return nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.requestTimeout)
}

func fromStruct(st *structpb.Struct) models.Member {
	id, name, email := pb.MemberFields(st)
	return models.Member{ID: id, Name: name, Email: email}
}

func (s *GRPCClient) Create(ctx context.Context, name, email string) (models.Member, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Create(ctx, pb.MemberStruct(0, name, email))
	if err != nil {
		return models.Member{}, s.mapError(err)
	}
	return fromStruct(resp), nil
}

func (s *GRPCClient) Get(ctx context.Context, id int64) (models.Member, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Get(ctx, wrapperspb.Int64(id))
	if err != nil {
		return models.Member{}, s.mapError(err)
	}
	return fromStruct(resp), nil
}

func (s *GRPCClient) List(ctx context.Context) ([]models.Member, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.List(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}

	result := make([]models.Member, 0, len(resp.GetValues()))
	for _, v := range resp.GetValues() {
		result = append(result, fromStruct(v.GetStructValue()))
	}
	return result, nil
}

func (s *GRPCClient) Delete(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.Delete(ctx, wrapperspb.Int64(id)); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetValue() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.InvalidArgument:
		return common.ErrorInvalidID
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
