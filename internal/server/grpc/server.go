// Package grpc exposes the member service over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/firstweek/internal/logging"
	pb "github.com/dmitrijs2005/firstweek/internal/proto"
	"github.com/dmitrijs2005/firstweek/internal/server/models"
	"google.golang.org/grpc"
)

// MemberService is the subset of services.MemberService the transport uses.
type MemberService interface {
	Create(ctx context.Context, name, email string) (*models.Member, error)
	Get(ctx context.Context, id int64) (*models.Member, bool, error)
	GetAll(ctx context.Context) ([]models.Member, error)
	Delete(ctx context.Context, id int64) error
}

type GRPCServer struct {
	pb.UnimplementedMemberServiceServer
	address string
	members MemberService
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, ms MemberService) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		members: ms,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	pb.RegisterMemberServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
