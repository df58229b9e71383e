package server

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nelhage/reversi/bitboard"
	"github.com/nelhage/reversi/pb"
	"github.com/nelhage/reversi/reversi"
)

// Kernel serves the board operations over gRPC. It holds no state;
// every call is answered from its request alone.
type Kernel struct {
	// Debug enables logging of every request.
	Debug bool
}

var _ pb.KernelServer = &Kernel{}

// NewServer returns a gRPC server with k registered and with Recover
// installed as its only interceptor.
func NewServer(k *Kernel, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.UnaryInterceptor(Recover))
	s := grpc.NewServer(opts...)
	pb.RegisterKernelServer(s, k)
	return s
}

// Recover converts a panic in a handler into an Internal error
// carrying the panic message, so callers see what went wrong instead
// of a dropped connection.
func Recover(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic in %s: %v\n%s", info.FullMethod, r, debug.Stack())
			resp = nil
			err = status.Errorf(codes.Internal, "%s: internal error: %v", info.FullMethod, r)
		}
	}()
	return handler(ctx, req)
}

func board(own, opp uint64) error {
	if err := reversi.Validate(own, opp); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return nil
}

func move(req *pb.MoveRequest) (reversi.Square, error) {
	if err := board(req.Own, req.Opp); err != nil {
		return 0, err
	}
	if req.Square >= reversi.NumSquares {
		return 0, status.Error(codes.InvalidArgument,
			fmt.Sprintf("square %d: %v", req.Square, reversi.ErrSquareRange))
	}
	return reversi.Square(req.Square), nil
}

func (k *Kernel) logf(format string, args ...interface{}) {
	if k.Debug {
		log.Printf(format, args...)
	}
}

func (k *Kernel) LegalMoves(ctx context.Context, req *pb.Board) (*pb.LegalMovesResponse, error) {
	if err := board(req.Own, req.Opp); err != nil {
		return nil, err
	}
	moves := reversi.LegalMoves(req.Own, req.Opp)
	resp := &pb.LegalMovesResponse{Moves: moves}
	for _, sq := range bitboard.Squares(moves, nil) {
		resp.Squares = append(resp.Squares, uint32(sq))
	}
	k.logf("legal own=%x opp=%x moves=%x", req.Own, req.Opp, moves)
	return resp, nil
}

func (k *Kernel) FlipMask(ctx context.Context, req *pb.MoveRequest) (*pb.FlipMaskResponse, error) {
	sq, err := move(req)
	if err != nil {
		return nil, err
	}
	flips := reversi.FlipMask(req.Own, req.Opp, sq)
	k.logf("flips own=%x opp=%x sq=%d flips=%x", req.Own, req.Opp, sq, flips)
	return &pb.FlipMaskResponse{Flips: flips}, nil
}

func (k *Kernel) FlipGroups(ctx context.Context, req *pb.MoveRequest) (*pb.FlipGroupsResponse, error) {
	sq, err := move(req)
	if err != nil {
		return nil, err
	}
	var resp pb.FlipGroupsResponse
	for d, g := range reversi.FlipGroups(req.Own, req.Opp, sq) {
		group := &pb.FlipGroup{Direction: bitboard.Direction(d).String()}
		for _, s := range g {
			group.Squares = append(group.Squares, uint32(s))
		}
		resp.Groups = append(resp.Groups, group)
	}
	k.logf("groups own=%x opp=%x sq=%d", req.Own, req.Opp, sq)
	return &resp, nil
}

func (k *Kernel) ApplyMove(ctx context.Context, req *pb.MoveRequest) (*pb.Board, error) {
	sq, err := move(req)
	if err != nil {
		return nil, err
	}
	own, opp := reversi.ApplyMove(req.Own, req.Opp, sq)
	k.logf("apply own=%x opp=%x sq=%d -> %x %x", req.Own, req.Opp, sq, own, opp)
	return &pb.Board{Own: own, Opp: opp}, nil
}

func (k *Kernel) Popcount(ctx context.Context, req *pb.PopcountRequest) (*pb.PopcountResponse, error) {
	return &pb.PopcountResponse{Count: uint32(reversi.Popcount(req.Bits))}, nil
}

func (k *Kernel) HasLegalMove(ctx context.Context, req *pb.Board) (*pb.HasLegalMoveResponse, error) {
	if err := board(req.Own, req.Opp); err != nil {
		return nil, err
	}
	return &pb.HasLegalMoveResponse{HasMove: reversi.HasLegalMove(req.Own, req.Opp)}, nil
}
