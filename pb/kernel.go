package pb

import (
	context "golang.org/x/net/context"
	grpc "google.golang.org/grpc"
)

const serviceName = "reversi.Kernel"

type KernelClient interface {
	LegalMoves(ctx context.Context, in *Board, opts ...grpc.CallOption) (*LegalMovesResponse, error)
	FlipMask(ctx context.Context, in *MoveRequest, opts ...grpc.CallOption) (*FlipMaskResponse, error)
	FlipGroups(ctx context.Context, in *MoveRequest, opts ...grpc.CallOption) (*FlipGroupsResponse, error)
	ApplyMove(ctx context.Context, in *MoveRequest, opts ...grpc.CallOption) (*Board, error)
	Popcount(ctx context.Context, in *PopcountRequest, opts ...grpc.CallOption) (*PopcountResponse, error)
	HasLegalMove(ctx context.Context, in *Board, opts ...grpc.CallOption) (*HasLegalMoveResponse, error)
}

type kernelClient struct {
	cc *grpc.ClientConn
}

func NewKernelClient(cc *grpc.ClientConn) KernelClient {
	return &kernelClient{cc}
}

func (c *kernelClient) LegalMoves(ctx context.Context, in *Board, opts ...grpc.CallOption) (*LegalMovesResponse, error) {
	out := new(LegalMovesResponse)
	err := c.cc.Invoke(ctx, "/reversi.Kernel/LegalMoves", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *kernelClient) FlipMask(ctx context.Context, in *MoveRequest, opts ...grpc.CallOption) (*FlipMaskResponse, error) {
	out := new(FlipMaskResponse)
	err := c.cc.Invoke(ctx, "/reversi.Kernel/FlipMask", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *kernelClient) FlipGroups(ctx context.Context, in *MoveRequest, opts ...grpc.CallOption) (*FlipGroupsResponse, error) {
	out := new(FlipGroupsResponse)
	err := c.cc.Invoke(ctx, "/reversi.Kernel/FlipGroups", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *kernelClient) ApplyMove(ctx context.Context, in *MoveRequest, opts ...grpc.CallOption) (*Board, error) {
	out := new(Board)
	err := c.cc.Invoke(ctx, "/reversi.Kernel/ApplyMove", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *kernelClient) Popcount(ctx context.Context, in *PopcountRequest, opts ...grpc.CallOption) (*PopcountResponse, error) {
	out := new(PopcountResponse)
	err := c.cc.Invoke(ctx, "/reversi.Kernel/Popcount", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *kernelClient) HasLegalMove(ctx context.Context, in *Board, opts ...grpc.CallOption) (*HasLegalMoveResponse, error) {
	out := new(HasLegalMoveResponse)
	err := c.cc.Invoke(ctx, "/reversi.Kernel/HasLegalMove", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type KernelServer interface {
	LegalMoves(context.Context, *Board) (*LegalMovesResponse, error)
	FlipMask(context.Context, *MoveRequest) (*FlipMaskResponse, error)
	FlipGroups(context.Context, *MoveRequest) (*FlipGroupsResponse, error)
	ApplyMove(context.Context, *MoveRequest) (*Board, error)
	Popcount(context.Context, *PopcountRequest) (*PopcountResponse, error)
	HasLegalMove(context.Context, *Board) (*HasLegalMoveResponse, error)
}

func RegisterKernelServer(s *grpc.Server, srv KernelServer) {
	s.RegisterService(&kernelServiceDesc, srv)
}

// unary builds the handler for one method. newIn allocates the
// request message; call dispatches the decoded request.
func unary(method string, newIn func() interface{},
	call func(KernelServer, context.Context, interface{}) (interface{}, error)) grpc.MethodDesc {
	fullMethod := "/" + serviceName + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := newIn()
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(KernelServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(KernelServer), ctx, req)
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var kernelServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*KernelServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("LegalMoves", func() interface{} { return new(Board) },
			func(s KernelServer, ctx context.Context, in interface{}) (interface{}, error) {
				return s.LegalMoves(ctx, in.(*Board))
			}),
		unary("FlipMask", func() interface{} { return new(MoveRequest) },
			func(s KernelServer, ctx context.Context, in interface{}) (interface{}, error) {
				return s.FlipMask(ctx, in.(*MoveRequest))
			}),
		unary("FlipGroups", func() interface{} { return new(MoveRequest) },
			func(s KernelServer, ctx context.Context, in interface{}) (interface{}, error) {
				return s.FlipGroups(ctx, in.(*MoveRequest))
			}),
		unary("ApplyMove", func() interface{} { return new(MoveRequest) },
			func(s KernelServer, ctx context.Context, in interface{}) (interface{}, error) {
				return s.ApplyMove(ctx, in.(*MoveRequest))
			}),
		unary("Popcount", func() interface{} { return new(PopcountRequest) },
			func(s KernelServer, ctx context.Context, in interface{}) (interface{}, error) {
				return s.Popcount(ctx, in.(*PopcountRequest))
			}),
		unary("HasLegalMove", func() interface{} { return new(Board) },
			func(s KernelServer, ctx context.Context, in interface{}) (interface{}, error) {
				return s.HasLegalMove(ctx, in.(*Board))
			}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "reversi.proto",
}
