// Message and service definitions matching reversi.proto. They are
// maintained by hand in the shape protoc-gen-go emits, and are
// encoded by github.com/golang/protobuf from the struct tags.

package pb

import (
	proto "github.com/golang/protobuf/proto"
)

type Board struct {
	Own                  uint64   `protobuf:"fixed64,1,opt,name=own,proto3" json:"own,omitempty"`
	Opp                  uint64   `protobuf:"fixed64,2,opt,name=opp,proto3" json:"opp,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Board) Reset()         { *m = Board{} }
func (m *Board) String() string { return proto.CompactTextString(m) }
func (*Board) ProtoMessage()    {}

func (m *Board) GetOwn() uint64 {
	if m != nil {
		return m.Own
	}
	return 0
}

func (m *Board) GetOpp() uint64 {
	if m != nil {
		return m.Opp
	}
	return 0
}

type MoveRequest struct {
	Own                  uint64   `protobuf:"fixed64,1,opt,name=own,proto3" json:"own,omitempty"`
	Opp                  uint64   `protobuf:"fixed64,2,opt,name=opp,proto3" json:"opp,omitempty"`
	Square               uint32   `protobuf:"varint,3,opt,name=square,proto3" json:"square,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *MoveRequest) Reset()         { *m = MoveRequest{} }
func (m *MoveRequest) String() string { return proto.CompactTextString(m) }
func (*MoveRequest) ProtoMessage()    {}

func (m *MoveRequest) GetOwn() uint64 {
	if m != nil {
		return m.Own
	}
	return 0
}

func (m *MoveRequest) GetOpp() uint64 {
	if m != nil {
		return m.Opp
	}
	return 0
}

func (m *MoveRequest) GetSquare() uint32 {
	if m != nil {
		return m.Square
	}
	return 0
}

type LegalMovesResponse struct {
	Moves                uint64   `protobuf:"fixed64,1,opt,name=moves,proto3" json:"moves,omitempty"`
	Squares              []uint32 `protobuf:"varint,2,rep,packed,name=squares,proto3" json:"squares,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *LegalMovesResponse) Reset()         { *m = LegalMovesResponse{} }
func (m *LegalMovesResponse) String() string { return proto.CompactTextString(m) }
func (*LegalMovesResponse) ProtoMessage()    {}

func (m *LegalMovesResponse) GetMoves() uint64 {
	if m != nil {
		return m.Moves
	}
	return 0
}

func (m *LegalMovesResponse) GetSquares() []uint32 {
	if m != nil {
		return m.Squares
	}
	return nil
}

type FlipMaskResponse struct {
	Flips                uint64   `protobuf:"fixed64,1,opt,name=flips,proto3" json:"flips,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *FlipMaskResponse) Reset()         { *m = FlipMaskResponse{} }
func (m *FlipMaskResponse) String() string { return proto.CompactTextString(m) }
func (*FlipMaskResponse) ProtoMessage()    {}

func (m *FlipMaskResponse) GetFlips() uint64 {
	if m != nil {
		return m.Flips
	}
	return 0
}

type FlipGroup struct {
	Direction            string   `protobuf:"bytes,1,opt,name=direction,proto3" json:"direction,omitempty"`
	Squares              []uint32 `protobuf:"varint,2,rep,packed,name=squares,proto3" json:"squares,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *FlipGroup) Reset()         { *m = FlipGroup{} }
func (m *FlipGroup) String() string { return proto.CompactTextString(m) }
func (*FlipGroup) ProtoMessage()    {}

func (m *FlipGroup) GetDirection() string {
	if m != nil {
		return m.Direction
	}
	return ""
}

func (m *FlipGroup) GetSquares() []uint32 {
	if m != nil {
		return m.Squares
	}
	return nil
}

type FlipGroupsResponse struct {
	Groups               []*FlipGroup `protobuf:"bytes,1,rep,name=groups,proto3" json:"groups,omitempty"`
	XXX_NoUnkeyedLiteral struct{}     `json:"-"`
	XXX_unrecognized     []byte       `json:"-"`
	XXX_sizecache        int32        `json:"-"`
}

func (m *FlipGroupsResponse) Reset()         { *m = FlipGroupsResponse{} }
func (m *FlipGroupsResponse) String() string { return proto.CompactTextString(m) }
func (*FlipGroupsResponse) ProtoMessage()    {}

func (m *FlipGroupsResponse) GetGroups() []*FlipGroup {
	if m != nil {
		return m.Groups
	}
	return nil
}

type PopcountRequest struct {
	Bits                 uint64   `protobuf:"fixed64,1,opt,name=bits,proto3" json:"bits,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *PopcountRequest) Reset()         { *m = PopcountRequest{} }
func (m *PopcountRequest) String() string { return proto.CompactTextString(m) }
func (*PopcountRequest) ProtoMessage()    {}

func (m *PopcountRequest) GetBits() uint64 {
	if m != nil {
		return m.Bits
	}
	return 0
}

type PopcountResponse struct {
	Count                uint32   `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *PopcountResponse) Reset()         { *m = PopcountResponse{} }
func (m *PopcountResponse) String() string { return proto.CompactTextString(m) }
func (*PopcountResponse) ProtoMessage()    {}

func (m *PopcountResponse) GetCount() uint32 {
	if m != nil {
		return m.Count
	}
	return 0
}

type HasLegalMoveResponse struct {
	HasMove              bool     `protobuf:"varint,1,opt,name=has_move,json=hasMove,proto3" json:"has_move,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *HasLegalMoveResponse) Reset()         { *m = HasLegalMoveResponse{} }
func (m *HasLegalMoveResponse) String() string { return proto.CompactTextString(m) }
func (*HasLegalMoveResponse) ProtoMessage()    {}

func (m *HasLegalMoveResponse) GetHasMove() bool {
	if m != nil {
		return m.HasMove
	}
	return false
}

func init() {
	proto.RegisterType((*Board)(nil), "reversi.Board")
	proto.RegisterType((*MoveRequest)(nil), "reversi.MoveRequest")
	proto.RegisterType((*LegalMovesResponse)(nil), "reversi.LegalMovesResponse")
	proto.RegisterType((*FlipMaskResponse)(nil), "reversi.FlipMaskResponse")
	proto.RegisterType((*FlipGroup)(nil), "reversi.FlipGroup")
	proto.RegisterType((*FlipGroupsResponse)(nil), "reversi.FlipGroupsResponse")
	proto.RegisterType((*PopcountRequest)(nil), "reversi.PopcountRequest")
	proto.RegisterType((*PopcountResponse)(nil), "reversi.PopcountResponse")
	proto.RegisterType((*HasLegalMoveResponse)(nil), "reversi.HasLegalMoveResponse")
}
