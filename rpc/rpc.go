// Package rpc carries conversion requests over a byte stream as msgpack packets.
package rpc

import (
	"bytes"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	FuncConvert    = "Convert"
	FuncCategories = "Categories"
)

// header keys
const (
	hdrID       = "id"
	hdrFunction = "function"
	hdrStatus   = "status"
)

// body keys
const (
	bodyRequest  = "request"
	bodyResponse = "response"
)

var (
	ErrReqHasNoID   = errors.New("request has no id")
	ErrReqHasNoFunc = errors.New("request has no function")
	ErrNoSuchFunc   = errors.New("no such function")
	ErrReqHasNoBody = errors.New("request has no body")
)

type Packet struct {
	H map[string][]byte `msgpack:"h,omitempty"`
	B map[string][]byte `msgpack:"b,omitempty"`
}

func NewRequestPacket(function string, body []byte) (*Packet, uuid.UUID) {
	id := uuid.New()
	pkt := &Packet{
		H: map[string][]byte{
			hdrID:       id[:],
			hdrFunction: []byte(function),
		},
	}
	if body != nil {
		pkt.B = map[string][]byte{bodyRequest: body}
	}
	return pkt, id
}

func (p *Packet) ID() (uuid.UUID, error) {
	raw, ok := p.H[hdrID]
	if !ok {
		return uuid.Nil, ErrReqHasNoID
	}
	return uuid.FromBytes(raw)
}

func (p *Packet) Function() string {
	return string(p.H[hdrFunction])
}

func EncodePacket(p *Packet) ([]byte, error) {
	return msgpack.Marshal(p)
}

// PacketBuffer accumulates stream bytes and yields whole packets. A packet
// split across reads stays buffered until the rest arrives.
type PacketBuffer struct {
	buf bytes.Buffer
}

func (pb *PacketBuffer) Feed(data []byte) ([]*Packet, error) {
	pb.buf.Write(data)

	var results []*Packet
	for pb.buf.Len() > 0 {
		r := bytes.NewReader(pb.buf.Bytes())
		dec := msgpack.NewDecoder(r)

		v := new(Packet)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				// not enough data yet, stop
				break
			}
			pb.buf.Reset()
			return results, err
		}
		pb.buf.Next(int(r.Size()) - r.Len())
		results = append(results, v)
	}
	return results, nil
}

func (pb *PacketBuffer) Buffered() int {
	return pb.buf.Len()
}
