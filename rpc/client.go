package rpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"unitconv"
)

type deadliner interface {
	SetDeadline(t time.Time) error
}

// Client issues one request at a time over conn.
type Client struct {
	mu   sync.Mutex
	conn io.ReadWriter
	pb   PacketBuffer
	// packets decoded ahead of the one being waited for
	pending []*Packet
}

func NewClient(conn io.ReadWriter) *Client {
	return &Client{conn: conn}
}

// Convert runs a conversion remotely. Errors match the unitconv sentinels with errors.Is.
func (c *Client) Convert(ctx context.Context, value float64, from, to string, category unitconv.CategoryKey, rates unitconv.RateTable) (float64, error) {
	req := Request{Value: &value, From: from, To: to, Category: string(category), Rates: rates}
	body, err := msgpack.Marshal(&req)
	if err != nil {
		return 0, err
	}

	var resp Response
	if err := c.call(ctx, FuncConvert, body, &resp); err != nil {
		return 0, err
	}
	return resp.Value, nil
}

func (c *Client) Categories(ctx context.Context) ([]CategoryInfo, error) {
	var infos []CategoryInfo
	if err := c.call(ctx, FuncCategories, nil, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

func (c *Client) call(ctx context.Context, function string, body []byte, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d, ok := c.conn.(deadliner); ok {
		if deadline, has := ctx.Deadline(); has {
			_ = d.SetDeadline(deadline)
			defer d.SetDeadline(time.Time{}) //nolint:errcheck
		}
	}

	pkt, id := NewRequestPacket(function, body)
	raw, err := EncodePacket(pkt)
	if err != nil {
		return err
	}
	if _, err := c.conn.Write(raw); err != nil {
		return err
	}

	resp, err := c.await(ctx, id)
	if err != nil {
		return err
	}

	payload := resp.B[bodyResponse]
	if string(resp.H[hdrStatus]) != StatusOK {
		var failed Response
		if err := msgpack.Unmarshal(payload, &failed); err != nil {
			return fmt.Errorf("decode error response: %w", err)
		}
		return errorOf(failed.Code, failed.Error)
	}
	return msgpack.Unmarshal(payload, out)
}

func (c *Client) await(ctx context.Context, id uuid.UUID) (*Packet, error) {
	chunk := make([]byte, readChunk)
	var readErr error
	for {
		for i, pkt := range c.pending {
			if got, err := pkt.ID(); err == nil && got == id {
				c.pending = append(c.pending[:i], c.pending[i+1:]...)
				return pkt, nil
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, readErr
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var n int
		n, readErr = c.conn.Read(chunk)
		if n > 0 {
			pkts, err := c.pb.Feed(chunk[:n])
			c.pending = append(c.pending, pkts...)
			if err != nil {
				return nil, err
			}
		}
	}
}
