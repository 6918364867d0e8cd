package rpc

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"

	"go.uber.org/zap"
)

const readChunk = 4096

type Server struct {
	handler *Handler
	logger  *zap.Logger
}

func NewServer(handler *Handler, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{handler: handler, logger: logger}
}

// Serve accepts connections until ctx is done or ln fails.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	var wg sync.WaitGroup
	defer wg.Wait()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer conn.Close()
			if err := s.ServeConn(ctx, conn); err != nil {
				s.logger.Warn("connection closed with error",
					zap.String("remote", conn.RemoteAddr().String()),
					zap.Error(err))
			}
		}()
	}
}

// ServeConn answers packets read from conn until EOF or ctx is done. When
// conn is an io.Closer it is closed on cancellation to unblock the read.
func (s *Server) ServeConn(ctx context.Context, conn io.ReadWriter) error {
	if closer, ok := conn.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() { _ = closer.Close() })
		defer stop()
	}

	var pb PacketBuffer
	chunk := make([]byte, readChunk)
	for {
		n, err := conn.Read(chunk)
		if n > 0 {
			pkts, ferr := pb.Feed(chunk[:n])
			for _, pkt := range pkts {
				if werr := s.respond(conn, pkt); werr != nil {
					return werr
				}
			}
			if ferr != nil {
				return ferr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}

func (s *Server) respond(w io.Writer, pkt *Packet) error {
	resp, err := s.handler.Handle(pkt)
	if err != nil {
		s.logger.Warn("dropping packet", zap.Error(err))
		return nil
	}
	raw, err := EncodePacket(resp)
	if err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}
