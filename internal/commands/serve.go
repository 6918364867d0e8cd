package commands

import (
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unitconv/rpc"
)

func newServeCmd(s *session) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Answer msgpack conversion requests over TCP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = s.cfg.Listen
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			s.logger.Info("listening", zap.String("addr", ln.Addr().String()))

			srv := rpc.NewServer(rpc.NewHandler(s.converter, s.logger), s.logger)
			return srv.Serve(ctx, ln)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to the config listen)")
	return cmd
}
