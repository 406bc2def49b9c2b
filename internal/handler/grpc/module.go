package grpchandler

import (
	"go.uber.org/fx"

	grpcsrv "github.com/strelka-io/chatserver/infra/server/grpc"
	"github.com/strelka-io/chatserver/internal/chatpb"
)

var Module = fx.Module("grpc-handler",
	fx.Provide(NewChatServerService),
	fx.Invoke(func(srv *grpcsrv.Server, svc *ChatServerService) {
		chatpb.RegisterChatServerServer(srv, svc)
	}),
)
