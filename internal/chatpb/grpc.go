package chatpb

import (
	"context"

	"google.golang.org/grpc"
)

const (
	// ServiceName matches the service declaration in chatserver.proto.
	ServiceName = "chatserver.ChatServer"

	methodLogIn          = "/chatserver.ChatServer/LogIn"
	methodLogOut         = "/chatserver.ChatServer/LogOut"
	methodList           = "/chatserver.ChatServer/List"
	methodSendMessage    = "/chatserver.ChatServer/SendMessage"
	methodReceiveMessage = "/chatserver.ChatServer/ReceiveMessage"
	methodChat           = "/chatserver.ChatServer/Chat"
)

// ChatServerServer is the server API for the ChatServer service.
type ChatServerServer interface {
	LogIn(ChatServer_LogInServer) error
	LogOut(context.Context, *LogOutRequest) (*LogOutReply, error)
	List(context.Context, *ListRequest) (*ListReply, error)
	SendMessage(ChatServer_SendMessageServer) error
	ReceiveMessage(*ReceiveMessageRequest, ChatServer_ReceiveMessageServer) error
	Chat(ChatServer_ChatServer) error
}

// UnimplementedChatServerServer may be embedded for forward compatibility.
type UnimplementedChatServerServer struct{}

func (UnimplementedChatServerServer) LogIn(ChatServer_LogInServer) error {
	return errUnimplemented("LogIn")
}

func (UnimplementedChatServerServer) LogOut(context.Context, *LogOutRequest) (*LogOutReply, error) {
	return nil, errUnimplemented("LogOut")
}

func (UnimplementedChatServerServer) List(context.Context, *ListRequest) (*ListReply, error) {
	return nil, errUnimplemented("List")
}

func (UnimplementedChatServerServer) SendMessage(ChatServer_SendMessageServer) error {
	return errUnimplemented("SendMessage")
}

func (UnimplementedChatServerServer) ReceiveMessage(*ReceiveMessageRequest, ChatServer_ReceiveMessageServer) error {
	return errUnimplemented("ReceiveMessage")
}

func (UnimplementedChatServerServer) Chat(ChatServer_ChatServer) error {
	return errUnimplemented("Chat")
}

func RegisterChatServerServer(s grpc.ServiceRegistrar, srv ChatServerServer) {
	s.RegisterService(&ChatServer_ServiceDesc, srv)
}

// Server-side stream views.

type ChatServer_LogInServer interface {
	Send(*LogInReply) error
	Recv() (*LogInRequest, error)
	grpc.ServerStream
}

type chatServerLogInServer struct{ grpc.ServerStream }

func (x *chatServerLogInServer) Send(m *LogInReply) error { return x.ServerStream.SendMsg(m) }

func (x *chatServerLogInServer) Recv() (*LogInRequest, error) {
	m := new(LogInRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type ChatServer_SendMessageServer interface {
	Send(*SendMessageReply) error
	Recv() (*SendMessageRequest, error)
	grpc.ServerStream
}

type chatServerSendMessageServer struct{ grpc.ServerStream }

func (x *chatServerSendMessageServer) Send(m *SendMessageReply) error {
	return x.ServerStream.SendMsg(m)
}

func (x *chatServerSendMessageServer) Recv() (*SendMessageRequest, error) {
	m := new(SendMessageRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type ChatServer_ReceiveMessageServer interface {
	Send(*ReceiveMessageReply) error
	grpc.ServerStream
}

type chatServerReceiveMessageServer struct{ grpc.ServerStream }

func (x *chatServerReceiveMessageServer) Send(m *ReceiveMessageReply) error {
	return x.ServerStream.SendMsg(m)
}

type ChatServer_ChatServer interface {
	Send(*ChatMessage) error
	Recv() (*ChatMessage, error)
	grpc.ServerStream
}

type chatServerChatServer struct{ grpc.ServerStream }

func (x *chatServerChatServer) Send(m *ChatMessage) error { return x.ServerStream.SendMsg(m) }

func (x *chatServerChatServer) Recv() (*ChatMessage, error) {
	m := new(ChatMessage)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Method handlers.

func _ChatServer_LogIn_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(ChatServerServer).LogIn(&chatServerLogInServer{stream})
}

func _ChatServer_LogOut_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LogOutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServerServer).LogOut(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: methodLogOut,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServerServer).LogOut(ctx, req.(*LogOutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatServer_List_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServerServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: methodList,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServerServer).List(ctx, req.(*ListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatServer_SendMessage_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(ChatServerServer).SendMessage(&chatServerSendMessageServer{stream})
}

func _ChatServer_ReceiveMessage_Handler(srv any, stream grpc.ServerStream) error {
	m := new(ReceiveMessageRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ChatServerServer).ReceiveMessage(m, &chatServerReceiveMessageServer{stream})
}

func _ChatServer_Chat_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(ChatServerServer).Chat(&chatServerChatServer{stream})
}

// ChatServer_ServiceDesc is the grpc.ServiceDesc for the ChatServer
// service. Stream indexes are referenced by the client stubs; keep the
// order stable.
var ChatServer_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ChatServerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "LogOut",
			Handler:    _ChatServer_LogOut_Handler,
		},
		{
			MethodName: "List",
			Handler:    _ChatServer_List_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "LogIn",
			Handler:       _ChatServer_LogIn_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
		{
			StreamName:    "SendMessage",
			Handler:       _ChatServer_SendMessage_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
		{
			StreamName:    "ReceiveMessage",
			Handler:       _ChatServer_ReceiveMessage_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "Chat",
			Handler:       _ChatServer_Chat_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "chatserver.proto",
}
