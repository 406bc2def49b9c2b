package chatpb

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func errUnimplemented(method string) error {
	return status.Error(codes.Unimplemented, fmt.Sprintf("method %s not implemented", method))
}

// ChatServerClient is the client API for the ChatServer service. The
// stubs force the chatwire codec on every call, so any grpc.ClientConn
// works without extra dial options.
type ChatServerClient interface {
	LogIn(ctx context.Context, opts ...grpc.CallOption) (ChatServer_LogInClient, error)
	LogOut(ctx context.Context, in *LogOutRequest, opts ...grpc.CallOption) (*LogOutReply, error)
	List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListReply, error)
	SendMessage(ctx context.Context, opts ...grpc.CallOption) (ChatServer_SendMessageClient, error)
	ReceiveMessage(ctx context.Context, in *ReceiveMessageRequest, opts ...grpc.CallOption) (ChatServer_ReceiveMessageClient, error)
	Chat(ctx context.Context, opts ...grpc.CallOption) (ChatServer_ChatClient, error)
}

type chatServerClient struct {
	cc grpc.ClientConnInterface
}

func NewChatServerClient(cc grpc.ClientConnInterface) ChatServerClient {
	return &chatServerClient{cc}
}

func callOpts(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{forceCodec}, opts...)
}

func (c *chatServerClient) LogIn(ctx context.Context, opts ...grpc.CallOption) (ChatServer_LogInClient, error) {
	stream, err := c.cc.NewStream(ctx, &ChatServer_ServiceDesc.Streams[0], methodLogIn, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return &chatServerLogInClient{stream}, nil
}

func (c *chatServerClient) LogOut(ctx context.Context, in *LogOutRequest, opts ...grpc.CallOption) (*LogOutReply, error) {
	out := new(LogOutReply)
	if err := c.cc.Invoke(ctx, methodLogOut, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServerClient) List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListReply, error) {
	out := new(ListReply)
	if err := c.cc.Invoke(ctx, methodList, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServerClient) SendMessage(ctx context.Context, opts ...grpc.CallOption) (ChatServer_SendMessageClient, error) {
	stream, err := c.cc.NewStream(ctx, &ChatServer_ServiceDesc.Streams[1], methodSendMessage, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return &chatServerSendMessageClient{stream}, nil
}

func (c *chatServerClient) ReceiveMessage(ctx context.Context, in *ReceiveMessageRequest, opts ...grpc.CallOption) (ChatServer_ReceiveMessageClient, error) {
	stream, err := c.cc.NewStream(ctx, &ChatServer_ServiceDesc.Streams[2], methodReceiveMessage, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	x := &chatServerReceiveMessageClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *chatServerClient) Chat(ctx context.Context, opts ...grpc.CallOption) (ChatServer_ChatClient, error) {
	stream, err := c.cc.NewStream(ctx, &ChatServer_ServiceDesc.Streams[3], methodChat, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return &chatServerChatClient{stream}, nil
}

// Client-side stream views.

type ChatServer_LogInClient interface {
	Send(*LogInRequest) error
	Recv() (*LogInReply, error)
	grpc.ClientStream
}

type chatServerLogInClient struct{ grpc.ClientStream }

func (x *chatServerLogInClient) Send(m *LogInRequest) error { return x.ClientStream.SendMsg(m) }

func (x *chatServerLogInClient) Recv() (*LogInReply, error) {
	m := new(LogInReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type ChatServer_SendMessageClient interface {
	Send(*SendMessageRequest) error
	Recv() (*SendMessageReply, error)
	grpc.ClientStream
}

type chatServerSendMessageClient struct{ grpc.ClientStream }

func (x *chatServerSendMessageClient) Send(m *SendMessageRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *chatServerSendMessageClient) Recv() (*SendMessageReply, error) {
	m := new(SendMessageReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type ChatServer_ReceiveMessageClient interface {
	Recv() (*ReceiveMessageReply, error)
	grpc.ClientStream
}

type chatServerReceiveMessageClient struct{ grpc.ClientStream }

func (x *chatServerReceiveMessageClient) Recv() (*ReceiveMessageReply, error) {
	m := new(ReceiveMessageReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type ChatServer_ChatClient interface {
	Send(*ChatMessage) error
	Recv() (*ChatMessage, error)
	grpc.ClientStream
}

type chatServerChatClient struct{ grpc.ClientStream }

func (x *chatServerChatClient) Send(m *ChatMessage) error { return x.ClientStream.SendMsg(m) }

func (x *chatServerChatClient) Recv() (*ChatMessage, error) {
	m := new(ChatMessage)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
