package grpchandler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/strelka-io/chatserver/internal/adapter/pubsub"
	"github.com/strelka-io/chatserver/internal/chatpb"
	"github.com/strelka-io/chatserver/internal/domain/directory"
	"github.com/strelka-io/chatserver/internal/domain/room"
	"github.com/strelka-io/chatserver/internal/metrics"
	"github.com/strelka-io/chatserver/internal/service"
)

type testEnv struct {
	client chatpb.ChatServerClient
	room   *room.Room
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	bus := pubsub.NewBus(watermill.NopLogger{})
	t.Cleanup(func() { _ = bus.Close() })

	dir := directory.New(0)
	rm := room.New()
	svc := service.NewChatService(dir, rm, pubsub.NewDispatcher(bus), metrics.NewNoopCollector(), logger, 16)

	srv := grpc.NewServer(grpc.ForceServerCodecV2(chatpb.Codec{}))
	chatpb.RegisterChatServerServer(srv, NewChatServerService(logger, svc))

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return &testEnv{
		client: chatpb.NewChatServerClient(conn),
		room:   rm,
	}
}

func (e *testEnv) login(t *testing.T, ctx context.Context, name string) chatpb.LogInReply_LogInState {
	t.Helper()

	stream, err := e.client.LogIn(ctx)
	if err != nil {
		t.Fatalf("LogIn: %v", err)
	}
	if err := stream.Send(&chatpb.LogInRequest{User: name}); err != nil {
		t.Fatalf("LogIn send: %v", err)
	}
	reply, err := stream.Recv()
	if err != nil {
		t.Fatalf("LogIn recv: %v", err)
	}
	_ = stream.CloseSend()
	return reply.GetLoginstate()
}

func (e *testEnv) waitRoomSize(t *testing.T, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if e.room.Size() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("room size = %d, want %d", e.room.Size(), want)
}

func recvChat(t *testing.T, stream chatpb.ChatServer_ChatClient) *chatpb.ChatMessage {
	t.Helper()

	type result struct {
		msg *chatpb.ChatMessage
		err error
	}
	ch := make(chan result, 1)
	go func() {
		m, err := stream.Recv()
		ch <- result{m, err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			t.Fatalf("chat recv: %v", r.err)
		}
		return r.msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for chat message")
		return nil
	}
}

func TestSoloLoginListLogout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	env := newTestEnv(t)

	if got := env.login(t, ctx, "Alice"); got != chatpb.LogInReply_SUCCESS {
		t.Fatalf("login = %v, want SUCCESS", got)
	}

	list, err := env.client.List(ctx, &chatpb.ListRequest{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := list.GetList(); got != "[Alice]\n" {
		t.Errorf("List = %q, want %q", got, "[Alice]\n")
	}

	out, err := env.client.LogOut(ctx, &chatpb.LogOutRequest{User: "Alice"})
	if err != nil {
		t.Fatalf("LogOut: %v", err)
	}
	if want := "Successfully logged out."; out.GetConfirmation() != want {
		t.Errorf("LogOut confirmation = %q, want %q", out.GetConfirmation(), want)
	}

	list, err = env.client.List(ctx, &chatpb.ListRequest{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := list.GetList(); got != "\n" {
		t.Errorf("List after logout = %q, want %q", got, "\n")
	}
}

// Invalid attempts keep the login stream open for a retry; the first
// SUCCESS completes it.
func TestLoginRetryOnSameStream(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	env := newTestEnv(t)

	stream, err := env.client.LogIn(ctx)
	if err != nil {
		t.Fatalf("LogIn: %v", err)
	}

	attempts := []struct {
		name string
		want chatpb.LogInReply_LogInState
	}{
		{"A B", chatpb.LogInReply_INVALID},
		{"name@host", chatpb.LogInReply_INVALID},
		{"brace{", chatpb.LogInReply_INVALID},
		{"", chatpb.LogInReply_INVALID},
		{"[Bracket]", chatpb.LogInReply_SUCCESS},
	}
	for _, a := range attempts {
		if err := stream.Send(&chatpb.LogInRequest{User: a.name}); err != nil {
			t.Fatalf("send %q: %v", a.name, err)
		}
		reply, err := stream.Recv()
		if err != nil {
			t.Fatalf("recv for %q: %v", a.name, err)
		}
		if reply.GetLoginstate() != a.want {
			t.Errorf("login %q = %v, want %v", a.name, reply.GetLoginstate(), a.want)
		}
	}

	// Server completes the stream after the success.
	if _, err := stream.Recv(); !errors.Is(err, io.EOF) {
		t.Errorf("recv after success = %v, want EOF", err)
	}
}

func TestLoginCollision(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	env := newTestEnv(t)

	if got := env.login(t, ctx, "Alice"); got != chatpb.LogInReply_SUCCESS {
		t.Fatalf("first login = %v, want SUCCESS", got)
	}
	if got := env.login(t, ctx, "Alice"); got != chatpb.LogInReply_ALREADY {
		t.Fatalf("second login = %v, want ALREADY", got)
	}
}

func TestOfflineMailbox(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	env := newTestEnv(t)

	env.login(t, ctx, "Alice")
	if _, err := env.client.LogOut(ctx, &chatpb.LogOutRequest{User: "Alice"}); err != nil {
		t.Fatalf("LogOut: %v", err)
	}
	env.login(t, ctx, "Bob")

	stream, err := env.client.SendMessage(ctx)
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if err := stream.Send(&chatpb.SendMessageRequest{
		Recipient:    "Alice",
		Requeststate: chatpb.SendMessageRequest_INITIAL,
	}); err != nil {
		t.Fatalf("send INITIAL: %v", err)
	}
	reply, err := stream.Recv()
	if err != nil {
		t.Fatalf("recv INITIAL reply: %v", err)
	}
	if reply.GetRecipientstate() != chatpb.SendMessageReply_EXIST {
		t.Fatalf("recipientstate = %v, want EXIST (offline users keep their mailbox)", reply.GetRecipientstate())
	}

	if err := stream.Send(&chatpb.SendMessageRequest{
		User:         "Bob",
		Recipient:    "Alice",
		Messages:     "hi",
		Requeststate: chatpb.SendMessageRequest_PROCESSING,
	}); err != nil {
		t.Fatalf("send PROCESSING: %v", err)
	}
	confirm, err := stream.Recv()
	if err != nil {
		t.Fatalf("recv PROCESSING reply: %v", err)
	}
	if want := "All messages have been sent to Alice"; confirm.GetConfirmation() != want {
		t.Errorf("confirmation = %q, want %q", confirm.GetConfirmation(), want)
	}

	// Write-done ends the stream without a further reply.
	_ = stream.CloseSend()
	if _, err := stream.Recv(); !errors.Is(err, io.EOF) {
		t.Fatalf("recv after close = %v, want EOF", err)
	}

	env.login(t, ctx, "Alice")

	recv, err := env.client.ReceiveMessage(ctx, &chatpb.ReceiveMessageRequest{User: "Alice"})
	if err != nil {
		t.Fatalf("ReceiveMessage: %v", err)
	}
	msg, err := recv.Recv()
	if err != nil {
		t.Fatalf("recv mailbox message: %v", err)
	}
	if msg.GetQueuestate() != chatpb.ReceiveMessageReply_NON_EMPTY {
		t.Errorf("queuestate = %v, want NON_EMPTY", msg.GetQueuestate())
	}
	if want := "Message from Bob: hi"; msg.GetMessages() != want {
		t.Errorf("messages = %q, want %q", msg.GetMessages(), want)
	}
	if _, err := recv.Recv(); !errors.Is(err, io.EOF) {
		t.Fatalf("recv after drain = %v, want EOF", err)
	}

	// The mailbox is now empty: one EMPTY reply, then the stream ends.
	recv, err = env.client.ReceiveMessage(ctx, &chatpb.ReceiveMessageRequest{User: "Alice"})
	if err != nil {
		t.Fatalf("second ReceiveMessage: %v", err)
	}
	msg, err = recv.Recv()
	if err != nil {
		t.Fatalf("recv empty reply: %v", err)
	}
	if msg.GetQueuestate() != chatpb.ReceiveMessageReply_EMPTY || msg.GetMessages() != "" {
		t.Errorf("empty reply = %+v, want {EMPTY, \"\"}", msg)
	}
	if _, err := recv.Recv(); !errors.Is(err, io.EOF) {
		t.Fatalf("recv after empty = %v, want EOF", err)
	}
}

func TestSendToUnknownRecipient(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	env := newTestEnv(t)

	stream, err := env.client.SendMessage(ctx)
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if err := stream.Send(&chatpb.SendMessageRequest{
		Recipient:    "Zed",
		Requeststate: chatpb.SendMessageRequest_INITIAL,
	}); err != nil {
		t.Fatalf("send INITIAL: %v", err)
	}

	reply, err := stream.Recv()
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	if reply.GetRecipientstate() != chatpb.SendMessageReply_NO_EXIST {
		t.Fatalf("recipientstate = %v, want NO_EXIST", reply.GetRecipientstate())
	}
	if want := "The user does not exist."; reply.GetConfirmation() != want {
		t.Errorf("confirmation = %q, want %q", reply.GetConfirmation(), want)
	}

	// The server closes right after the NO_EXIST reply.
	if _, err := stream.Recv(); !errors.Is(err, io.EOF) {
		t.Fatalf("recv after NO_EXIST = %v, want EOF", err)
	}
}

func TestReceiveMessageUnknownUser(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	env := newTestEnv(t)

	recv, err := env.client.ReceiveMessage(ctx, &chatpb.ReceiveMessageRequest{User: "Nobody"})
	if err != nil {
		t.Fatalf("ReceiveMessage: %v", err)
	}
	msg, err := recv.Recv()
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	if msg.GetQueuestate() != chatpb.ReceiveMessageReply_EMPTY {
		t.Errorf("queuestate = %v, want EMPTY", msg.GetQueuestate())
	}
	if _, err := recv.Recv(); !errors.Is(err, io.EOF) {
		t.Fatalf("recv after empty = %v, want EOF", err)
	}
}

func TestThreeWayChat(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	env := newTestEnv(t)

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		env.login(t, ctx, name)
	}

	alice, err := env.client.Chat(ctx)
	if err != nil {
		t.Fatalf("alice Chat: %v", err)
	}
	bob, err := env.client.Chat(ctx)
	if err != nil {
		t.Fatalf("bob Chat: %v", err)
	}
	carol, err := env.client.Chat(ctx)
	if err != nil {
		t.Fatalf("carol Chat: %v", err)
	}
	env.waitRoomSize(t, 3)

	if err := alice.Send(&chatpb.ChatMessage{User: "Alice", Messages: "hello"}); err != nil {
		t.Fatalf("alice send: %v", err)
	}

	for _, peer := range []struct {
		name   string
		stream chatpb.ChatServer_ChatClient
	}{{"bob", bob}, {"carol", carol}} {
		msg := recvChat(t, peer.stream)
		if msg.GetUser() != "Alice" || msg.GetMessages() != "hello" {
			t.Errorf("%s received %+v, want {Alice, hello}", peer.name, msg)
		}
	}

	// The sender's own stream stays silent.
	aliceGot := make(chan *chatpb.ChatMessage, 1)
	go func() {
		if m, err := alice.Recv(); err == nil {
			aliceGot <- m
		}
	}()
	select {
	case m := <-aliceGot:
		t.Errorf("alice received her own line: %+v", m)
	case <-time.After(150 * time.Millisecond):
	}

	// Scenario continues: Alice leaves, the room shrinks, and Bob's next
	// line reaches only Carol.
	_ = alice.CloseSend()
	env.waitRoomSize(t, 2)

	if err := bob.Send(&chatpb.ChatMessage{User: "Bob", Messages: "ping"}); err != nil {
		t.Fatalf("bob send: %v", err)
	}
	msg := recvChat(t, carol)
	if msg.GetUser() != "Bob" || msg.GetMessages() != "ping" {
		t.Errorf("carol received %+v, want {Bob, ping}", msg)
	}

	_ = bob.CloseSend()
	_ = carol.CloseSend()
	env.waitRoomSize(t, 0)
}
