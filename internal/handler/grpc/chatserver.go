// Package grpchandler implements the ChatServer gRPC service on top of
// the service layer. Stream handlers own the per-call protocol state;
// everything durable lives behind service.Chatter.
package grpchandler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/strelka-io/chatserver/internal/chatpb"
	"github.com/strelka-io/chatserver/internal/domain/directory"
	"github.com/strelka-io/chatserver/internal/service"
)

// ChatServerService handles the six ChatServer RPCs.
type ChatServerService struct {
	chatpb.UnimplementedChatServerServer

	logger *slog.Logger
	svc    service.Chatter
}

func NewChatServerService(logger *slog.Logger, svc service.Chatter) *ChatServerService {
	return &ChatServerService{
		logger: logger.With(slog.String("component", "grpc-handler")),
		svc:    svc,
	}
}

// streamLogger derives a child logger scoped to one stream.
func (s *ChatServerService) streamLogger(rpc string) *slog.Logger {
	return s.logger.With(
		slog.String("rpc", rpc),
		slog.String("stream_id", uuid.NewString()),
	)
}

// LogIn services login attempts until one succeeds. The client may retry
// invalid or colliding names on the same stream; the first SUCCESS reply
// completes the call.
func (s *ChatServerService) LogIn(stream chatpb.ChatServer_LogInServer) error {
	ctx := stream.Context()
	log := s.streamLogger("LogIn")

	for {
		req, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return recvErr(ctx, err)
		}

		outcome := s.svc.Login(ctx, req.GetUser())

		reply := &chatpb.LogInReply{User: req.GetUser()}
		switch outcome {
		case directory.OutcomeSuccess:
			reply.Loginstate = chatpb.LogInReply_SUCCESS
		case directory.OutcomeAlready:
			reply.Loginstate = chatpb.LogInReply_ALREADY
		default:
			reply.Loginstate = chatpb.LogInReply_INVALID
		}

		if err := stream.Send(reply); err != nil {
			return err
		}
		if outcome == directory.OutcomeSuccess {
			log.DebugContext(ctx, "login stream complete", slog.String("user", req.GetUser()))
			return nil
		}
	}
}

func (s *ChatServerService) LogOut(ctx context.Context, req *chatpb.LogOutRequest) (*chatpb.LogOutReply, error) {
	s.svc.Logout(ctx, req.GetUser())
	return &chatpb.LogOutReply{
		Confirmation: "Successfully logged out.",
	}, nil
}

// List renders every online user as "[name]", space-separated, with a
// trailing newline. No users yields just the newline.
func (s *ChatServerService) List(ctx context.Context, _ *chatpb.ListRequest) (*chatpb.ListReply, error) {
	names := s.svc.OnlineUsers()

	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		sb.WriteString(name)
		sb.WriteByte(']')
	}
	sb.WriteByte('\n')

	return &chatpb.ListReply{List: sb.String()}, nil
}

// SendMessage runs the two-phase private-message protocol. The INITIAL
// request resolves the recipient; PROCESSING requests queue messages to
// the resolved mailbox. An unknown recipient ends the stream right after
// the NO_EXIST reply.
func (s *ChatServerService) SendMessage(stream chatpb.ChatServer_SendMessageServer) error {
	ctx := stream.Context()
	log := s.streamLogger("SendMessage")

	var recipient string

	for {
		req, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return recvErr(ctx, err)
		}

		if req.GetRequeststate() == chatpb.SendMessageRequest_INITIAL {
			if !s.svc.HasUser(req.GetRecipient()) {
				log.DebugContext(ctx, "recipient not found", slog.String("recipient", req.GetRecipient()))
				return stream.Send(&chatpb.SendMessageReply{
					Recipientstate: chatpb.SendMessageReply_NO_EXIST,
					Confirmation:   "The user does not exist.",
				})
			}
			recipient = req.GetRecipient()
			if err := stream.Send(&chatpb.SendMessageReply{
				Recipientstate: chatpb.SendMessageReply_EXIST,
			}); err != nil {
				return err
			}
			continue
		}

		// PROCESSING before a resolved recipient is a protocol misuse;
		// answer non-fatally and close.
		if recipient == "" {
			return stream.Send(&chatpb.SendMessageReply{
				Recipientstate: chatpb.SendMessageReply_NO_EXIST,
				Confirmation:   "The user does not exist.",
			})
		}

		reply := &chatpb.SendMessageReply{
			Recipientstate: chatpb.SendMessageReply_EXIST,
			Confirmation:   fmt.Sprintf("All messages have been sent to %s", recipient),
		}
		if err := s.svc.QueueMessage(ctx, req.GetUser(), recipient, req.GetMessages()); err != nil {
			if !errors.Is(err, directory.ErrMailboxFull) {
				return status.Errorf(codes.Internal, "queue message: %v", err)
			}
			reply.Confirmation = fmt.Sprintf("Mailbox for %s is full", recipient)
		}
		if err := stream.Send(reply); err != nil {
			return err
		}
	}
}

// ReceiveMessage drains the user's mailbox onto the stream, one reply
// per pending message, and closes. An empty or unknown mailbox yields a
// single EMPTY reply.
func (s *ChatServerService) ReceiveMessage(req *chatpb.ReceiveMessageRequest, stream chatpb.ChatServer_ReceiveMessageServer) error {
	ctx := stream.Context()

	mbox, ok := s.svc.Mailbox(req.GetUser())
	if !ok {
		return stream.Send(&chatpb.ReceiveMessageReply{
			Queuestate: chatpb.ReceiveMessageReply_EMPTY,
		})
	}

	delivered := 0
	for {
		msg, _, popped := mbox.Pop()
		if !popped {
			break
		}
		if err := stream.Send(&chatpb.ReceiveMessageReply{
			Queuestate: chatpb.ReceiveMessageReply_NON_EMPTY,
			Messages:   msg,
		}); err != nil {
			// Undelivered pops are lost to this stream; count what went out.
			s.svc.NoteDelivered(ctx, req.GetUser(), delivered)
			return err
		}
		delivered++
	}

	if delivered == 0 {
		return stream.Send(&chatpb.ReceiveMessageReply{
			Queuestate: chatpb.ReceiveMessageReply_EMPTY,
		})
	}

	s.svc.NoteDelivered(ctx, req.GetUser(), delivered)
	return nil
}

// Chat joins the stream to the room and runs the two half-duplex flows
// until the client half-closes or the stream context ends.
func (s *ChatServerService) Chat(stream chatpb.ChatServer_ChatServer) error {
	ctx := stream.Context()
	log := s.streamLogger("Chat")

	ep := s.svc.JoinChat(ctx)
	defer s.svc.LeaveChat(context.WithoutCancel(ctx), ep)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// Closing the endpoint stops the writer below once the client
		// half-closes or the stream breaks.
		defer ep.Close()
		for {
			msg, err := stream.Recv()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return recvErr(gctx, err)
			}
			s.svc.BroadcastChat(gctx, ep, msg)
		}
	})

	g.Go(func() error {
		for {
			select {
			case msg := <-ep.Recv():
				if err := stream.Send(msg); err != nil {
					return err
				}
			case <-ep.Done():
				return nil
			case <-gctx.Done():
				return nil
			}
		}
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.DebugContext(ctx, "chat stream complete",
		slog.String("user", ep.User()),
		slog.Uint64("dropped", ep.Dropped()),
	)
	return nil
}

// recvErr normalizes stream read failures: peer cancellation is a clean
// end, everything else propagates.
func recvErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return nil
	}
	if status.Code(err) == codes.Canceled {
		return nil
	}
	return err
}
