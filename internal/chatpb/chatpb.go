// Package chatpb carries the chatserver wire protocol: the message shapes
// and enums from chatserver.proto, a protobuf wire codec for them, and the
// gRPC service plumbing (service descriptor, server interface, client
// stubs). The Go types are maintained by hand against chatserver.proto;
// no generated code is checked in.
package chatpb

// LogInReply_LogInState mirrors chatserver.LogInReply.LogInState.
type LogInReply_LogInState int32

const (
	LogInReply_SERVER_OFF LogInReply_LogInState = 0
	LogInReply_INVALID    LogInReply_LogInState = 1
	LogInReply_ALREADY    LogInReply_LogInState = 2
	LogInReply_SUCCESS    LogInReply_LogInState = 3
)

func (s LogInReply_LogInState) String() string {
	switch s {
	case LogInReply_SERVER_OFF:
		return "SERVER_OFF"
	case LogInReply_INVALID:
		return "INVALID"
	case LogInReply_ALREADY:
		return "ALREADY"
	case LogInReply_SUCCESS:
		return "SUCCESS"
	}
	return "UNKNOWN"
}

// ReceiveMessageReply_QueueState mirrors chatserver.ReceiveMessageReply.QueueState.
type ReceiveMessageReply_QueueState int32

const (
	ReceiveMessageReply_EMPTY     ReceiveMessageReply_QueueState = 0
	ReceiveMessageReply_NON_EMPTY ReceiveMessageReply_QueueState = 1
)

func (s ReceiveMessageReply_QueueState) String() string {
	if s == ReceiveMessageReply_NON_EMPTY {
		return "NON_EMPTY"
	}
	return "EMPTY"
}

// SendMessageRequest_RequestState mirrors chatserver.SendMessageRequest.RequestState.
type SendMessageRequest_RequestState int32

const (
	SendMessageRequest_INITIAL    SendMessageRequest_RequestState = 0
	SendMessageRequest_PROCESSING SendMessageRequest_RequestState = 1
)

func (s SendMessageRequest_RequestState) String() string {
	if s == SendMessageRequest_PROCESSING {
		return "PROCESSING"
	}
	return "INITIAL"
}

// SendMessageReply_RecipientState mirrors chatserver.SendMessageReply.RecipientState.
type SendMessageReply_RecipientState int32

const (
	SendMessageReply_NO_EXIST SendMessageReply_RecipientState = 0
	SendMessageReply_EXIST    SendMessageReply_RecipientState = 1
)

func (s SendMessageReply_RecipientState) String() string {
	if s == SendMessageReply_EXIST {
		return "EXIST"
	}
	return "NO_EXIST"
}

type LogInRequest struct {
	User string
}

func (m *LogInRequest) GetUser() string {
	if m == nil {
		return ""
	}
	return m.User
}

type LogInReply struct {
	Loginstate LogInReply_LogInState
	User       string
}

func (m *LogInReply) GetLoginstate() LogInReply_LogInState {
	if m == nil {
		return LogInReply_SERVER_OFF
	}
	return m.Loginstate
}

func (m *LogInReply) GetUser() string {
	if m == nil {
		return ""
	}
	return m.User
}

type LogOutRequest struct {
	User string
}

func (m *LogOutRequest) GetUser() string {
	if m == nil {
		return ""
	}
	return m.User
}

type LogOutReply struct {
	Confirmation string
}

func (m *LogOutReply) GetConfirmation() string {
	if m == nil {
		return ""
	}
	return m.Confirmation
}

type ListRequest struct{}

type ListReply struct {
	List string
}

func (m *ListReply) GetList() string {
	if m == nil {
		return ""
	}
	return m.List
}

type ReceiveMessageRequest struct {
	User string
}

func (m *ReceiveMessageRequest) GetUser() string {
	if m == nil {
		return ""
	}
	return m.User
}

type ReceiveMessageReply struct {
	Queuestate ReceiveMessageReply_QueueState
	Messages   string
}

func (m *ReceiveMessageReply) GetQueuestate() ReceiveMessageReply_QueueState {
	if m == nil {
		return ReceiveMessageReply_EMPTY
	}
	return m.Queuestate
}

func (m *ReceiveMessageReply) GetMessages() string {
	if m == nil {
		return ""
	}
	return m.Messages
}

type SendMessageRequest struct {
	User         string
	Recipient    string
	Messages     string
	Requeststate SendMessageRequest_RequestState
}

func (m *SendMessageRequest) GetUser() string {
	if m == nil {
		return ""
	}
	return m.User
}

func (m *SendMessageRequest) GetRecipient() string {
	if m == nil {
		return ""
	}
	return m.Recipient
}

func (m *SendMessageRequest) GetMessages() string {
	if m == nil {
		return ""
	}
	return m.Messages
}

func (m *SendMessageRequest) GetRequeststate() SendMessageRequest_RequestState {
	if m == nil {
		return SendMessageRequest_INITIAL
	}
	return m.Requeststate
}

type SendMessageReply struct {
	Recipientstate SendMessageReply_RecipientState
	Confirmation   string
}

func (m *SendMessageReply) GetRecipientstate() SendMessageReply_RecipientState {
	if m == nil {
		return SendMessageReply_NO_EXIST
	}
	return m.Recipientstate
}

func (m *SendMessageReply) GetConfirmation() string {
	if m == nil {
		return ""
	}
	return m.Confirmation
}

type ChatMessage struct {
	User     string
	Messages string
}

func (m *ChatMessage) GetUser() string {
	if m == nil {
		return ""
	}
	return m.User
}

func (m *ChatMessage) GetMessages() string {
	if m == nil {
		return ""
	}
	return m.Messages
}
