package chatpb

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every shape in chatserver.proto. The encoding
// is standard protobuf wire format; unknown fields are skipped on decode
// and zero values are omitted on encode, so the codec stays compatible
// with protoc-generated peers.
type Message interface {
	marshalWire(b []byte) []byte
	unmarshalWire(b []byte) error
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendEnum(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func consumeString(b []byte) (string, int, error) {
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeEnum(b []byte) (int32, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return int32(v), n, nil
}

func skipField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}

func (m *LogInRequest) marshalWire(b []byte) []byte {
	return appendString(b, 1, m.User)
}

func (m *LogInRequest) unmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.User, n, err = consumeString(b)
		default:
			n, err = skipField(num, typ, b)
		}
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func (m *LogInReply) marshalWire(b []byte) []byte {
	b = appendEnum(b, 1, int32(m.Loginstate))
	return appendString(b, 2, m.User)
}

func (m *LogInReply) unmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.VarintType:
			var v int32
			v, n, err = consumeEnum(b)
			m.Loginstate = LogInReply_LogInState(v)
		case num == 2 && typ == protowire.BytesType:
			m.User, n, err = consumeString(b)
		default:
			n, err = skipField(num, typ, b)
		}
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func (m *LogOutRequest) marshalWire(b []byte) []byte {
	return appendString(b, 1, m.User)
}

func (m *LogOutRequest) unmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.User, n, err = consumeString(b)
		default:
			n, err = skipField(num, typ, b)
		}
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func (m *LogOutReply) marshalWire(b []byte) []byte {
	return appendString(b, 1, m.Confirmation)
}

func (m *LogOutReply) unmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Confirmation, n, err = consumeString(b)
		default:
			n, err = skipField(num, typ, b)
		}
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func (m *ListRequest) marshalWire(b []byte) []byte {
	return b
}

func (m *ListRequest) unmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		n, err := skipField(num, typ, b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func (m *ListReply) marshalWire(b []byte) []byte {
	return appendString(b, 1, m.List)
}

func (m *ListReply) unmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.List, n, err = consumeString(b)
		default:
			n, err = skipField(num, typ, b)
		}
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func (m *ReceiveMessageRequest) marshalWire(b []byte) []byte {
	return appendString(b, 1, m.User)
}

func (m *ReceiveMessageRequest) unmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.User, n, err = consumeString(b)
		default:
			n, err = skipField(num, typ, b)
		}
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func (m *ReceiveMessageReply) marshalWire(b []byte) []byte {
	b = appendEnum(b, 1, int32(m.Queuestate))
	return appendString(b, 2, m.Messages)
}

func (m *ReceiveMessageReply) unmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.VarintType:
			var v int32
			v, n, err = consumeEnum(b)
			m.Queuestate = ReceiveMessageReply_QueueState(v)
		case num == 2 && typ == protowire.BytesType:
			m.Messages, n, err = consumeString(b)
		default:
			n, err = skipField(num, typ, b)
		}
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func (m *SendMessageRequest) marshalWire(b []byte) []byte {
	b = appendString(b, 1, m.User)
	b = appendString(b, 2, m.Recipient)
	b = appendString(b, 3, m.Messages)
	return appendEnum(b, 4, int32(m.Requeststate))
}

func (m *SendMessageRequest) unmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.User, n, err = consumeString(b)
		case num == 2 && typ == protowire.BytesType:
			m.Recipient, n, err = consumeString(b)
		case num == 3 && typ == protowire.BytesType:
			m.Messages, n, err = consumeString(b)
		case num == 4 && typ == protowire.VarintType:
			var v int32
			v, n, err = consumeEnum(b)
			m.Requeststate = SendMessageRequest_RequestState(v)
		default:
			n, err = skipField(num, typ, b)
		}
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func (m *SendMessageReply) marshalWire(b []byte) []byte {
	b = appendEnum(b, 1, int32(m.Recipientstate))
	return appendString(b, 2, m.Confirmation)
}

func (m *SendMessageReply) unmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.VarintType:
			var v int32
			v, n, err = consumeEnum(b)
			m.Recipientstate = SendMessageReply_RecipientState(v)
		case num == 2 && typ == protowire.BytesType:
			m.Confirmation, n, err = consumeString(b)
		default:
			n, err = skipField(num, typ, b)
		}
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func (m *ChatMessage) marshalWire(b []byte) []byte {
	b = appendString(b, 1, m.User)
	return appendString(b, 2, m.Messages)
}

func (m *ChatMessage) unmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.User, n, err = consumeString(b)
		case num == 2 && typ == protowire.BytesType:
			m.Messages, n, err = consumeString(b)
		default:
			n, err = skipField(num, typ, b)
		}
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}
