package chatpb

import (
	"bytes"
	"testing"

	"google.golang.org/grpc/mem"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestSendMessageRequestRoundTrip(t *testing.T) {
	in := &SendMessageRequest{
		User:         "Bob",
		Recipient:    "Alice",
		Messages:     "hi there",
		Requeststate: SendMessageRequest_PROCESSING,
	}

	b := in.marshalWire(nil)

	out := new(SendMessageRequest)
	if err := out.unmarshalWire(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if *out != *in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestLogInReplyRoundTrip(t *testing.T) {
	in := &LogInReply{Loginstate: LogInReply_SUCCESS, User: "Alice"}

	out := new(LogInReply)
	if err := out.unmarshalWire(in.marshalWire(nil)); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if *out != *in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

// Zero enums and empty strings are omitted; the empty ListRequest and a
// zero-state reply must encode to no bytes at all.
func TestZeroValuesOmitted(t *testing.T) {
	if b := (&ListRequest{}).marshalWire(nil); len(b) != 0 {
		t.Errorf("ListRequest encoded to %d bytes, want 0", len(b))
	}
	if b := (&ReceiveMessageReply{}).marshalWire(nil); len(b) != 0 {
		t.Errorf("zero ReceiveMessageReply encoded to %d bytes, want 0", len(b))
	}

	out := new(ReceiveMessageReply)
	if err := out.unmarshalWire(nil); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if out.Queuestate != ReceiveMessageReply_EMPTY || out.Messages != "" {
		t.Errorf("decoded zero reply = %+v", out)
	}
}

// The wire layout must match protoc output for the same schema: field 1
// as a length-delimited string, field 4 as a varint.
func TestWireTagLayout(t *testing.T) {
	b := (&SendMessageRequest{User: "X", Requeststate: SendMessageRequest_PROCESSING}).marshalWire(nil)

	want := protowire.AppendTag(nil, 1, protowire.BytesType)
	want = protowire.AppendString(want, "X")
	want = protowire.AppendTag(want, 4, protowire.VarintType)
	want = protowire.AppendVarint(want, 1)

	if !bytes.Equal(b, want) {
		t.Errorf("wire bytes = %x, want %x", b, want)
	}
}

// Decoders must skip fields they do not know so newer peers can add
// fields without breaking us.
func TestUnknownFieldSkipped(t *testing.T) {
	b := protowire.AppendTag(nil, 9, protowire.BytesType)
	b = protowire.AppendString(b, "future")
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "Alice")

	out := new(LogInRequest)
	if err := out.unmarshalWire(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.User != "Alice" {
		t.Errorf("User = %q, want Alice", out.User)
	}
}

func TestUnmarshalTruncated(t *testing.T) {
	b := (&LogInRequest{User: "Alice"}).marshalWire(nil)
	if err := new(LogInRequest).unmarshalWire(b[:len(b)-2]); err == nil {
		t.Error("unmarshal truncated input succeeded, want error")
	}
}

func TestCodecRejectsForeignTypes(t *testing.T) {
	var c Codec
	if _, err := c.Marshal(struct{}{}); err == nil {
		t.Error("Marshal of non-protocol type succeeded, want error")
	}
	if err := c.Unmarshal(mem.BufferSlice{}, &struct{}{}); err == nil {
		t.Error("Unmarshal into non-protocol type succeeded, want error")
	}
}

func TestCodecRoundTrip(t *testing.T) {
	var c Codec
	in := &LogOutReply{Confirmation: "bye"}

	data, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := new(LogOutReply)
	if err := c.Unmarshal(data, out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if *out != *in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

// Fan-out marshalling of the same *ChatMessage must hit the cache and
// produce identical bytes every time.
func TestChatMessageMarshalCached(t *testing.T) {
	var c Codec
	msg := &ChatMessage{User: "Alice", Messages: "hello room"}

	first, err := c.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := c.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(first.Materialize(), second.Materialize()) {
		t.Error("cached marshal differs from first marshal")
	}
	if _, hit := fanoutCache.Get(msg); !hit {
		t.Error("message not present in fanout cache")
	}
}
