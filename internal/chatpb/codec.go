package chatpb

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/mem"
)

// Name is the codec name; it selects the application/grpc+chatwire
// content subtype. The bytes on the wire are plain protobuf, only the
// subtype label differs from the stock proto codec.
const Name = "chatwire"

// fanoutCache memoizes the wire form of broadcast chat lines. One inbound
// line is fanned out to every endpoint in the room, and each endpoint's
// stream.Send would otherwise re-marshal the same immutable message.
// Keyed by pointer identity: the room hands the same *ChatMessage to
// every recipient.
var fanoutCache, _ = lru.New[*ChatMessage, []byte](512)

// Codec is a grpc codec for the chatserver message shapes. Install it
// server-side with grpc.ForceServerCodecV2; the client stubs in this
// package force it on every call.
type Codec struct{}

func (Codec) Name() string { return Name }

func (Codec) Marshal(v any) (mem.BufferSlice, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("chatwire: cannot marshal %T", v)
	}
	if cm, ok := v.(*ChatMessage); ok {
		if b, hit := fanoutCache.Get(cm); hit {
			return mem.BufferSlice{mem.SliceBuffer(b)}, nil
		}
		b := cm.marshalWire(nil)
		fanoutCache.Add(cm, b)
		return mem.BufferSlice{mem.SliceBuffer(b)}, nil
	}
	return mem.BufferSlice{mem.SliceBuffer(m.marshalWire(nil))}, nil
}

func (Codec) Unmarshal(data mem.BufferSlice, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("chatwire: cannot unmarshal into %T", v)
	}
	return m.unmarshalWire(data.Materialize())
}

// forceCodec is prepended to every client call issued through the stubs
// so callers do not need to configure the codec on the connection.
var forceCodec = grpc.ForceCodecV2(Codec{})
