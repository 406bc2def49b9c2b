package event

import "testing"

func TestTopicRouting(t *testing.T) {
	cases := map[Kind]string{
		KindLoggedIn:       TopicPresence,
		KindLoggedOut:      TopicPresence,
		KindLoginRejected:  TopicPresence,
		KindMessageQueued:  TopicMailbox,
		KindMailboxDrained: TopicMailbox,
		KindChatJoined:     TopicRoom,
		KindChatLeft:       TopicRoom,
		KindChatLine:       TopicRoom,
	}
	for kind, want := range cases {
		if got := New(kind, "u").Topic(); got != want {
			t.Errorf("Topic(%s) = %s, want %s", kind, got, want)
		}
	}
}

func TestNewPopulatesIdentity(t *testing.T) {
	ev := New(KindLoggedIn, "Alice")
	if ev.ID == "" {
		t.Error("ID is empty")
	}
	if ev.User != "Alice" || ev.Kind != KindLoggedIn {
		t.Errorf("New = %+v", ev)
	}
	if ev.OccurredAt.IsZero() {
		t.Error("OccurredAt is zero")
	}
}
