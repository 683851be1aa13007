package utils

import "testing"

func TestPublishRunsSubscribersSynchronously(t *testing.T) {
	eb := NewEventBus()
	var got []string
	eb.Subscribe("task_updated", func(e Event) {
		got = append(got, e.Event)
	})

	eb.Publish("task_updated", nil)
	eb.Publish("task_deleted", nil)

	if len(got) != 1 || got[0] != "task_updated" {
		t.Fatalf("handler calls = %v, want exactly one task_updated", got)
	}
}

func TestPublishFeedsChannel(t *testing.T) {
	eb := NewEventBus()
	eb.Publish("presence_sync", map[string]interface{}{"online": []string{"kim"}})

	select {
	case e := <-eb.SubscribeCh():
		if e.Event != "presence_sync" {
			t.Fatalf("event = %q, want presence_sync", e.Event)
		}
	default:
		t.Fatal("published event never reached the channel")
	}
}

func TestPublishNeverBlocksWhenChannelFull(t *testing.T) {
	eb := NewEventBus()
	for i := 0; i < 200; i++ {
		eb.Publish("task_updated", i)
	}
}
