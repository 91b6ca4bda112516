package broadcast_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"globalnews/internal/domain/entity"
	"globalnews/internal/usecase/broadcast"
)

func startHub(t *testing.T, live broadcast.LiveSource) *broadcast.Hub {
	t.Helper()
	hub := broadcast.NewHub(live, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func recvEvent(t *testing.T, c *broadcast.Conn) broadcast.Event {
	t.Helper()
	select {
	case ev, ok := <-c.Events():
		if !ok {
			t.Fatal("connection closed while waiting for event")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return broadcast.Event{}
}

func article(id string, live bool) *entity.Article {
	return &entity.Article{ID: id, Title: "t-" + id, IsLive: live, Timestamp: time.Now()}
}

func TestConnect_EmptyLiveSetYieldsNoPush(t *testing.T) {
	live := func(context.Context) (*entity.Article, error) { return nil, nil }
	hub := startHub(t, live)

	c := hub.Connect()
	defer hub.Disconnect(c)

	// Publish a non-live article; the first event the viewer sees must be
	// the publish, not a snapshot.
	hub.PublishArticle(article("a1", false))

	ev := recvEvent(t, c)
	if ev.Name != broadcast.EventNewsPosted {
		t.Errorf("first event = %q, want %q (no snapshot for an empty live set)",
			ev.Name, broadcast.EventNewsPosted)
	}
}

func TestConnect_ReceivesMostRecentLiveArticle(t *testing.T) {
	// Three live articles at t1<t2<t3: the snapshot is the one at t3 only.
	latest := article("t3", true)
	live := func(context.Context) (*entity.Article, error) { return latest, nil }
	hub := startHub(t, live)

	c := hub.Connect()
	defer hub.Disconnect(c)

	ev := recvEvent(t, c)
	if ev.Name != broadcast.EventLiveNews {
		t.Fatalf("event = %q, want %q", ev.Name, broadcast.EventLiveNews)
	}
	arts, ok := ev.Data.([]*entity.Article)
	if !ok || len(arts) != 1 || arts[0].ID != "t3" {
		t.Errorf("snapshot payload = %#v, want single-element list with t3", ev.Data)
	}
}

func TestPublish_NonLiveEmitsNewsPostedOnly(t *testing.T) {
	hub := startHub(t, nil)

	c1 := hub.Connect()
	c2 := hub.Connect()
	defer hub.Disconnect(c1)
	defer hub.Disconnect(c2)

	hub.PublishArticle(article("a1", false))
	hub.PublishArticle(article("a2", false))

	for _, c := range []*broadcast.Conn{c1, c2} {
		if ev := recvEvent(t, c); ev.Name != broadcast.EventNewsPosted {
			t.Errorf("event = %q, want newsPosted", ev.Name)
		}
		// The second publish follows directly: no liveNews in between.
		if ev := recvEvent(t, c); ev.Name != broadcast.EventNewsPosted {
			t.Errorf("event = %q, want newsPosted (no liveNews for non-live article)", ev.Name)
		}
	}
}

func TestPublish_LiveEmitsBothInOrder(t *testing.T) {
	hub := startHub(t, nil)

	c := hub.Connect()
	defer hub.Disconnect(c)

	hub.PublishArticle(article("a1", true))

	first := recvEvent(t, c)
	second := recvEvent(t, c)
	if first.Name != broadcast.EventNewsPosted || second.Name != broadcast.EventLiveNews {
		t.Fatalf("order = [%q, %q], want [newsPosted, liveNews]", first.Name, second.Name)
	}
	arts, ok := second.Data.([]*entity.Article)
	if !ok || len(arts) != 1 || arts[0].ID != "a1" {
		t.Errorf("liveNews payload = %#v, want single-element list", second.Data)
	}
}

func TestDisconnect_Idempotent(t *testing.T) {
	hub := startHub(t, nil)

	c := hub.Connect()
	hub.Disconnect(c)
	hub.Disconnect(c) // must be a no-op, not a double close

	if _, ok := <-c.Events(); ok {
		t.Error("expected closed event channel after disconnect")
	}

	// Other connections keep receiving.
	c2 := hub.Connect()
	defer hub.Disconnect(c2)
	hub.PublishArticle(article("a1", false))
	if ev := recvEvent(t, c2); ev.Name != broadcast.EventNewsPosted {
		t.Errorf("surviving connection got %q, want newsPosted", ev.Name)
	}
}

func TestPublish_SlowViewerDroppedOthersUnaffected(t *testing.T) {
	hub := startHub(t, nil)

	slow := hub.Connect() // never drained
	fast := hub.Connect()
	defer hub.Disconnect(fast)

	// Overflow the slow viewer's buffer while keeping the fast one inside
	// its own: publish in bursts no larger than the per-connection queue
	// (16 events), draining the fast viewer between bursts. The second
	// burst pushes the stuck viewer past its queue and gets it dropped.
	for burst := 0; burst < 2; burst++ {
		for i := 0; i < 16; i++ {
			hub.PublishArticle(article(fmt.Sprintf("a%d-%d", burst, i), false))
		}
		for i := 0; i < 16; i++ {
			if ev := recvEvent(t, fast); ev.Name != broadcast.EventNewsPosted {
				t.Fatalf("fast viewer event = %q, want newsPosted", ev.Name)
			}
		}
	}

	// The slow viewer was dropped: its channel drains and then closes.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-slow.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("slow viewer was not dropped")
		}
	}
}
