package bus

import (
	"sync"
	"testing"
)

func TestPublishReachesOnlyMatchingTopic(t *testing.T) {
	eventBus := New()

	var rotaEvents, sleepEvents []Event
	eventBus.Subscribe(TopicRotaSaved, func(event Event) {
		rotaEvents = append(rotaEvents, event)
	})
	eventBus.Subscribe(TopicSleepChanged, func(event Event) {
		sleepEvents = append(sleepEvents, event)
	})

	eventBus.Publish(Event{Topic: TopicRotaSaved, UserID: 7})

	if len(rotaEvents) != 1 || rotaEvents[0].UserID != 7 {
		t.Fatalf("rota subscriber got %+v, want one event for user 7", rotaEvents)
	}
	if len(sleepEvents) != 0 {
		t.Fatalf("sleep subscriber must not receive rota events, got %+v", sleepEvents)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	eventBus := New()

	count := 0
	subscription := eventBus.Subscribe(TopicRotaCleared, func(Event) {
		count++
	})

	eventBus.Publish(Event{Topic: TopicRotaCleared, UserID: 1})
	eventBus.Unsubscribe(subscription)
	eventBus.Publish(Event{Topic: TopicRotaCleared, UserID: 1})

	if count != 1 {
		t.Fatalf("handler ran %d times, want 1", count)
	}
}

func TestPublishWithNoSubscribersIsNoop(t *testing.T) {
	eventBus := New()
	eventBus.Publish(Event{Topic: TopicSleepChanged, UserID: 1})
}

func TestConcurrentPublishAndSubscribe(t *testing.T) {
	eventBus := New()

	var mu sync.Mutex
	seen := 0
	eventBus.Subscribe(TopicRotaSaved, func(Event) {
		mu.Lock()
		seen++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for iteration := 0; iteration < 50; iteration++ {
				eventBus.Publish(Event{Topic: TopicRotaSaved, UserID: 1})
			}
		}()
	}
	wg.Wait()

	if seen != 400 {
		t.Fatalf("handler ran %d times, want 400", seen)
	}
}
