package redis

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// EventsPubSub announces inventory changes so interested processes can drop
// their own cached views of an event.
type EventsPubSub struct {
	rdb *redis.Client
}

func NewEventsPubSub(rdb *redis.Client) *EventsPubSub {
	return &EventsPubSub{rdb: rdb}
}

func (p *EventsPubSub) PublishEventChanged(ctx context.Context, eventID int64) error {
	return p.rdb.Publish(ctx, ChannelEventsChanged(), strconv.FormatInt(eventID, 10)).Err()
}

// SubscribeEventsChanged delivers changed event ids until ctx is done.
func (p *EventsPubSub) SubscribeEventsChanged(ctx context.Context, fn func(eventID int64)) error {
	sub := p.rdb.Subscribe(ctx, ChannelEventsChanged())
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			id, err := strconv.ParseInt(msg.Payload, 10, 64)
			if err != nil {
				continue
			}
			fn(id)
		}
	}
}
