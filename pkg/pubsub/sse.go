package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/kardel/brep2graph/pkg/logging"
)

// subChanSize bounds each subscriber's event channel so a stalled SSE
// client cannot block conversion publishing.
const subChanSize = 64

// TopicConfig controls how a topic buffers events for late subscribers.
// The graph topic keeps only the newest tensor summary; the
// conversion_status topic keeps a short history.
type TopicConfig struct {
	BufferSize int  // events retained (0 disables replay)
	ReplayAll  bool // replay the whole buffer instead of the newest event
}

// SSEPublisher fans events out to SSE subscribers, buffering per topic
// so a viewer that connects after a conversion still sees its result.
type SSEPublisher struct {
	mu      sync.RWMutex
	subs    map[string]map[*sseSub]struct{}
	version map[string]int
	buffer  map[string][]Event
	config  map[string]TopicConfig
	closed  bool
}

// NewSSEPublisher creates an empty publisher. Topics come into being on
// first publish or subscribe.
func NewSSEPublisher() *SSEPublisher {
	return &SSEPublisher{
		subs:    make(map[string]map[*sseSub]struct{}),
		version: make(map[string]int),
		buffer:  make(map[string][]Event),
		config:  make(map[string]TopicConfig),
	}
}

// ConfigureTopic sets the buffering policy for a topic.
func (p *SSEPublisher) ConfigureTopic(topic string, cfg TopicConfig) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.config[topic] = cfg
}

// Subscribe registers a new subscriber and replays buffered events per
// the topic's policy. Cancelling ctx closes the subscription.
func (p *SSEPublisher) Subscribe(ctx context.Context, topic string) (Subscription, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, fmt.Errorf("publisher is closed")
	}

	sub := &sseSub{
		topic:     topic,
		events:    make(chan Event, subChanSize),
		publisher: p,
	}
	if p.subs[topic] == nil {
		p.subs[topic] = make(map[*sseSub]struct{})
	}
	p.subs[topic][sub] = struct{}{}
	replay := p.replayLocked(topic)
	p.mu.Unlock()

	for _, event := range replay {
		select {
		case sub.events <- event:
		default:
			logging.Warn("dropping replayed event", "topic", topic)
		}
	}
	if len(replay) > 0 {
		logging.Debug("replayed buffered events", "topic", topic, "count", len(replay))
	}

	go func() {
		<-ctx.Done()
		sub.Close()
	}()

	return sub, nil
}

// replayLocked picks the events a fresh subscriber should see. Callers
// hold p.mu.
func (p *SSEPublisher) replayLocked(topic string) []Event {
	buf := p.buffer[topic]
	if len(buf) == 0 {
		return nil
	}
	if !p.config[topic].ReplayAll {
		buf = buf[len(buf)-1:]
	}
	out := make([]Event, len(buf))
	copy(out, buf)
	return out
}

// Publish versions, buffers, and fans out one event. Delivery is
// non-blocking: a full subscriber drops the event rather than stalling
// the converter.
func (p *SSEPublisher) Publish(topic, eventType string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling %s event: %w", topic, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return fmt.Errorf("publisher is closed")
	}

	p.version[topic]++
	event := Event{
		Topic:   topic,
		Type:    eventType,
		Data:    payload,
		Version: p.version[topic],
	}

	if size := p.config[topic].BufferSize; size > 0 {
		buf := append(p.buffer[topic], event)
		if len(buf) > size {
			buf = buf[len(buf)-size:]
		}
		p.buffer[topic] = buf
	}

	for sub := range p.subs[topic] {
		select {
		case sub.events <- event:
		default:
			logging.Warn("subscriber lagging, dropping event", "topic", topic, "version", event.Version)
		}
	}
	return nil
}

// Close shuts down the publisher and every subscription.
func (p *SSEPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	for _, subs := range p.subs {
		for sub := range subs {
			close(sub.events)
		}
	}
	p.subs = make(map[string]map[*sseSub]struct{})
	return nil
}

func (p *SSEPublisher) unsubscribe(sub *sseSub) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if subs := p.subs[sub.topic]; subs != nil {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(p.subs, sub.topic)
		}
	}
}

type sseSub struct {
	topic     string
	events    chan Event
	publisher *SSEPublisher

	mu     sync.Mutex
	closed bool
}

func (s *sseSub) Topic() string        { return s.topic }
func (s *sseSub) Events() <-chan Event { return s.events }

func (s *sseSub) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.publisher.unsubscribe(s)
	return nil
}

// WriteSSE writes one event in wire format: "data: {json}\n\n".
func WriteSSE(w io.Writer, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", payload)
	return err
}
