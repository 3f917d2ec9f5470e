package config

import "sync"

// Source produces reloaded configurations. *Watcher is the usual one.
type Source interface {
	Updates() <-chan RaceConfig
	Errors() <-chan error
	Done() <-chan struct{}
}

// Reload is one event from a Source: a new config or the error that
// prevented one.
type Reload struct {
	Config RaceConfig
	Err    error
}

// Feed fans a single Source out to any number of subscribers and remembers
// the last good config. Races started later begin from it.
type Feed struct {
	mu     sync.Mutex
	latest *RaceConfig
	subs   map[*Subscription]struct{}
}

// NewFeed starts forwarding src until it is done.
func NewFeed(src Source) *Feed {
	f := &Feed{subs: make(map[*Subscription]struct{})}
	go f.run(src)
	return f
}

func (f *Feed) run(src Source) {
	for {
		select {
		case <-src.Done():
			return
		case cfg := <-src.Updates():
			f.publish(Reload{Config: cfg})
		case err := <-src.Errors():
			f.publish(Reload{Err: err})
		}
	}
}

func (f *Feed) publish(r Reload) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.Err == nil {
		f.latest = &r.Config
	}
	for sub := range f.subs {
		sub.offer(r)
	}
}

// Latest returns the last config the source delivered, or base when there
// has been none. A nil feed always returns base.
func (f *Feed) Latest(base RaceConfig) RaceConfig {
	if f == nil {
		return base
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.latest == nil {
		return base
	}
	return *f.latest
}

// Subscribe registers a new listener. Every subscription must be closed.
// A nil feed returns a nil subscription.
func (f *Feed) Subscribe() *Subscription {
	if f == nil {
		return nil
	}
	sub := &Subscription{
		feed: f,
		c:    make(chan Reload, 1),
		done: make(chan struct{}),
	}
	f.mu.Lock()
	f.subs[sub] = struct{}{}
	f.mu.Unlock()
	return sub
}

func (f *Feed) unsubscribe(sub *Subscription) {
	f.mu.Lock()
	delete(f.subs, sub)
	f.mu.Unlock()
}

// Subscription receives the events of a Feed until it is closed.
type Subscription struct {
	feed *Feed
	c    chan Reload
	done chan struct{}
	once sync.Once
}

// offer queues r, replacing an event the subscriber has not read yet.
func (s *Subscription) offer(r Reload) {
	for {
		select {
		case s.c <- r:
			return
		default:
			select {
			case <-s.c:
			default:
			}
		}
	}
}

// C delivers reload events.
func (s *Subscription) C() <-chan Reload {
	return s.c
}

// Done is closed by Close. Readers blocked on C should select on it too.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Next blocks until an event arrives. It returns false once the
// subscription is closed.
func (s *Subscription) Next() (Reload, bool) {
	select {
	case r := <-s.c:
		return r, true
	case <-s.done:
		return Reload{}, false
	}
}

// Close detaches the subscription and wakes any blocked Next. It is safe to
// call more than once and on a nil subscription.
func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.feed.unsubscribe(s)
		close(s.done)
	})
}
