package store

// Event is a store change notification. The closed set of variants replaces
// stringly-typed event names: switch on the concrete type.
type Event interface {
	isEvent()
}

// ChangeEvent signals that the entry, category, or tracker collections
// changed. It carries no payload; subscribers re-query the store.
type ChangeEvent struct{}

// SettingsEvent signals a single setting write.
type SettingsEvent struct {
	Key   string
	Value any
}

func (ChangeEvent) isEvent()   {}
func (SettingsEvent) isEvent() {}

type bus struct {
	nextID int
	subs   map[int]func(Event)
}

// subscribe registers a callback and returns its unsubscribe handle.
func (b *bus) subscribe(fn func(Event)) func() {
	if b.subs == nil {
		b.subs = make(map[int]func(Event))
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	return func() {
		delete(b.subs, id)
	}
}

// publish invokes every subscriber with the event. The subscriber set is
// snapshotted first so an unsubscribe during delivery cannot skip or repeat a
// callback. Mutating the store from inside a callback is not supported.
func (b *bus) publish(ev Event) {
	if len(b.subs) == 0 {
		return
	}
	fns := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn(ev)
	}
}
