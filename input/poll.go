package input

import (
	"sort"

	"github.com/pkg/errors"
)

// Poller is a frame-polled keyboard: a queue of fresh presses, ended by a
// zero code, plus a per-key auto-repeat flag for the current frame.
type Poller interface {
	NextPressed() int32
	Repeated(code int32) bool
}

type binding struct {
	code int32
	key  Key
}

// Bindings maps platform key codes to logical keys
type Bindings struct {
	list []binding
}

// NewBindings builds bindings from logical key names to platform codes
func NewBindings(codes map[string]int32) (*Bindings, error) {
	b := &Bindings{}
	for name, code := range codes {
		key := ParseKey(name)
		if key == KeyNone {
			return nil, errors.Errorf("unknown key name %q", name)
		}
		b.list = append(b.list, binding{code: code, key: key})
	}
	sort.Slice(b.list, func(i, j int) bool {
		return b.list[i].key < b.list[j].key
	})
	return b, nil
}

func (b *Bindings) Lookup(code int32) (Key, bool) {
	for _, bd := range b.list {
		if bd.code == code {
			return bd.key, true
		}
	}
	return KeyNone, false
}

// Poll drains the fresh presses in order, then adds one press for every
// held arrow the platform auto-repeated this frame. A held arrow therefore
// counts as repeated presses, the same as a repeated key-down event.
func (b *Bindings) Poll(p Poller) []Key {
	var keys []Key
	for code := p.NextPressed(); code != 0; code = p.NextPressed() {
		if key, ok := b.Lookup(code); ok {
			keys = append(keys, key)
		}
	}

	for _, bd := range b.list {
		if _, ok := bd.key.Direction(); ok && p.Repeated(bd.code) {
			keys = append(keys, bd.key)
		}
	}
	return keys
}
