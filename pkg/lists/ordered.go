package lists

import (
	"strconv"

	"github.com/arthur-debert/clio/pkg/clio"
)

// Ordered numbers its items. The second nesting level counts a, b, c and
// the fourth A, B, C; every other level uses numbers. Each level restarts
// when it is ended.
type Ordered struct {
	list
	counters map[int]int
}

func NewOrdered(c *clio.Clio) *Ordered {
	return &Ordered{list: list{clio: c}, counters: map[int]int{}}
}

func (o *Ordered) Start(intro string) *Ordered {
	o.start(intro)
	return o
}

func (o *Ordered) Item(text string) *Ordered {
	o.drawItem(o.next()+". ", text)
	return o
}

func (o *Ordered) End() *Ordered {
	delete(o.counters, o.nesting)
	o.end()
	return o
}

func (o *Ordered) next() string {
	o.counters[o.nesting]++
	return Label(o.nesting, o.counters[o.nesting])
}

// Label is the item label for the n-th item at a nesting level. Letters
// run out after z and Z; numbers take over from there.
func Label(nesting, n int) string {
	if n >= 1 && n <= 26 {
		switch nesting {
		case 2:
			return string(rune('a' + n - 1))
		case 4:
			return string(rune('A' + n - 1))
		}
	}
	return strconv.Itoa(n)
}
