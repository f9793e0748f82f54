package lists

import "github.com/arthur-debert/clio/pkg/clio"

// DefaultBullet marks unordered items unless another bullet is set.
const DefaultBullet = "-"

// Unordered is a bulleted list. Every level uses the same bullet.
type Unordered struct {
	list
	bullet string
}

func NewUnordered(c *clio.Clio) *Unordered {
	return &Unordered{list: list{clio: c}, bullet: DefaultBullet}
}

// SetBullet changes the bullet for the items that follow. An empty bullet
// leaves a single blank before the text.
func (u *Unordered) SetBullet(bullet string) *Unordered {
	u.bullet = bullet
	return u
}

// Start opens a level. intro is shown only when opening the outermost one.
func (u *Unordered) Start(intro string) *Unordered {
	u.start(intro)
	return u
}

func (u *Unordered) Item(text string) *Unordered {
	u.drawItem(u.bullet+" ", text)
	return u
}

func (u *Unordered) End() *Unordered {
	u.end()
	return u
}
