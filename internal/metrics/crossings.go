package metrics

// Crossings counts sign changes of the accumulator over a run.
type Crossings struct {
	name  string
	prev  float64
	seen  bool
	count int
}

func NewCrossings() *Crossings {
	return &Crossings{name: "crossings"}
}

func (c *Crossings) Name() string { return c.name }

func (c *Crossings) Observe(acc, sample, t float64) {
	if c.seen && (c.prev < 0) != (acc < 0) && acc != 0 && c.prev != 0 {
		c.count++
	}
	c.prev = acc
	c.seen = true
}

func (c *Crossings) Value() float64 {
	return float64(c.count)
}

func (c *Crossings) Reset() {
	c.prev = 0
	c.seen = false
	c.count = 0
}
