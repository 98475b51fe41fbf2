package signal

type Constant struct {
	Value float64
}

func NewConstant(value float64) *Constant {
	return &Constant{Value: value}
}

func (c *Constant) Name() string { return "constant" }

func (c *Constant) Sample(t float64) float64 {
	return c.Value
}

func (c *Constant) Integral(t0, t1 float64) float64 {
	return c.Value * (t1 - t0)
}
