package cssfilter

import "github.com/gogpu/cssfilter/internal/color"

// lossScale multiplies the squared Oklab distance. It puts typical losses
// between 0.001 and 100, the range the optimizer tolerances are tuned for;
// a loss of 1 is roughly a just-noticeable difference.
const lossScale = 5000

// Loss returns the perceptual distance between the color produced by p and
// target. p is quantized first, so Loss(p) == Loss(p.Quantize()).
func Loss(p Params, target RGB) float64 {
	return loss(p, color.FromRGB8(target.R, target.G, target.B))
}

func loss(p Params, target color.Lab) float64 {
	r, g, b := p.chain().Render().Float64()
	return lossScale * color.FromSRGB(r, g, b).DistanceSquared(target)
}
