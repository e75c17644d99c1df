// Package axis holds the per-axis signal processing between the ADC and
// the pointer: dead-zone filtering and linear range mapping.
package axis

// Filter snaps sample to center when it lies strictly within radius of
// center. A radius of 0 disables the dead-zone.
func Filter(sample, center, radius uint16) uint16 {
	d := int(sample) - int(center)
	if d < 0 {
		d = -d
	}
	if d < int(radius) {
		return center
	}
	return sample
}
