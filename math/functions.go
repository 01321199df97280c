// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"github.com/chewxy/math32"
)

// Lerp interpolates between a and b, t in [0,1].
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Saturate clamps f to [0,1].
func Saturate(f float32) float32 {
	return Clamp(0, f, 1)
}

// FromUchar maps a byte channel onto [0,1].
func FromUchar(v uint8) float32 {
	return float32(v) / 255
}

// ToUchar maps [0,1] onto a byte channel, rounding to nearest.
func ToUchar(f float32) uint8 {
	return uint8(Saturate(f)*255 + 0.5)
}

func SRGBToLinear(f float32) float32 {
	return math32.Pow(f, 2.2)
}

func LinearToSRGB(f float32) float32 {
	return math32.Pow(f, 1/2.2)
}

// ACES is the filmic tone mapping curve fitted by Krzysztof Narkowicz.
func ACES(f float32) float32 {
	const (
		a = 2.51
		b = 0.03
		c = 2.43
		d = 0.59
		e = 0.14
	)
	return Saturate((f * (a*f + b)) / (f*(c*f+d) + e))
}

// AngleMod wraps an angle in degrees into [0,360).
func AngleMod(a float32) float32 {
	return a - math32.Floor(a/360)*360
}
