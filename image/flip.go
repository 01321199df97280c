// SPDX-License-Identifier: GPL-2.0-or-later

package image

// normalizeOrientation turns the stored scanline order described by the
// descriptor byte into top-left origin.
func normalizeOrientation(img *Image, descriptor uint8) {
	if descriptor&originTop == 0 {
		FlipVertical(img)
	}
	if descriptor&originRight != 0 {
		FlipHorizontal(img)
	}
}

// FlipVertical mirrors img top to bottom in place.
func FlipVertical(img *Image) {
	if img == nil || img.Height < 2 {
		return
	}
	tmp := make([]byte, img.Pitch)
	for y := 0; y < img.Height/2; y++ {
		top := img.row(y)
		bottom := img.row(img.Height - 1 - y)
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// FlipHorizontal mirrors img left to right in place.
func FlipHorizontal(img *Image) {
	if img == nil || img.Width < 2 {
		return
	}
	c := img.Channels
	var tmp [4]byte
	for y := 0; y < img.Height; y++ {
		row := img.row(y)
		for x := 0; x < img.Width/2; x++ {
			l := row[x*c : x*c+c]
			r := row[(img.Width-1-x)*c : (img.Width-x)*c]
			copy(tmp[:c], l)
			copy(l, r)
			copy(r, tmp[:c])
		}
	}
}
