package gimages

import "testing"

func TestIconSizes(t *testing.T) {
	icons := WindowIcons()
	if len(icons) != len(IconSizes) {
		t.Fatalf("got %d icons", len(icons))
	}
	for i, img := range icons {
		b := img.Bounds()
		if b.Dx() != IconSizes[i] || b.Dy() != IconSizes[i] {
			t.Fatalf("icon %d is %v", i, b)
		}
		// center is covered by the medium piece
		r, g, _, a := img.At(b.Dx()/2, b.Dy()/2).RGBA()
		if a == 0 || r < 0xc000 || g > 0x4000 {
			t.Fatalf("icon %d center %x %x alpha %x", i, r, g, a)
		}
	}
}
