package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestScaledWidth(t *testing.T) {
	tests := []struct {
		name         string
		w, h, height int
		want         int
	}{
		{"unit scale", 60, 60, 60, 60},
		{"double", 30, 40, 80, 60},
		{"half", 100, 50, 25, 50},
		{"rounds down", 10, 3, 4, 13},  // 13.33 -> 13
		{"rounds half up", 3, 2, 3, 5}, // 4.5 -> 5
		{"rounds up", 7, 3, 2, 5},      // 4.67 -> 5
		{"zero height", 10, 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaledWidth(tt.w, tt.h, tt.height); got != tt.want {
				t.Errorf("ScaledWidth(%d, %d, %d): got %d, want %d", tt.w, tt.h, tt.height, got, tt.want)
			}
		})
	}
}

func TestScaleToHeight(t *testing.T) {
	tests := []struct {
		name         string
		w, h, height int
		wantW        int
	}{
		{"scale up", 40, 20, 60, 120},
		{"scale down", 90, 60, 30, 45},
		{"non-integer ratio", 50, 30, 40, 67}, // 66.67 -> 67
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(tt.w, tt.h, color.RGBA{0, 0, 255, 255})
			scaled := ScaleToHeight(img, tt.height)

			b := scaled.Bounds()
			if b.Dy() != tt.height {
				t.Errorf("height: got %d, want %d", b.Dy(), tt.height)
			}
			if b.Dx() != tt.wantW {
				t.Errorf("width: got %d, want %d", b.Dx(), tt.wantW)
			}
		})
	}
}

func TestScaleToHeight_NoOp(t *testing.T) {
	img := createInMemoryImage(40, 30, color.RGBA{0, 255, 0, 255})

	if scaled := ScaleToHeight(img, 30); scaled != img {
		t.Error("ScaleToHeight should return the original image at unit scale")
	}
}

func TestRow_Height(t *testing.T) {
	row := NewRow()
	if row.Len() != 0 || row.Height() != 0 {
		t.Fatalf("new row: got len %d height %d, want 0 0", row.Len(), row.Height())
	}

	heights := []int{30, 50, 40}
	for i, h := range heights {
		row.Add(createInMemoryImage(20, h, color.White))
		if row.Len() != i+1 {
			t.Errorf("Len after %d adds: got %d", i+1, row.Len())
		}
	}

	if row.Height() != 50 {
		t.Errorf("Height: got %d, want 50", row.Height())
	}
}

func TestRow_Finalize(t *testing.T) {
	row := NewRow()
	row.Add(createInMemoryImage(30, 20, color.RGBA{255, 0, 0, 255})) // -> 60x40
	row.Add(createInMemoryImage(50, 40, color.RGBA{0, 255, 0, 255})) // unchanged
	row.Add(createInMemoryImage(10, 30, color.RGBA{0, 0, 255, 255})) // -> 13x40

	strip, err := row.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	b := strip.Bounds()
	if b.Dx() != 60+50+13 || b.Dy() != 40 {
		t.Errorf("dimensions: got %dx%d, want %dx40", b.Dx(), b.Dy(), 60+50+13)
	}

	// Members keep arrival order left to right
	tests := []struct {
		name    string
		x       int
		r, g, b uint8
	}{
		{"first is red", 30, 255, 0, 0},
		{"second is green", 85, 0, 255, 0},
		{"third is blue", 116, 0, 0, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := rgbAt(strip, tt.x, 20)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("pixel at x=%d: got (%d,%d,%d), want (%d,%d,%d)", tt.x, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestRow_Finalize_SingleImageUnchanged(t *testing.T) {
	img := createPatternImage(60, 60)

	row := NewRow()
	row.Add(img)
	strip, err := row.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	if strip.Bounds() != img.Bounds() {
		t.Fatalf("bounds: got %v, want %v", strip.Bounds(), img.Bounds())
	}
	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			if strip.At(x, y) != color.NRGBAModel.Convert(img.At(x, y)) {
				t.Fatalf("pixel (%d,%d) differs from the input", x, y)
			}
		}
	}
}

func TestRow_Finalize_Empty(t *testing.T) {
	_, err := NewRow().Finalize()
	if !errors.Is(err, ErrEmptyRow) {
		t.Errorf("error: got %v, want ErrEmptyRow", err)
	}
}

func TestRow_Finalize_Consumes(t *testing.T) {
	row := NewRow()
	row.Add(createInMemoryImage(10, 10, color.White))

	if _, err := row.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if row.Len() != 0 || row.Height() != 0 {
		t.Errorf("row after Finalize: got len %d height %d, want 0 0", row.Len(), row.Height())
	}
	if _, err := row.Finalize(); !errors.Is(err, ErrEmptyRow) {
		t.Errorf("second Finalize: got %v, want ErrEmptyRow", err)
	}
}

func TestHConcat(t *testing.T) {
	parts := []image.Image{
		createInMemoryImage(10, 5, color.RGBA{255, 0, 0, 255}),
		createInMemoryImage(15, 5, color.RGBA{0, 0, 255, 255}),
	}

	dst := HConcat(parts, 25, 5)
	if dst.Bounds().Dx() != 25 || dst.Bounds().Dy() != 5 {
		t.Fatalf("dimensions: got %v, want 25x5", dst.Bounds())
	}
	if r, _, _ := rgbAt(dst, 9, 2); r != 255 {
		t.Error("x=9 should be red")
	}
	if _, _, b := rgbAt(dst, 10, 2); b != 255 {
		t.Error("x=10 should be blue")
	}
}
