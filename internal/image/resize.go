package image

import (
	"fmt"
	"image"
	"slices"

	"golang.org/x/image/draw"
)

// DefaultWorkingSize is the square resolution icons are resampled to before
// their colours are counted.
const DefaultWorkingSize = 50

// Kernel names an interpolation kernel.
type Kernel string

const (
	// KernelNearest copies the nearest source pixel and introduces no new colours.
	KernelNearest Kernel = "nearest"
	// KernelBilinear is fast linear interpolation.
	KernelBilinear Kernel = "bilinear"
	// KernelCatmullRom is the sharpest kernel and the default.
	KernelCatmullRom Kernel = "catmullrom"
)

// ValidKernels returns the supported kernel names.
func ValidKernels() []Kernel {
	return []Kernel{KernelNearest, KernelBilinear, KernelCatmullRom}
}

// Interpolator returns the x/image/draw interpolator for the kernel.
func (k Kernel) Interpolator() (draw.Interpolator, error) {
	switch k {
	case KernelNearest:
		return draw.NearestNeighbor, nil
	case KernelBilinear:
		return draw.BiLinear, nil
	case KernelCatmullRom, "":
		return draw.CatmullRom, nil
	default:
		return nil, fmt.Errorf("unknown resample kernel: %s (valid: %v)", k, ValidKernels())
	}
}

// ParseKernel validates a kernel name.
func ParseKernel(name string) (Kernel, error) {
	k := Kernel(name)
	if !slices.Contains(ValidKernels(), k) {
		return "", fmt.Errorf("unknown resample kernel: %s (valid: %v)", name, ValidKernels())
	}
	return k, nil
}

// CenterSquare returns the largest square centred in r.
func CenterSquare(r image.Rectangle) image.Rectangle {
	side := min(r.Dx(), r.Dy())
	x0 := r.Min.X + (r.Dx()-side)/2
	y0 := r.Min.Y + (r.Dy()-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}

// FitSquare crops src to its centred square and resamples it to size x size.
// Alpha is preserved; the result is non-premultiplied.
func FitSquare(src image.Image, size int, kernel Kernel) (*image.NRGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if size < 1 {
		return nil, fmt.Errorf("working size must be at least 1, got %d", size)
	}

	interp, err := kernel.Interpolator()
	if err != nil {
		return nil, err
	}

	crop := CenterSquare(src.Bounds())
	if crop.Empty() {
		return nil, fmt.Errorf("image has no pixels")
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	interp.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)

	return dst, nil
}
