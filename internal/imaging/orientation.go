package imaging

// Orientation is the aspect-ratio class of a page image.
type Orientation int

const (
	// Portrait covers height >= width, the normal shape of a single page.
	Portrait Orientation = iota
	// Landscape covers width > height, the shape of a two-page spread.
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Classify reads the image at path and returns its orientation.
//
// A file that cannot be decoded is conservatively classified Portrait and
// the decode error is returned alongside, so callers can log a warning and
// keep going; misclassifying a page as a spread would trigger renames, the
// conservative default only suppresses them.
func Classify(cache *Cache, path string) (Orientation, error) {
	img, err := cache.Load(path)
	if err != nil {
		return Portrait, err
	}
	b := img.Bounds()
	if b.Dx() > b.Dy() {
		return Landscape, nil
	}
	return Portrait, nil
}
