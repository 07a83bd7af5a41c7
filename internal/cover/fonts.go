package cover

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var fontPaths = map[bool][]string{
	true: {
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/System/Library/Fonts/Helvetica.ttc",
	},
	false: {
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/System/Library/Fonts/Helvetica.ttc",
	},
}

// face loads a system font at the given size, falling back to the embedded
// Go fonts so cover generation works on any host.
func face(bold bool, size float64) font.Face {
	for _, path := range fontPaths[bold] {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		return truetype.NewFace(f, &truetype.Options{Size: size})
	}

	ttf := goregular.TTF
	if bold {
		ttf = gobold.TTF
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{Size: size})
}
