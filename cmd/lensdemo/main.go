// Command lensdemo demonstrates the lens camera and pixel buffer packages.
//
// It wraps an image (a file given with -input, or a test scene rendered
// into a framebuffer or pixmap target), prints a region of its pixels, and
// projects the image corners through a camera.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/lens"
	"github.com/gogpu/lens/pixbuf"
	"github.com/gogpu/lens/render"
)

type options struct {
	input   string
	output  string
	region  string
	mode    string
	target  string
	width   int
	height  int
	verbose bool
}

func main() {
	var opts options
	flag.StringVar(&opts.input, "input", "", "image file to import (PNG, JPEG, GIF, BMP, TIFF, WebP)")
	flag.StringVar(&opts.output, "output", "", "optional PNG file to write the pixels to")
	flag.StringVar(&opts.region, "region", "0,0,4,4", "pixel region x,y,w,h to print")
	flag.StringVar(&opts.mode, "mode", "Perspective", "camera projection mode")
	flag.StringVar(&opts.target, "target", "framebuffer", "test scene target: framebuffer or pixmap")
	flag.IntVar(&opts.width, "width", 320, "test scene width")
	flag.IntVar(&opts.height, "height", 240, "test scene height")
	flag.BoolVar(&opts.verbose, "v", false, "enable debug logging")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

// drawable is a render target the test scene can be painted into.
type drawable interface {
	render.Target
	SetPixel(x, y int, c color.Color)
}

func run(opts options) error {
	if opts.verbose {
		lens.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var rx, ry, rw, rh int
	if _, err := fmt.Sscanf(opts.region, "%d,%d,%d,%d", &rx, &ry, &rw, &rh); err != nil {
		return fmt.Errorf("invalid -region %q: %w", opts.region, err)
	}
	mode, ok := lens.ParseProjectionMode(opts.mode)
	if !ok {
		return fmt.Errorf("unknown -mode %q", opts.mode)
	}
	cam := lens.NewCamera(lens.WithProjectionMode(mode))

	buf, err := openBuffer(opts, cam)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = buf.Release() }()

	fmt.Printf("image %dx%d format=%v state=%v padding=%d\n",
		buf.Width(), buf.Height(), buf.Format(), buf.State(), buf.PaddingWidth())
	if buf.State() != pixbuf.StateLocked {
		return nil
	}

	if err := printRegion(buf, rx, ry, rw, rh); err != nil {
		return fmt.Errorf("read region: %w", err)
	}
	printCorners(cam, buf)

	if opts.output != "" {
		if err := savePNG(buf, opts.output); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		log.Printf("Pixels saved to %s\n", opts.output)
	}
	return buf.Release()
}

// openBuffer imports opts.input, or renders the test scene when no input
// is given.
func openBuffer(opts options, cam *lens.Camera) (*pixbuf.Buffer, error) {
	if opts.input == "" {
		var target drawable
		switch opts.target {
		case "framebuffer":
			target = render.NewFramebufferTarget(opts.width, opts.height, 0)
		case "pixmap":
			target = render.NewPixmapTarget(opts.width, opts.height)
		default:
			return nil, fmt.Errorf("unknown -target %q", opts.target)
		}
		if err := drawScene(target, cam); err != nil {
			return nil, err
		}
		return render.Readback(target)
	}

	f, err := os.Open(filepath.Clean(opts.input))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return pixbuf.Import(f)
}

// drawScene paints a gradient and marks where the unit square's corners
// and center land through cam.
func drawScene(target drawable, cam *lens.Camera) error {
	// 1x1 bitmap used to encode linear colors to sRGB.
	enc, err := pixbuf.NewBitmap(1, 1, pixbuf.FormatBGRA8)
	if err != nil {
		return err
	}

	w, h := target.Width(), target.Height()
	for y := range h {
		for x := range w {
			// Gradient drawn in linear light, stored as sRGB.
			l := pixbuf.LinearColor{
				R: float32(x) / float32(max(w-1, 1)),
				G: float32(y) / float32(max(h-1, 1)),
				B: 0.2,
				A: 1,
			}
			if err := enc.SetLinear(0, 0, l); err != nil {
				return err
			}
			c, err := enc.NRGBAAt(0, 0)
			if err != nil {
				return err
			}
			target.SetPixel(x, y, c)
		}
	}

	vp := render.ViewportOf(target)
	marks := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {0.5, 0.5, 0}}
	for _, p := range marks {
		s, ok := cam.Project(p, vp)
		if !ok {
			continue
		}
		target.SetPixel(int(math.Floor(s.X())), int(math.Floor(s.Y())), color.White)
	}
	return nil
}

func printRegion(buf *pixbuf.Buffer, x, y, w, h int) error {
	samples, err := buf.Region(x, y, w, h)
	if err != nil {
		return err
	}
	linear, err := buf.RegionLinear(x, y, w, h)
	if err != nil {
		return err
	}
	for row := range h {
		for col := range w {
			i := row*w + col
			idx, err := buf.PixelIndex(x+col, y+row)
			if err != nil {
				return err
			}
			c, l := samples[i], linear[i]
			fmt.Printf("  [%d,%d] index=%d rgba=(%d,%d,%d,%d) linear=(%.3f,%.3f,%.3f)\n",
				x+col, y+row, idx, c.R, c.G, c.B, c.A, l.R, l.G, l.B)
		}
	}
	return nil
}

func printCorners(cam *lens.Camera, buf *pixbuf.Buffer) {
	vp := lens.Viewport{Width: float64(buf.Width()), Height: float64(buf.Height())}
	fmt.Printf("camera mode=%v aspect=%.4f\n", cam.ProjectionMode(), vp.AspectRatio())
	if b, ok := cam.OrthographicBounds(vp); ok {
		fmt.Printf("  world bounds left=%.4f right=%.4f bottom=%.4f top=%.4f\n", b.Left, b.Right, b.Bottom, b.Top)
	}

	corners := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	for _, p := range corners {
		s, ok := cam.Project(p, vp)
		if !ok {
			fmt.Printf("  world %v not projectable\n", p)
			continue
		}
		fmt.Printf("  world (%.0f,%.0f) -> screen (%.2f, %.2f)\n", p.X(), p.Y(), s.X(), s.Y())
	}
}

func savePNG(buf *pixbuf.Buffer, path string) (err error) {
	img, err := buf.Image()
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()
	return png.Encode(f, img)
}
