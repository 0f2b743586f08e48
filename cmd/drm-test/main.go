// Command drm-test allocates a dumb buffer, maps it and paints a test pattern.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/drm"
	"github.com/BeatGlow/drm/draw"
	"github.com/BeatGlow/drm/framebuffer"
	"github.com/BeatGlow/drm/pixel"
)

func main() {
	os.Exit(drmTest(os.Args[1:]))
}

// backlight looks up the backlight pin by name.
var backlight = func(name string) (gpio.PinIO, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("invalid backlight pin %q", name)
	}
	return pin, nil
}

// drmTest runs the test and returns the exit status, after the deferred
// cleanup ran.
func drmTest(args []string) int {
	fs := flag.NewFlagSet("drm-test", flag.ContinueOnError)
	cardFlag := fs.String("card", drm.DefaultCard, "DRM card node")
	fbFlag := fs.String("fb", "", "Use this framebuffer device (fbdev) instead of a DRM card")
	widthFlag := fs.Uint("width", 640, "Buffer width")
	heightFlag := fs.Uint("height", 480, "Buffer height")
	formatFlag := fs.String("format", "xrgb8888", "Pixel format")
	textFlag := fs.String("text", "dumb buffer", "Text to draw")
	holdFlag := fs.Duration("hold", 5*time.Second, "Time to keep the buffer mapped")
	blPinFlag := fs.String("bl", "", "Backlight GPIO pin (e.g. GPIO19)")
	debugFlag := fs.Bool("debug", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *debugFlag {
		drm.Log.SetLevel(logrus.DebugLevel)
	}

	format, err := pixel.ParseFormat(*formatFlag)
	if err != nil {
		return fatal(err)
	}

	if *blPinFlag != "" {
		pin, err := backlight(*blPinFlag)
		if err != nil {
			return fatal(err)
		}
		if err = pin.Out(gpio.High); err != nil {
			return fatal(err)
		}
		defer func() { _ = pin.Out(gpio.Low) }()
		fmt.Printf("using backlight: %s\n", pin)
	}

	if err = run(*cardFlag, *fbFlag, uint32(*widthFlag), uint32(*heightFlag), format, *textFlag, *holdFlag); err != nil {
		return fatal(err)
	}
	return 0
}

func run(card, fb string, width, height uint32, format pixel.Format, text string, hold time.Duration) error {
	var (
		dev    *drm.Device
		screen drm.Buffer
	)
	if fb != "" {
		f, err := framebuffer.Open(fb)
		if err != nil {
			return err
		}
		screen = f.Buffer()
		width, height = screen.Size()
		format = screen.Format()
		dev = drm.NewDevice(f)
		fmt.Printf("using %s\n", screen)
	} else {
		var err error
		if dev, err = drm.Open(card); err != nil {
			return err
		}
		fmt.Printf("using card: %s\n", card)
	}
	defer dev.Close()

	buf, err := dev.CreateDumbBuffer(width, height, format)
	if err != nil {
		return err
	}
	defer func() {
		if err := dev.DestroyDumbBuffer(buf); err != nil {
			fmt.Fprintln(os.Stderr, "destroy failed:", err)
		}
	}()
	fmt.Printf("allocated %s\n", buf)
	if screen == nil {
		screen = buf
	}

	m, err := dev.Map(buf)
	if err != nil {
		return err
	}
	defer m.Release()

	output, err := drm.Image(screen, m)
	if err != nil {
		return err
	}
	if err = paint(output, text); err != nil {
		return err
	}

	fmt.Printf("painted %d bytes, holding for %s...\n", m.Len(), hold)
	time.Sleep(hold)
	return nil
}

func paint(output pixel.Image, text string) error {
	r := output.Bounds()

	// Gradient
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			output.Set(x, y, color.RGBA{
				R: uint8(x * 0xff / r.Dx()),
				G: uint8(y * 0xff / r.Dy()),
				B: uint8((x + y) & 0xff),
				A: 0xff,
			})
		}
	}

	// Box around edge
	draw.Rectangle(output, r, color.White)

	if text == "" {
		return nil
	}

	f, err := draw.RegularFont()
	if err != nil {
		return err
	}
	face := draw.Face(f, float64(r.Dy())/12)
	defer face.Close()

	var (
		size  = draw.TextBounds(image.Point{}, face, text)
		pt    = image.Pt(r.Dx()/2-size.Dx()/2, r.Dy()/2+size.Dy()/2)
		label = draw.TextBounds(pt, face, text).Inset(-8)
	)
	draw.RoundedBox(output, label, 8, color.Black)
	draw.RoundedRectangle(output, label, 8, color.White)
	draw.Text(output, pt, face, color.White, text)
	return nil
}

func fatal(err error) int {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	return 1
}
