package overlay

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver"
	"fyne.io/fyne/v2/driver/desktop"

	"workspace-grid/internal/grid"
	"workspace-grid/pkg/config"
	"workspace-grid/pkg/logger"
)

const (
	appID = "io.github.workspace-grid"

	// mapTimeout bounds how long we wait for the first frame.
	mapTimeout = 3 * time.Second
)

// ErrNoDesktop is returned when fyne has no desktop driver to open a
// borderless window with.
var ErrNoDesktop = errors.New("no desktop driver available")

type Renderer struct {
	size     float32
	duration time.Duration
	alpha    float64
	inactive color.NRGBA
	active   color.NRGBA
	log      *logger.Logger
}

func NewRenderer(cfg config.Overlay, log *logger.Logger) (*Renderer, error) {
	inactive, err := config.ParseHexColor(cfg.InactiveColor)
	if err != nil {
		return nil, fmt.Errorf("inactive color: %w", err)
	}
	active, err := config.ParseHexColor(cfg.ActiveColor)
	if err != nil {
		return nil, fmt.Errorf("active color: %w", err)
	}

	return &Renderer{
		size:     cfg.Size,
		duration: cfg.Duration,
		alpha:    cfg.Alpha,
		inactive: inactive,
		active:   active,
		log:      log,
	}, nil
}

// Fill returns the opaque color a cell is painted with. Translucency is a
// property of the whole window, see setOpacity.
func (r *Renderer) Fill(c Cell) color.NRGBA {
	if c.Selected {
		return r.active
	}
	return r.inactive
}

// Objects builds the canvas objects for a layout.
func (r *Renderer) Objects(l Layout) []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(l.Cells))
	for _, c := range l.Cells {
		rect := canvas.NewRectangle(r.Fill(c))
		rect.Resize(fyne.NewSize(c.Size, c.Size))
		rect.Move(fyne.NewPos(c.X, c.Y))
		objects = append(objects, rect)
	}
	return objects
}

// paintSignal is a transparent full-window raster. The GL painter only
// generates rasters while drawing a frame, so the first call means the
// window is mapped and painted.
func paintSignal(size float32) (fyne.CanvasObject, <-chan struct{}) {
	painted := make(chan struct{})
	var once sync.Once
	raster := canvas.NewRaster(func(w, h int) image.Image {
		once.Do(func() { close(painted) })
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	})
	raster.Resize(fyne.NewSize(size, size))
	return raster, painted
}

// closeAfterShown calls onShown once painted fires, then quit after
// duration. If nothing is painted within timeout it quits straight away.
func closeAfterShown(painted <-chan struct{}, duration, timeout time.Duration, onShown, quit func()) {
	select {
	case <-painted:
		onShown()
		time.Sleep(duration)
	case <-time.After(timeout):
	}
	quit()
}

// Render shows the indicator in a borderless, translucent window centered
// on the primary screen and blocks until it closes itself.
func (r *Renderer) Render(focused int, occupied grid.Occupied) error {
	l := Compute(focused, occupied, r.size)
	r.log.Debug("Rendering overlay",
		"focused", focused,
		"occupied", []int(occupied),
		"rows", l.Rows,
		"cell_size", l.CellSize)

	a := app.NewWithID(appID)
	drv, ok := a.Driver().(desktop.Driver)
	if !ok {
		return ErrNoDesktop
	}

	signal, painted := paintSignal(l.Size)
	objects := append([]fyne.CanvasObject{signal}, r.Objects(l)...)

	w := drv.CreateSplashWindow()
	w.SetPadded(false)
	w.SetContent(container.NewWithoutLayout(objects...))
	w.Resize(fyne.NewSize(l.Size, l.Size))
	w.SetFixedSize(true)

	var shownAt time.Time
	a.Lifecycle().SetOnStarted(func() {
		// RunNative waits on the main loop, so never call it from here.
		go closeAfterShown(painted, r.duration, mapTimeout, func() {
			shownAt = time.Now()
			r.setOpacity(w)
		}, a.Quit)
	})

	w.ShowAndRun()
	if shownAt.IsZero() {
		r.log.Warn("Overlay was never painted", "timeout", mapTimeout.String())
		return nil
	}
	r.log.Debug("Overlay closed", "shown_for", time.Since(shownAt).String())
	return nil
}

// setOpacity makes the mapped window translucent. Only X11 windows carry
// an opacity property; elsewhere the window stays opaque.
func (r *Renderer) setOpacity(w fyne.Window) {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		r.log.Debug("Window has no native handle, skipping opacity")
		return
	}

	nw.RunNative(func(ctx any) {
		x11, ok := ctx.(driver.X11WindowContext)
		if !ok || x11.WindowHandle == 0 {
			r.log.Debug("Not an X11 window, skipping opacity")
			return
		}
		if err := setX11Opacity(uint32(x11.WindowHandle), r.alpha); err != nil {
			r.log.Warn("Failed to set window opacity", "error", err.Error())
		}
	})
}
