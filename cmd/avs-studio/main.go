// Command avs-studio is the desktop preset editor: a Fyne window that
// opens a preset file, lists its effect chain, shows each effect's
// parameters, and ticks a live preview off the Offscreen Driver fed a
// synthetic test tone, driving a canvas.Image behind a background
// ticker goroutine wrapped in fyne.Do.
package main

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/pfahlr/vis-avs-sub001/internal/analyzer"
	"github.com/pfahlr/vis-avs-sub001/internal/config"
	"github.com/pfahlr/vis-avs-sub001/internal/driver"
	"github.com/pfahlr/vis-avs-sub001/internal/preset"
	"github.com/pfahlr/vis-avs-sub001/internal/registry"
)

type studioState struct {
	window   fyne.Window
	settings config.StudioSettings

	drv *driver.Driver
	mu  sync.Mutex

	previewImage *canvas.Image
	effectList   *widget.List
	paramsBox    *fyne.Container
	statusLabel  *widget.Label

	entryNames []string
	stopLoop   chan struct{}

	tonePhase float64
	toneBlock uint64
}

func main() {
	settingsPath := config.StudioSettingsPath()
	settings, err := config.LoadStudioSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings load warning: %v\n", err)
	}

	a := app.New()
	w := a.NewWindow("AVS Studio")
	w.Resize(fyne.NewSize(1100, 720))

	s := &studioState{
		window:      w,
		settings:    settings,
		statusLabel: widget.NewLabel("No preset loaded"),
		stopLoop:    make(chan struct{}),
	}
	s.drv = driver.New(registry.New(), nil, settings.FrameWidth, settings.FrameHeight, 44100)

	blank := image.NewRGBA(image.Rect(0, 0, settings.FrameWidth, settings.FrameHeight))
	s.previewImage = canvas.NewImageFromImage(blank)
	s.previewImage.FillMode = canvas.ImageFillContain
	s.previewImage.SetMinSize(fyne.NewSize(480, 360))

	s.effectList = widget.NewList(
		func() int { return len(s.entryNames) },
		func() fyne.CanvasObject { return widget.NewLabel("effect") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			lbl := obj.(*widget.Label)
			if id < 0 || id >= len(s.entryNames) {
				lbl.SetText("")
				return
			}
			lbl.SetText(s.entryNames[id])
		},
	)
	s.effectList.OnSelected = func(id widget.ListItemID) {
		s.showParams(id)
	}

	s.paramsBox = container.NewVBox(widget.NewLabel("Select an effect to view its parameters."))

	openBtn := widget.NewButtonWithIcon("Open Preset", theme.FolderOpenIcon(), func() {
		s.openDialog()
	})

	left := container.NewBorder(openBtn, nil, nil, nil, s.effectList)
	right := container.NewBorder(nil, s.statusLabel, nil, nil, s.previewImage)
	paramsPane := container.NewVScroll(s.paramsBox)
	paramsPane.SetMinSize(fyne.NewSize(260, 0))

	split := container.NewHSplit(left, container.NewHSplit(right, paramsPane))
	split.Offset = 0.25
	w.SetContent(split)

	if settings.LastPresetPath != "" {
		if data, err := os.ReadFile(settings.LastPresetPath); err == nil {
			s.loadPreset(settings.LastPresetPath, data)
		}
	}

	w.SetCloseIntercept(func() {
		close(s.stopLoop)
		config.SaveStudioSettings(settingsPath, s.settings)
		w.Close()
	})

	s.startPreviewLoop()
	w.ShowAndRun()
}

func (s *studioState) openDialog() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, s.window)
			return
		}
		if rc == nil {
			return
		}
		defer rc.Close()
		data, readErr := io.ReadAll(rc)
		if readErr != nil {
			dialog.ShowError(readErr, s.window)
			return
		}
		path := rc.URI().Path()
		s.loadPreset(path, data)
	}, s.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".avs", ".txt"}))
	fd.Show()
}

func (s *studioState) loadPreset(path string, data []byte) {
	s.mu.Lock()
	p := s.drv.LoadPreset(data)
	entries := s.drv.Pipeline().Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	s.mu.Unlock()

	s.entryNames = names
	s.settings.LastPresetPath = path
	s.settings.RecentPresets = append([]string{path}, s.settings.RecentPresets...)

	fyne.Do(func() {
		s.effectList.Refresh()
		status := fmt.Sprintf("%s — %d effects, %d warnings, %d unknown", path, len(entries), len(p.Warnings), len(p.Unknown))
		s.statusLabel.SetText(status)
	})
}

func (s *studioState) showParams(id widget.ListItemID) {
	s.mu.Lock()
	entries := s.drv.Pipeline().Entries()
	s.mu.Unlock()
	if id < 0 || id >= len(entries) {
		return
	}
	entry := entries[id]
	objs := []fyne.CanvasObject{widget.NewLabelWithStyle(entry.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})}
	for _, name := range entry.Params.Names() {
		v, ok := entry.Params.Get(name)
		if !ok {
			continue
		}
		objs = append(objs, widget.NewLabel(fmt.Sprintf("%s = %s", name, v.String())))
	}
	s.paramsBox.Objects = objs
	s.paramsBox.Refresh()
}

// startPreviewLoop runs the driver at a fixed tick rate, feeding a
// synthetic tone so every preset shows visible motion without a real
// audio device attached.
func (s *studioState) startPreviewLoop() {
	go func() {
		const previewHz = 30
		ticker := time.NewTicker(time.Second / previewHz)
		defer ticker.Stop()
		for {
			select {
			case <-s.stopLoop:
				return
			case <-ticker.C:
			}

			s.mu.Lock()
			block := s.syntheticBlock(2)
			s.drv.SetAudioBuffer(block, 2)
			frame := s.drv.Render(1.0 / previewHz)
			img := image.NewNRGBA(image.Rect(0, 0, frame.Width, frame.Height))
			for y := 0; y < frame.Height; y++ {
				for x := 0; x < frame.Width; x++ {
					r, g, b, a := frame.At(x, y)
					img.Set(x, y, frameColor{r, g, b, a})
				}
			}
			s.mu.Unlock()

			fyne.Do(func() {
				s.previewImage.Image = img
				s.previewImage.Refresh()
			})
		}
	}()
}

type frameColor struct{ r, g, b, a uint8 }

func (c frameColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.r) * 0x101
	g = uint32(c.g) * 0x101
	b = uint32(c.b) * 0x101
	a = uint32(c.a) * 0x101
	return
}

func (s *studioState) syntheticBlock(channels int) []float32 {
	const hz = 220.0
	block := make([]float32, analyzer.NFFT*channels)
	step := 2 * math.Pi * hz / 44100
	pulse := 0.6 + 0.4*math.Sin(float64(s.toneBlock)*0.07)
	for i := 0; i < analyzer.NFFT; i++ {
		v := float32(pulse * math.Sin(s.tonePhase))
		for c := 0; c < channels; c++ {
			block[i*channels+c] = v
		}
		s.tonePhase += step
	}
	s.toneBlock++
	return block
}
