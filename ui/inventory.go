package ui

import (
	"bytes"

	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// InventoryHUD shows the held item in a bordered box in the top-left corner, with its name
// beside it.
type InventoryHUD struct {
	UI *ebitenui.UI

	icon  *widget.Graphic
	label *widget.Label
	face  text.Face

	// The icon last passed to SetItem and its scaled copy shown in the box.
	source *ebiten.Image
	scaled *ebiten.Image
}

// NewInventoryHUD builds the HUD. It creates images, so it must be called from the game loop.
func NewInventoryHUD() (*InventoryHUD, error) {
	h := &InventoryHUD{}
	if err := h.loadFonts(); err != nil {
		return nil, err
	}
	h.buildUI()
	return h, nil
}

func (h *InventoryHUD) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	h.face = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.HUDFontSize,
	}
	return nil
}

func (h *InventoryHUD) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.ItemBoxMargin)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	// The border is the white background showing around the dark box
	border := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.White)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.ItemBorder)),
		)),
	)

	box := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.PanelDark)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.UI.ItemBoxSize, cfg.UI.ItemBoxSize),
		),
	)

	h.icon = widget.NewGraphic(
		widget.GraphicOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	box.AddChild(h.icon)
	border.AddChild(box)
	row.AddChild(border)

	h.label = widget.NewLabel(
		widget.LabelOpts.Text("", &h.face, &widget.LabelColor{
			Idle: cfg.White,
		}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		),
	)
	row.AddChild(h.label)

	rootContainer.AddChild(row)
	h.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetItem shows icon and name, or an empty box when icon is nil.
func (h *InventoryHUD) SetItem(name string, icon *ebiten.Image) {
	h.label.Label = name
	if icon == h.source {
		return
	}
	h.source = icon
	if h.scaled != nil {
		h.scaled.Deallocate()
		h.scaled = nil
	}
	if icon != nil {
		h.scaled = scaleImage(icon, cfg.UI.ItemIconScale)
	}
	h.icon.Image = h.scaled
}

func (h *InventoryHUD) Update() {
	h.UI.Update()
}

func (h *InventoryHUD) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}

func scaleImage(src *ebiten.Image, scale float64) *ebiten.Image {
	b := src.Bounds()
	w := int(float64(b.Dx()) * scale)
	hgt := int(float64(b.Dy()) * scale)
	dst := ebiten.NewImage(max(w, 1), max(hgt, 1))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(src, op)
	return dst
}
