package ui

import (
	"bytes"
	"image/color"
	"strings"

	cfg "github.com/automoto/seekthescounge/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PlayerSelectUI lists the playable characters. Selection moves with the
// menu actions or the mouse; OnSelect fires on confirm.
type PlayerSelectUI struct {
	UI       *ebitenui.UI
	OnSelect func(id string)

	ids         []string
	selected    int
	buttons     []*widget.Button
	details     *widget.Label
	initialized bool

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewPlayerSelectUI builds the screen with initial preselected when it names
// a known character.
func NewPlayerSelectUI(initial string, onSelect func(id string)) (*PlayerSelectUI, error) {
	psu := &PlayerSelectUI{
		OnSelect: onSelect,
		ids:      cfg.CharacterIDs(),
	}
	for i, id := range psu.ids {
		if strings.EqualFold(id, initial) {
			psu.selected = i
		}
	}

	if err := psu.loadFonts(); err != nil {
		return nil, err
	}
	psu.buildUI()
	return psu, nil
}

func (psu *PlayerSelectUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	psu.titleFace = &text.GoTextFace{Source: fontSource, Size: 14}
	psu.normalFace = &text.GoTextFace{Source: fontSource, Size: 10}
	psu.smallFace = &text.GoTextFace{Source: fontSource, Size: 7}
	return nil
}

func (psu *PlayerSelectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(4)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("CHOOSE YOUR HERO", &psu.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	for i, id := range psu.ids {
		idx := i
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(60, 20)),
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(strings.ToUpper(id), &psu.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				psu.selected = idx
				psu.Confirm()
			}),
		)
		psu.buttons = append(psu.buttons, button)
		row.AddChild(button)
	}
	contentContainer.AddChild(row)

	psu.details = widget.NewLabel(
		widget.LabelOpts.Text("", &psu.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	contentContainer.AddChild(psu.details)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("LEFT/RIGHT to pick, ENTER to start", &psu.smallFace, &widget.LabelColor{
			Idle: color.RGBA{120, 120, 140, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)
	psu.UI = &ebitenui.UI{Container: rootContainer}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// Move shifts the selection by delta, wrapping around.
func (psu *PlayerSelectUI) Move(delta int) {
	if len(psu.ids) == 0 {
		return
	}
	psu.selected = (psu.selected + delta + len(psu.ids)) % len(psu.ids)
	psu.refresh()
}

// Selected returns the highlighted character id.
func (psu *PlayerSelectUI) Selected() string {
	if len(psu.ids) == 0 {
		return ""
	}
	return psu.ids[psu.selected]
}

func (psu *PlayerSelectUI) Confirm() {
	if psu.OnSelect != nil && len(psu.ids) > 0 {
		psu.OnSelect(psu.Selected())
	}
}

func (psu *PlayerSelectUI) refresh() {
	for i, button := range psu.buttons {
		textWidget := button.Text()
		if textWidget == nil {
			continue
		}
		label := strings.ToUpper(psu.ids[i])
		if i == psu.selected {
			label = "> " + label + " <"
		}
		textWidget.Label = label
	}
	psu.details.Label = describe(psu.Selected())
}

// describe summarizes the capability table of a character.
func describe(id string) string {
	char, ok := cfg.Character(id)
	if !ok {
		return ""
	}
	var parts []string
	if char.WallSlide.Enabled {
		parts = append(parts, "wall slide")
	}
	if char.WallJump.Enabled {
		parts = append(parts, "wall jump")
	}
	if char.MovingAttack != nil {
		parts = append(parts, "dash strike")
	}
	if len(parts) == 0 {
		return char.Name
	}
	return char.Name + ": " + strings.Join(parts, ", ")
}

func (psu *PlayerSelectUI) Update() {
	psu.UI.Update()
	// Button text exists only after the first layout pass.
	if !psu.initialized {
		psu.initialized = true
		psu.refresh()
	}
}
