package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/rugman/editor"
)

var panelMaterials = []struct {
	material editor.TileMaterial
	label    string
}{
	{editor.Wall, "Wall"},
	{editor.Floor, "Eraser"},
	{editor.PlayerSpawn, "Spawn"},
}

// BrushPanel mirrors the session's brush and history state. It is the
// session's Overlay, so it is refreshed once per frame after the board.
type BrushPanel struct {
	group    *widget.RadioGroup
	buttons  []*widget.Button
	undoBtn  *widget.Button
	redoBtn  *widget.Button
	modeBtn  *widget.Button
	size     *widget.Label
	status   *widget.Label
	material editor.TileMaterial
	syncing  bool
}

type panelActions struct {
	onMaterial func(m editor.TileMaterial)
	onSize     func(delta int)
	onUndo     func()
	onRedo     func()
	onMode     func()
}

func buildBrushPanel(theme *widget.Theme, fontFace *text.Face, actions panelActions, initial editor.Brush) (*widget.Container, *BrushPanel) {
	panel := &BrushPanel{material: initial.Material}

	container := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 300),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelBackground)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	container.AddChild(widget.NewLabel(widget.LabelOpts.Text("Brush", fontFace, labelColor)))
	materialRow := newRow(6)
	for _, pm := range panelMaterials {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(pm.label, fontFace, toggleTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(56, 32),
			),
		)
		panel.buttons = append(panel.buttons, btn)
		materialRow.AddChild(btn)
	}
	container.AddChild(materialRow)

	elements := make([]widget.RadioGroupElement, 0, len(panel.buttons))
	for _, b := range panel.buttons {
		elements = append(elements, b)
	}
	panel.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if panel.syncing || actions.onMaterial == nil {
				return
			}
			for idx, b := range panel.buttons {
				if args.Active == b {
					actions.onMaterial(panelMaterials[idx].material)
					return
				}
			}
		}),
	)

	sizeRow := newRow(6)
	sizeRow.AddChild(newActionButton(theme, fontFace, "-", func() { callDelta(actions.onSize, -1) }))
	panel.size = widget.NewLabel(widget.LabelOpts.Text(sizeText(initial.Size), fontFace, labelColor))
	sizeRow.AddChild(panel.size)
	sizeRow.AddChild(newActionButton(theme, fontFace, "+", func() { callDelta(actions.onSize, 1) }))
	container.AddChild(sizeRow)

	historyRow := newRow(6)
	panel.undoBtn = newActionButton(theme, fontFace, "Undo", actions.onUndo)
	panel.redoBtn = newActionButton(theme, fontFace, "Redo", actions.onRedo)
	historyRow.AddChild(panel.undoBtn)
	historyRow.AddChild(panel.redoBtn)
	container.AddChild(historyRow)

	panel.modeBtn = newActionButton(theme, fontFace, "Play", actions.onMode)
	container.AddChild(panel.modeBtn)

	panel.status = widget.NewLabel(widget.LabelOpts.Text("", fontFace, labelColor))
	container.AddChild(panel.status)

	panel.selectMaterial(initial.Material)
	return container, panel
}

func newRow(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(spacing),
			),
		),
	)
}

func newActionButton(theme *widget.Theme, fontFace *text.Face, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(label, fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(40, 28),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func callDelta(fn func(int), delta int) {
	if fn != nil {
		fn(delta)
	}
}

func sizeText(size int) string {
	return fmt.Sprintf("Size %d", size)
}

func (p *BrushPanel) selectMaterial(m editor.TileMaterial) {
	for idx, pm := range panelMaterials {
		if pm.material != m {
			continue
		}
		p.syncing = true
		p.group.SetActive(p.buttons[idx])
		p.syncing = false
		p.material = m
		return
	}
}

// Sync implements editor.Overlay.
func (p *BrushPanel) Sync(v editor.View) {
	if p == nil {
		return
	}
	if v.Brush.Material != p.material {
		p.selectMaterial(v.Brush.Material)
	}
	p.size.Label = sizeText(v.Brush.Size)
	playing := v.Mode == editor.ModePlay
	p.undoBtn.GetWidget().Disabled = playing || !v.CanUndo
	p.redoBtn.GetWidget().Disabled = playing || !v.CanRedo
	if text := p.modeBtn.Text(); text != nil {
		if playing {
			text.Label = "Edit"
		} else {
			text.Label = "Play"
		}
	}
	status := v.Mode.String()
	if v.HasCursor {
		status = fmt.Sprintf("%s %s", status, v.Cursor)
	}
	p.status.Label = status
}
