package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/rugman/editor"
	"golang.org/x/image/font/gofont/goregular"
)

const panelWidth = 200

func BuildEditorUI(actions panelActions, initial editor.Brush) (*ebitenui.UI, *BrushPanel) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	panelContainer, panel := buildBrushPanel(ui.PrimaryTheme, &fontFace, actions, initial)

	// Root container: anchor layout, panel on the right edge.
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	panelContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchVertical:    true,
	}
	root.AddChild(panelContainer)

	ui.Container = root
	return ui, panel
}
