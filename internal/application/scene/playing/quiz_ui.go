package playing

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/keygate/internal/application/sim"
)

// quizDialog is the modal that asks the key question. It implements
// sim.QuizPresenter; answers go back through the submit and cancel callbacks.
type quizDialog struct {
	ui      *ebitenui.UI
	overlay *widget.Container
	prompt  *widget.Text
	input   *widget.TextInput

	req  sim.QuizRequest
	open bool

	onSubmit func(id uint64, answer string)
	onCancel func(id uint64)
}

func newQuizDialog(face ebtext.Face, width int, onSubmit func(uint64, string), onCancel func(uint64)) *quizDialog {
	q := &quizDialog{onSubmit: onSubmit, onCancel: onCancel}

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}),
		Hover:   imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 255}),
		Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}),
	}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	q.overlay = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchHorizontal:  true,
				StretchVertical:    true,
			}),
			widget.WidgetOpts.MinSize(1, 1),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 160})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x10, B: 0x20, A: 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width*2/3, 160),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title := widget.NewText(
		widget.TextOpts.Text("Answer to take the key", &face, colorKey),
		widget.TextOpts.WidgetOpts(center),
	)
	q.prompt = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	q.input = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width/2, 28),
			center,
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     imageui.NewNineSliceColor(color.NRGBA{R: 245, G: 245, B: 245, A: 255}),
			Disabled: imageui.NewNineSliceColor(color.NRGBA{R: 200, G: 200, B: 200, A: 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 120},
			Caret:    color.Black,
		}),
		widget.TextInputOpts.Face(&face),
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			q.submit(args.InputText)
		}),
	)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(center),
	)
	buttons.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text("Submit", &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			q.submit(q.input.GetText())
		}),
	))
	buttons.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text("Cancel", &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			q.Cancel()
		}),
	))

	panel.AddChild(title)
	panel.AddChild(q.prompt)
	panel.AddChild(q.input)
	panel.AddChild(buttons)
	q.overlay.AddChild(panel)
	q.overlay.GetWidget().Visibility = widget.Visibility_Hide

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(q.overlay)
	q.ui = &ebitenui.UI{Container: root}
	return q
}

// PresentQuestion opens the dialog for req. It is called from inside the
// driver's tick, so it only records the request.
func (q *quizDialog) PresentQuestion(req sim.QuizRequest) {
	q.req = req
	q.open = true
	q.prompt.Label = req.Prompt
	q.input.SetText("")
	q.input.Focus(true)
	q.overlay.GetWidget().Visibility = widget.Visibility_Show
}

// IsOpen reports whether a question is on screen
func (q *quizDialog) IsOpen() bool {
	return q.open
}

// Cancel closes the dialog as a wrong answer
func (q *quizDialog) Cancel() {
	if !q.open {
		return
	}
	id := q.req.ID
	q.Close()
	q.onCancel(id)
}

// Close hides the dialog without answering
func (q *quizDialog) Close() {
	q.open = false
	q.input.Focus(false)
	q.overlay.GetWidget().Visibility = widget.Visibility_Hide
}

func (q *quizDialog) submit(answer string) {
	if !q.open {
		return
	}
	id := q.req.ID
	q.Close()
	q.onSubmit(id, answer)
}

func (q *quizDialog) Update() {
	if q.open {
		q.ui.Update()
	}
}

func (q *quizDialog) Draw(screen *ebiten.Image) {
	if q.open {
		q.ui.Draw(screen)
	}
}
