package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/theta-robotics/quailpath/geom"
	"github.com/theta-robotics/quailpath/occgrid"
	"github.com/theta-robotics/quailpath/render"
)

var (
	styleFree  = tcell.StyleDefault
	styleWall  = tcell.StyleDefault.Background(tcell.ColorGray)
	stylePath  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleRobot = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

// tcellSink implements render.Sink against a tcell.Screen, one terminal
// cell per grid cell. Core planning packages never import this package.
type tcellSink struct {
	screen tcell.Screen
}

var _ render.Sink = (*tcellSink)(nil)

func newTcellSink() (*tcellSink, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(styleFree)
	return &tcellSink{screen: screen}, nil
}

func (s *tcellSink) Close() {
	s.screen.Fini()
}

func (s *tcellSink) DrawGrid(g occgrid.Grid) {
	s.screen.Clear()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			style := styleFree
			ch := ' '
			if g.Blocked(x, y) {
				style = styleWall
				ch = '#'
			}
			s.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (s *tcellSink) DrawPath(path []geom.Cell) {
	for _, c := range path {
		s.screen.SetContent(c.X, c.Y, '*', nil, stylePath)
	}
}

func (s *tcellSink) DrawPose(p geom.Pose) {
	c := geom.CellOf(p.Point())
	s.screen.SetContent(c.X, c.Y, '@', nil, styleRobot)
}

func (s *tcellSink) Flush() {
	s.screen.Show()
}
