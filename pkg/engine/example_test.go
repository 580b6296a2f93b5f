package engine_test

import (
	"fmt"

	"github.com/slidekit/slidekit/pkg/engine"
	"github.com/slidekit/slidekit/pkg/slide"
)

func ExampleEngine_Align() {
	// Two boxes and a pinned anchor: the box moves, the anchor stays.
	box := slide.NewBox("box", 10, 10, 30, 40)
	title := slide.NewBox("title", 100, 100, 50, 20)
	sel := slide.Selection{box, title}

	eng := engine.New(nil)
	report, _ := eng.Align(sel, "title", engine.EdgeLeft)

	fmt.Println(report)
	fmt.Println("box left:", box.Left())
	fmt.Println("anchor left:", title.Left())
	// Output:
	// aligned 1 object
	// box left: 100
	// anchor left: 100
}

func ExampleEngine_Distribute() {
	// Three boxes spread so the gaps between them are equal.
	sel := slide.Selection{
		slide.NewBox("a", 0, 0, 50, 10),
		slide.NewBox("b", 50, 0, 30, 10),
		slide.NewBox("c", 200, 0, 50, 10),
	}

	eng := engine.New(nil)
	report, _ := eng.Distribute(sel, engine.AxisHorizontal)

	fmt.Println(report)
	fmt.Println("middle left:", sel[1].Left())
	// Output:
	// distributed 3 objects
	// middle left: 110
}

func ExampleEngine_MagicResize() {
	box := slide.NewBox("box", 30, 40, 200, 100)

	eng := engine.New(nil)
	report, _ := eng.MagicResize(slide.Selection{box}, 200)

	fmt.Println(report)
	fmt.Printf("box: %vx%v at (%v,%v)\n", box.Width(), box.Height(), box.Left(), box.Top())
	// Output:
	// resized 1 object
	// box: 400x200 at (30,40)
}
