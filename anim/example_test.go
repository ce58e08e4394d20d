package anim_test

import (
	"fmt"

	"github.com/cwbudde/algo-viscoconv/anim"
)

func ExampleDriver_Advance() {
	scene, err := anim.NewScene(anim.WithGrid(0, 9, 10), anim.WithRepeat(false))
	if err != nil {
		panic(err)
	}

	d := anim.NewDriver(scene)
	for {
		frame, ok := d.Advance()
		if !ok {
			break
		}
		fmt.Print(frame.Index, " ")
	}
	fmt.Println(d.State())

	// Output:
	// 1 2 3 4 5 6 7 8 done
}
