package lcsviz_test

import (
	"context"
	"fmt"

	"github.com/aretw0/lcsviz"
)

func ExampleVisualizer() {
	v := lcsviz.New("abcbdab", "bdcaba")
	defer v.Close()

	res := v.Result()
	fmt.Println(res.LCS, res.Length(), res.Steps())

	f := v.StepForward(context.Background())
	fmt.Println(f.Progress)
	fmt.Println(f.Highlight.Current.Cell, f.Highlight.Current.Kind)
	// Output:
	// BDAB 4 42
	// Step 2 of 42
	// {1 2} extend
}

func ExampleVisualizer_StepBackward() {
	v := lcsviz.New("AB", "BA")
	defer v.Close()
	ctx := context.Background()

	for range 4 {
		v.StepForward(ctx)
	}
	fmt.Println(v.Position().ShowPath)

	f := v.StepBackward(ctx)
	fmt.Println(f.Position.Cursor, f.Position.ShowPath)
	// Output:
	// true
	// 3 false
}
