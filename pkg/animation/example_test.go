package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/numberflow/pkg/animation"
)

// This example shows how a reel drives one trajectory from a host frame loop.
func ExampleSpringIntegrator() {
	integ := animation.NewSpringIntegrator()

	h := integ.RequestTrajectory(animation.Trajectory{
		From:   0,
		To:     -57,
		Spring: animation.DefaultSpring(),
	})

	// Once per display frame:
	animation.StepTickers()
	_ = integ.CurrentValue(h)

	// When the digit changes again, redirect the same trajectory.
	integ.Retarget(h, animation.Trajectory{
		To:     -152,
		Delay:  20 * time.Millisecond,
		Spring: animation.DefaultSpring(),
	})

	integ.Cancel(h)
}

// This example shows how to fade a separator in with a controller.
func ExampleAnimationController() {
	controller := animation.NewAnimationController(300 * time.Millisecond)
	controller.Curve = animation.EaseInOut

	controller.Forward()

	// Jump straight to the end when motion is not allowed.
	controller.SetValue(1)
	fmt.Println(controller.Value, controller.Status())

	controller.Dispose()
	// Output: 1 completed
}

// This example shows how spring parameters map to frequency and damping ratio.
func ExampleSpringDescription() {
	s := animation.DefaultSpring()
	fmt.Printf("w=%.2f zeta=%.3f\n", s.AngularFrequency(), s.DampingRatio())
	// Output: w=9.68 zeta=0.968
}
