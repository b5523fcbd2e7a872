package stripe_test

import (
	"fmt"

	"github.com/jmendler/stripeplan/pkg/stripe"
)

func ExampleEnumerate() {
	wall := stripe.Wall{LengthCm: 480, HeightCm: 260, Direction: stripe.DirectionVertical}
	constraint := stripe.Constraint{MinCm: 20, MaxCm: 45}

	configs := stripe.Enumerate(wall, constraint, 1)

	for _, c := range configs[:3] {
		fmt.Printf("%s → %s\n", c.Value(), c.Label())
	}
	// Output:
	// 6,5 → 11 stripes · 43.6 cm
	// 7,6 → 13 stripes · 36.9 cm
	// 8,7 → 15 stripes · 32.0 cm
}

func ExampleComputeLayout() {
	wall := stripe.Wall{LengthCm: 480, HeightCm: 260, Direction: stripe.DirectionVertical}
	constraint := stripe.Constraint{MinCm: 20, MaxCm: 45}

	layout, err := stripe.ComputeLayout(wall, stripe.Selection{Colored: 9, White: 8}, 1, constraint)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(layout.Summary)
	// Output:
	// 480.0 × 260.0 cm wall · 9 colored + 8 white stripes (vertical) · 28.2 cm each
}

func ExamplePlaceObstacle() {
	wall := stripe.Wall{LengthCm: 480, HeightCm: 260, Direction: stripe.DirectionVertical}
	wardrobe := stripe.Obstacle{
		Kind:     stripe.ObstacleWardrobe,
		Shown:    true,
		WidthCm:  120,
		HeightCm: 200,
		RightCm:  48,
		Color:    "#b08968",
	}

	p := stripe.PlaceObstacle(wardrobe, wall)

	fmt.Printf("width %.0f%%, right %.0f%%, border %s\n",
		p.WidthPct, p.RightPct, stripe.BorderColor(wardrobe.Color))
	// Output:
	// width 25%, right 10%, border #926b4a
}
