package pilot

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/circuitpilot/racepilot/circuit"
	"github.com/circuitpilot/racepilot/destination"
	"github.com/circuitpilot/racepilot/geometry"
)

// TestSixScenarios walks the six literal end-to-end fixtures verbatim.
func TestSixScenarios(t *testing.T) {
	Convey("Given a straight corridor", t, func() {
		c, _, err := circuit.ParseRows([]string{"1...="})
		So(err, ShouldBeNil)

		obs := Observation{
			Circuit: c,
			MyPos:   geometry.Vector{X: 0, Y: 0},
			Opp1:    offGrid,
			Opp2:    offGrid,
			VMax:    2,
			Fuel:    100,
		}

		Convey("the first emitted acceleration points down the corridor", func() {
			accel, err := Drive(obs)
			So(err, ShouldBeNil)
			So(accel, ShouldEqual, Acceleration{X: 1, Y: 0})
		})
	})

	Convey("Given a single 90-degree turn", t, func() {
		c, _, err := circuit.ParseRows([]string{
			"1.#",
			".##",
			".=#",
		})
		So(err, ShouldBeNil)

		obs := Observation{
			Circuit: c,
			MyPos:   geometry.Vector{X: 0, Y: 0},
			Opp1:    offGrid,
			Opp2:    offGrid,
			VMax:    1,
			Fuel:    100,
		}

		Convey("the first emitted acceleration heads south toward the turn", func() {
			accel, err := Drive(obs)
			So(err, ShouldBeNil)
			So(accel, ShouldEqual, Acceleration{X: 0, Y: 1})
		})
	})

	Convey("Given sand on the straight line to the finish and a dry detour beside it", t, func() {
		c, _, err := circuit.ParseRows([]string{
			"1~..=",
			".....",
		})
		So(err, ShouldBeNil)

		obs := Observation{
			Circuit: c,
			MyPos:   geometry.Vector{X: 0, Y: 0},
			Opp1:    offGrid,
			Opp2:    offGrid,
			VMax:    1,
			Fuel:    100,
		}

		Convey("the first move steers off the sandy line", func() {
			accel, err := Drive(obs)
			So(err, ShouldBeNil)
			So(accel, ShouldNotEqual, Zero)
			So(c.IsSand(obs.MyPos.Add(obs.MySpeed).Add(geometry.Vector{X: accel.X, Y: accel.Y})), ShouldBeFalse)
		})
	})

	Convey("Given two finish cells where one is occupied by an opponent", t, func() {
		c, _, err := circuit.ParseRows([]string{"=.1.="})
		So(err, ShouldBeNil)

		obs := Observation{
			Circuit: c,
			MyPos:   geometry.Vector{X: 2, Y: 0},
			Opp1:    geometry.Vector{X: 4, Y: 0},
			Opp2:    offGrid,
			VMax:    1,
			Fuel:    100,
		}

		Convey("the driver heads toward the unoccupied finish", func() {
			accel, err := Drive(obs)
			So(err, ShouldBeNil)
			So(accel, ShouldEqual, Acceleration{X: -1, Y: 0})
		})
	})

	Convey("Given just enough fuel for the straight-line plan", t, func() {
		c, _, err := circuit.ParseRows([]string{"1...="})
		So(err, ShouldBeNil)

		// The cheapest plan accelerates once (burn 2) and coasts the other
		// three cells at speed 1 (burn 1 each).
		tight := Observation{
			Circuit: c,
			MyPos:   geometry.Vector{X: 0, Y: 0},
			Opp1:    offGrid,
			Opp2:    offGrid,
			VMax:    2,
			Fuel:    5,
		}

		Convey("the plan succeeds", func() {
			accel, err := Drive(tight)
			So(err, ShouldBeNil)
			So(accel, ShouldNotEqual, Zero)
		})

		Convey("and one unit less fuel leaves no path: ErrNoLegalMove and a zero acceleration", func() {
			starved := tight
			starved.Fuel = tight.Fuel - 1
			accel, err := Drive(starved)
			So(err, ShouldEqual, ErrNoLegalMove)
			So(accel, ShouldEqual, Zero)
		})
	})

	Convey("Given opponents strictly behind the pilot relative to the goal", t, func() {
		c, _, err := circuit.ParseRows([]string{"2.3.1.="})
		So(err, ShouldBeNil)

		obs := Observation{
			Circuit: c,
			MyPos:   geometry.Vector{X: 4, Y: 0},
			Opp1:    geometry.Vector{X: 0, Y: 0},
			Opp2:    geometry.Vector{X: 2, Y: 0},
			VMax:    1,
			Fuel:    100,
		}

		Convey("isPilotAhead holds and the plan heads for the goal", func() {
			So(destination.IsPilotAhead(obs.MyPos, obs.Opp1, obs.Opp2, geometry.Vector{X: 6, Y: 0}), ShouldBeTrue)
			accel, err := Drive(obs)
			So(err, ShouldBeNil)
			So(accel, ShouldEqual, Acceleration{X: 1, Y: 0})
		})
	})
}
