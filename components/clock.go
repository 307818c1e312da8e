package components

import (
	"github.com/automoto/seekthescounge/shared/schedule"
	"github.com/yohamta/donburi"
)

// ClockData is the frame clock in ms. Now only moves forward.
type ClockData struct {
	Now   float64
	Delta float64
	Frame uint64
}

var Clock = donburi.NewComponentType[ClockData]()

type SchedulerData struct {
	Queue *schedule.Queue
}

var Scheduler = donburi.NewComponentType[SchedulerData]()
