package runtimestd

import "github.com/Ottrlang/otterlang/internal/task"

// globalScheduler is the one place this package touches internal/task's
// concrete types, keeping the rest of taskstd.go/channelstd.go expressed
// against small local interfaces.
func globalScheduler() *task.Scheduler {
	return task.Global()
}

func newStringChannel() stringChannel { return task.NewChannelWithMetrics[string](globalScheduler().Metrics()) }
func newIntChannel() intChannel       { return task.NewChannelWithMetrics[int64](globalScheduler().Metrics()) }
func newFloatChannel() floatChannel   { return task.NewChannelWithMetrics[float64](globalScheduler().Metrics()) }
