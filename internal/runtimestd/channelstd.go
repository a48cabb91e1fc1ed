package runtimestd

type stringChannel interface {
	Send(string)
	Recv() (string, bool)
	TryRecv() (string, bool)
	Close()
}

type intChannel interface {
	Send(int64)
	Recv() (int64, bool)
	TryRecv() (int64, bool)
	Close()
}

type floatChannel interface {
	Send(float64)
	Recv() (float64, bool)
	TryRecv() (float64, bool)
	Close()
}

var (
	stringChannels = newHandleTable[stringChannel]()
	intChannels    = newHandleTable[intChannel]()
	floatChannels  = newHandleTable[floatChannel]()
)

// NewStringChannel implements task.channel<string>.
func NewStringChannel() uint64 {
	id := newChannelID()
	stringChannels.set(id, newStringChannel())
	return id
}

// NewIntChannel implements task.channel<int>.
func NewIntChannel() uint64 {
	id := newChannelID()
	intChannels.set(id, newIntChannel())
	return id
}

// NewFloatChannel implements task.channel<float>.
func NewFloatChannel() uint64 {
	id := newChannelID()
	floatChannels.set(id, newFloatChannel())
	return id
}

// SendString implements task.send<string>, reporting whether handle names a
// live string channel.
func SendString(handle uint64, value string) bool {
	c, ok := stringChannels.get(handle)
	if !ok {
		return false
	}
	c.Send(value)
	return true
}

// SendInt implements task.send<int>.
func SendInt(handle uint64, value int64) bool {
	c, ok := intChannels.get(handle)
	if !ok {
		return false
	}
	c.Send(value)
	return true
}

// SendFloat implements task.send<float>.
func SendFloat(handle uint64, value float64) bool {
	c, ok := floatChannels.get(handle)
	if !ok {
		return false
	}
	c.Send(value)
	return true
}

// RecvString implements task.recv<string>: blocks until a value arrives or
// the channel closes.
func RecvString(handle uint64) (string, bool) {
	c, ok := stringChannels.get(handle)
	if !ok {
		return "", false
	}
	return c.Recv()
}

// RecvInt implements task.recv<int>.
func RecvInt(handle uint64) (int64, bool) {
	c, ok := intChannels.get(handle)
	if !ok {
		return 0, false
	}
	return c.Recv()
}

// RecvFloat implements task.recv<float>.
func RecvFloat(handle uint64) (float64, bool) {
	c, ok := floatChannels.get(handle)
	if !ok {
		return 0, false
	}
	return c.Recv()
}

// CloseChannel implements task.close: handle ids are drawn from one shared
// counter across all three typed registries (mirroring
// original_source/src/runtime/stdlib/task.rs's otter_task_close_channel), so
// closing tries each table the same way the original removes from all three
// HashMaps.
func CloseChannel(handle uint64) {
	if c, ok := stringChannels.get(handle); ok {
		c.Close()
		stringChannels.release(handle)
	}
	if c, ok := intChannels.get(handle); ok {
		c.Close()
		intChannels.release(handle)
	}
	if c, ok := floatChannels.get(handle); ok {
		c.Close()
		floatChannels.release(handle)
	}
}
