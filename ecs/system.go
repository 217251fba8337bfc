package ecs

// System represents a behavior that runs once per scheduler tick.
// Systems may declare Query and Singleton fields; the Scheduler binds them
// to its storage on registration. Any other fields persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
