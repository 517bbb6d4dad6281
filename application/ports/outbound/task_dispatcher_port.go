package outbound

// TaskDispatcher abstracts the worker pool used to run model invocations off
// the caller's goroutine.
type TaskDispatcher interface {
	Submit(task func()) error
}
