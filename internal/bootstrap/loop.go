package bootstrap

// EventLoop polls win's subsystem until maxIterations polls have run or the
// window asks to close, and returns the number of polls. An error
// notification raised while polling stops the loop.
func EventLoop(windowing Windowing, win Window, maxIterations int, errs *ErrorSink) (int, error) {
	i := 0
	for ; i < maxIterations && !win.ShouldClose(); i++ {
		windowing.PollEvents()
		if err := errs.Take(); err != nil {
			return i + 1, err
		}
	}
	return i, nil
}
