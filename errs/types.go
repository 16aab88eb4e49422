package errs

type Error struct {
	Code    int
	Msg     string
	BizCode int
	Data    interface{}
	err     error
}
