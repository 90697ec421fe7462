package session

type State string

const (
	StateOff      = State("off")
	StateBreaking = State("breaking")
	StateWorking  = State("working")
)
