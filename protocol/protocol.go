package protocol

// Cmd represents a command passing between the engine and the UI client
type Cmd int

const (
	Null Cmd = iota
	NewGame
	HasConnected
	State
	Draw
	DragStart
	DragEnd
	Restart
	Win
	Error
)

var cmdNames = []string{
	"Null",
	"NewGame",
	"HasConnected",
	"State",
	"Draw",
	"DragStart",
	"DragEnd",
	"Restart",
	"Win",
	"Error",
}

func (c Cmd) String() string {
	return cmdNames[c]
}
