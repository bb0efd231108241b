package blocks

// Command is a discrete player instruction for the engine.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdSoftDrop
	CmdHardDrop
	CmdRotateCW
	CmdRotateCCW
	CmdPause
	CmdResume
	CmdTogglePause
	CmdReset
)

var commandNames = map[Command]string{
	CmdNone:        "none",
	CmdMoveLeft:    "move_left",
	CmdMoveRight:   "move_right",
	CmdSoftDrop:    "soft_drop",
	CmdHardDrop:    "hard_drop",
	CmdRotateCW:    "rotate_cw",
	CmdRotateCCW:   "rotate_ccw",
	CmdPause:       "pause",
	CmdResume:      "resume",
	CmdTogglePause: "toggle_pause",
	CmdReset:       "reset",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Apply dispatches a command to the matching engine method.
// Unknown commands and CmdNone do nothing.
func (e *Engine) Apply(cmd Command) {
	switch cmd {
	case CmdMoveLeft:
		e.MoveLeft()
	case CmdMoveRight:
		e.MoveRight()
	case CmdSoftDrop:
		e.SoftDrop()
	case CmdHardDrop:
		e.HardDrop()
	case CmdRotateCW:
		e.RotateCW()
	case CmdRotateCCW:
		e.RotateCCW()
	case CmdPause:
		e.Pause()
	case CmdResume:
		e.Resume()
	case CmdTogglePause:
		e.TogglePause()
	case CmdReset:
		e.Reset()
	}
}
