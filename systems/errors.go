package systems

import "errors"

// Attack rejection reasons
// All are recovered locally; none is fatal to the session
var (
	// ErrSessionOver rejects attacks once the session is terminal
	ErrSessionOver = errors.New("session is over")

	// ErrInvalidTarget rejects out-of-range command or layer indices
	ErrInvalidTarget = errors.New("no such command or layer")

	// ErrInsufficientPower rejects attacks the player cannot pay for; logged to the session
	ErrInsufficientPower = errors.New("insufficient power")

	// ErrInvalidAction rejects attacks with a cooling command or a breached layer; silent
	ErrInvalidAction = errors.New("command on cooldown or layer already breached")
)
