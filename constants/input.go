package constants

// Raw key codes as reported by browser keyboard events
const (
	KeyCodeSpace = 32
	KeyCodeLeft  = 37
	KeyCodeUp    = 38
	KeyCodeRight = 39
	KeyCodeDown  = 40
)
