package client

type UiAction rune

const (
	Unknown     UiAction = iota
	Interrupt   UiAction = 3  // Ctrl-C, raw mode swallows the signal
	Quit        UiAction = 81 // 'Q'
	Pause       UiAction = 80 // 'P'
	Up          UiAction = 87 // 'W'
	Down        UiAction = 83 // 'S'
	UpArrow     UiAction = 8593
	DownArrow   UiAction = 8595
	FocusGained UiAction = 0xF0001
	FocusLost   UiAction = 0xF0002
)

// ProcessInput splits one raw read from the terminal into actions. Arrow keys
// and focus reports arrive as escape sequences; unknown sequences are dropped.
func ProcessInput(raw []byte) []UiAction {
	var actions []UiAction
	for i := 0; i < len(raw); i++ {
		if raw[i] == 27 {
			if i+2 < len(raw) && raw[i+1] == '[' {
				switch raw[i+2] {
				case 'A':
					actions = append(actions, UpArrow)
				case 'B':
					actions = append(actions, DownArrow)
				case 'I':
					actions = append(actions, FocusGained)
				case 'O':
					actions = append(actions, FocusLost)
				}
				i += 2
			}
			continue
		}

		inputVal := int(raw[i])
		// Convert to UpperCase
		if inputVal >= 97 && inputVal <= 122 {
			inputVal = inputVal - 32
		}
		switch action := UiAction(inputVal); action {
		case Interrupt, Quit, Pause, Up, Down:
			actions = append(actions, action)
		}
	}
	return actions
}
