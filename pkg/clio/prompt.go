package clio

import "strings"

// Prompt shows text and reads an answer, trimmed of blanks. When def is
// given it is shown in brackets and returned for an empty answer.
func (c *Clio) Prompt(text, def string) (string, error) {
	if def != "" {
		text += " [" + def + "] "
	}
	answer, err := c.term.PromptForLine(text)
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if def != "" && answer == "" {
		return def, nil
	}
	return answer, nil
}

// PromptForYes asks a yes/no question. Only y, ye and yes, in any case,
// count as yes.
func (c *Clio) PromptForYes(text string) (bool, error) {
	answer, err := c.term.PromptForLine(text + " (y/n)")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "ye", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Pause waits for the return key.
func (c *Clio) Pause() error {
	_, err := c.Prompt("Hit Return to Continue", "")
	return err
}
